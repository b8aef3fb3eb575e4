// Package suppress holds the configuration that disables stages or named
// issue-kinds from ever producing a directive. It is loaded once per session
// and threaded explicitly into each arbitration call; the engine never reads
// ambient state.
package suppress

// PseudoStageNoErrors suppresses the generic "ran without error" fallback.
// It is not an analysis stage, only a directive source.
const PseudoStageNoErrors = "no_errors"

// StageRule disables a whole stage or individual issue-kinds within it.
type StageRule struct {
	All   bool            `json:"all,omitempty"`
	Kinds map[string]bool `json:"kinds,omitempty"`
}

// Config maps stage names to suppression rules. Absence of a key means
// "not suppressed". The zero value (or New()) suppresses nothing.
type Config struct {
	Stages map[string]StageRule `json:"stages,omitempty"`
}

// New returns an empty configuration.
func New() *Config {
	return &Config{Stages: make(map[string]StageRule)}
}

// SuppressStage disables an entire stage (or the no_errors pseudo-stage).
func (c *Config) SuppressStage(stage string) *Config {
	r := c.Stages[stage]
	r.All = true
	c.Stages[stage] = r
	return c
}

// SuppressKind disables one issue-kind within a stage.
func (c *Config) SuppressKind(stage, kind string) *Config {
	r := c.Stages[stage]
	if r.Kinds == nil {
		r.Kinds = make(map[string]bool)
	}
	r.Kinds[kind] = true
	c.Stages[stage] = r
	return c
}

// Stage reports whether the whole stage is suppressed.
func (c *Config) Stage(stage string) bool {
	if c == nil {
		return false
	}
	return c.Stages[stage].All
}

// Kind reports whether an issue-kind is suppressed, either individually or
// because its whole stage is.
func (c *Config) Kind(stage, kind string) bool {
	if c == nil {
		return false
	}
	r := c.Stages[stage]
	return r.All || r.Kinds[kind]
}

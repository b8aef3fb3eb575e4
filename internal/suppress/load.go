package suppress

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig is the on-disk TOML shape:
//
//	[stages]
//	analyzer = true
//
//	[kinds.analyzer]
//	"Unread variables" = true
type fileConfig struct {
	Stages map[string]bool            `toml:"stages"`
	Kinds  map[string]map[string]bool `toml:"kinds"`
}

// Load reads a suppression configuration from a TOML file.
func Load(path string) (*Config, error) {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return nil, fmt.Errorf("load suppressions %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load suppressions %s: unknown key %q", path, undecoded[0].String())
	}

	cfg := New()
	for stage, on := range fc.Stages {
		if on {
			cfg.SuppressStage(stage)
		}
	}
	for stage, kinds := range fc.Kinds {
		for kind, on := range kinds {
			if on {
				cfg.SuppressKind(stage, kind)
			}
		}
	}
	return cfg, nil
}

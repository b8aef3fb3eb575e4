package suppress

import (
	"os"
	"path/filepath"
	"testing"
)

func TestZeroValueSuppressesNothing(t *testing.T) {
	var c *Config
	if c.Stage("verifier") || c.Kind("analyzer", "Unread variables") {
		t.Fatal("nil config must suppress nothing")
	}
	c = New()
	if c.Stage("verifier") || c.Kind("analyzer", "Unread variables") {
		t.Fatal("empty config must suppress nothing")
	}
}

func TestStageSuppressionCoversKinds(t *testing.T) {
	c := New().SuppressStage("analyzer")
	if !c.Stage("analyzer") {
		t.Fatal("stage not suppressed")
	}
	if !c.Kind("analyzer", "Undefined variables") {
		t.Fatal("whole-stage suppression must cover every kind")
	}
	if c.Stage("parser") {
		t.Fatal("unrelated stage suppressed")
	}
}

func TestKindSuppressionIsScoped(t *testing.T) {
	c := New().SuppressKind("analyzer", "Unread variables")
	if !c.Kind("analyzer", "Unread variables") {
		t.Fatal("kind not suppressed")
	}
	if c.Kind("analyzer", "Undefined variables") {
		t.Fatal("sibling kind suppressed")
	}
	if c.Stage("analyzer") {
		t.Fatal("kind suppression must not disable the stage")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mentor.toml")
	content := `
[stages]
student = true
no_errors = true
parser = false

[kinds.analyzer]
"Unread variables" = true
"Empty iterations" = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Stage("student") || !cfg.Stage(PseudoStageNoErrors) {
		t.Fatalf("stages not suppressed: %+v", cfg)
	}
	if cfg.Stage("parser") {
		t.Fatal("explicit false must not suppress")
	}
	if !cfg.Kind("analyzer", "Unread variables") {
		t.Fatal("kind not suppressed")
	}
	if cfg.Kind("analyzer", "Empty iterations") {
		t.Fatal("explicit false kind must not suppress")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mentor.toml")
	if err := os.WriteFile(path, []byte("[stagez]\nverifier = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("misspelled table must fail loudly")
	}
}

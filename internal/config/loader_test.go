package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	content := `
display:
  show_path: true
  show_counter: false
  symbols:
    filled: "#"
timing:
  delay_ms: 5
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !cfg.Display.ShowPath {
		t.Error("show_path should be true")
	}
	if cfg.Display.ShowCounter {
		t.Error("show_counter should be false")
	}
	if cfg.Timing.DelayMS != 5 {
		t.Errorf("delay_ms = %d, expected 5", cfg.Timing.DelayMS)
	}
	if cfg.Display.Symbols.FilledRune() != '#' {
		t.Errorf("filled rune = %q, expected '#'", cfg.Display.Symbols.FilledRune())
	}
	// Omitted symbol falls back to the default
	if cfg.Display.Symbols.PathRune() != '░' {
		t.Errorf("path rune = %q, expected '░'", cfg.Display.Symbols.PathRune())
	}
	// Omitted bounds are normalized
	if cfg.Timing.MinDelayMS <= 0 || cfg.Timing.MaxDelayMS <= 0 {
		t.Errorf("delay bounds not normalized: min=%d max=%d",
			cfg.Timing.MinDelayMS, cfg.Timing.MaxDelayMS)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/nope.yaml"); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestDefaultSimConfig(t *testing.T) {
	cfg := DefaultSimConfig()

	if cfg.Timing.DelayMS != 20 {
		t.Errorf("default delay_ms = %d, expected 20", cfg.Timing.DelayMS)
	}
	if cfg.Display.ShowPath {
		t.Error("path display should default to off")
	}
	if !cfg.Display.ShowCounter {
		t.Error("step counter should default to on")
	}
	if cfg.Display.Symbols.FilledRune() != '█' {
		t.Errorf("default filled rune = %q", cfg.Display.Symbols.FilledRune())
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Load with no custom path in a directory without config files;
	// the embedded YAML should agree with the hardcoded defaults.
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("cannot get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("cannot chdir: %v", err)
	}
	defer os.Chdir(oldWD) //nolint:errcheck // Test cleanup

	t.Setenv("HOME", tmpDir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	def := DefaultSimConfig()
	if cfg != def {
		t.Errorf("embedded default = %+v, expected %+v", cfg, def)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/sol/pkg/button"
)

func TestLoadOptional_MissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected empty config for missing file")
	}
	opts := cfg.Options()
	if opts.HoldDelay != 0 || opts.LenientValues {
		t.Errorf("missing file should yield zero options, got %+v", opts)
	}
}

func TestLoadOptional_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	content := `buttons:
  hold_delay_ms: 250
  hold_interval_ms: 75
  press_highlight_ms: 120
  lenient_values: true
`
	if err := os.WriteFile(filepath.Join(dir, "sol.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if opts.HoldDelay != 250*time.Millisecond {
		t.Errorf("HoldDelay = %v, want 250ms", opts.HoldDelay)
	}
	if opts.HoldInterval != 75*time.Millisecond {
		t.Errorf("HoldInterval = %v, want 75ms", opts.HoldInterval)
	}
	if opts.PressHighlight != 120*time.Millisecond {
		t.Errorf("PressHighlight = %v, want 120ms", opts.PressHighlight)
	}
	if !opts.LenientValues {
		t.Error("expected LenientValues true")
	}
}

func TestLoadOptional_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sol.yaml"), []byte("buttons: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOptional(dir); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
}

func TestOptions_ZeroConfigUsesButtonDefaults(t *testing.T) {
	var cfg Config
	opts := cfg.Options()

	// The button package substitutes its defaults for zero durations.
	push := button.NewPushModel(button.PushOptions{FireOnHold: true, Options: opts})
	defer push.Dispose()
}

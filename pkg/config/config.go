// Package config loads the optional sol.yaml configuration: trigger
// timing and validation settings that the surrounding application
// injects into button models instead of reading ambient globals.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/sol/pkg/button"
)

// Config represents the optional sol.yaml configuration.
type Config struct {
	Buttons ButtonConfig `yaml:"buttons"`
}

// ButtonConfig contains button trigger settings. Durations are in
// milliseconds; zero values fall back to package defaults.
type ButtonConfig struct {
	// HoldDelayMS is the fire-on-hold initial delay.
	HoldDelayMS int `yaml:"hold_delay_ms,omitempty"`
	// HoldIntervalMS is the fire-on-hold repeat interval.
	HoldIntervalMS int `yaml:"hold_interval_ms,omitempty"`
	// PressHighlightMS is the minimum synthetic-activation highlight.
	PressHighlightMS int `yaml:"press_highlight_ms,omitempty"`
	// LenientValues disables the two-value store domain assertion.
	// Intended for fuzz harnesses only.
	LenientValues bool `yaml:"lenient_values,omitempty"`
}

// LoadOptional reads sol.yaml from dir if present. A missing file
// yields an empty config, not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "sol.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read sol.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sol.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads sol.yaml (if present) and maps it onto button.Options,
// applying defaults for anything unset.
func Resolve(dir string) (button.Options, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return button.Options{}, err
	}
	return cfg.Options(), nil
}

// Options maps the configuration onto button.Options. Zero durations
// are left zero; the button package substitutes its defaults.
func (c *Config) Options() button.Options {
	return button.Options{
		HoldDelay:      time.Duration(c.Buttons.HoldDelayMS) * time.Millisecond,
		HoldInterval:   time.Duration(c.Buttons.HoldIntervalMS) * time.Millisecond,
		PressHighlight: time.Duration(c.Buttons.PressHighlightMS) * time.Millisecond,
		LenientValues:  c.Buttons.LenientValues,
	}
}

// Package config loads the engine's bootstrap settings: the handful
// of values needed before the first tile, everything else arrives
// live over the control protocol.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Padding is the usable-area inset applied to every monitor before
// tiling.
type Padding struct {
	Top    uint16 `yaml:"top"`
	Bottom uint16 `yaml:"bottom"`
	Left   uint16 `yaml:"left"`
	Right  uint16 `yaml:"right"`
}

// Borders configures client window decoration.
type Borders struct {
	Width   uint16 `yaml:"width"`
	Focused uint32 `yaml:"focused"`
	Normal  uint32 `yaml:"normal"`
}

// Windows groups the tiling and interaction knobs that aren't
// per-monitor geometry.
type Windows struct {
	Gaps          uint16  `yaml:"gaps"`
	Borders       Borders `yaml:"borders"`
	MouseMovement bool    `yaml:"mouse_movement"`
}

// Config is the engine's mutable runtime state for everything the
// control protocol can change. Every field except WorkspacesPerMon
// starts at zero/false (see Default); the bootstrap file only
// overrides what it names.
type Config struct {
	Padding          Padding `yaml:"padding"`
	Windows          Windows `yaml:"windows"`
	WorkspacesPerMon int     `yaml:"workspaces_per_monitor"`
}

// Default returns a Config with every field at its zero value, plus
// one workspace per monitor (the workspace package has no zero-count
// set: NewWorkspaceSet turns a zero into one workspace and Resize
// rejects zero).
func Default() *Config {
	return &Config{WorkspacesPerMon: 1}
}

// Load reads path as YAML into Default(), so that an absent or
// partial file falls back to Default's values rather than failing. A
// missing file is not an error: the engine runs with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.WorkspacesPerMon <= 0 {
		cfg.WorkspacesPerMon = 1
	}
	return cfg, nil
}

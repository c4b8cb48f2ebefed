// Package config provides YAML-based configuration loading for the viewer.
package config

import (
	"fmt"

	"github.com/vovakirdan/tilefield/internal/core"
)

// Config contains all user-tunable settings.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Render RenderConfig `yaml:"render"`
	Input  InputConfig  `yaml:"input"`
}

// WorldConfig defines the generated world grid.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RenderConfig defines output parameters.
type RenderConfig struct {
	BufferSize int `yaml:"buffer_size"`
}

// InputConfig defines key reading parameters.
type InputConfig struct {
	ReadTimeout int `yaml:"read_timeout_ds"` // Tenths of a second
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size must be positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.Render.BufferSize <= 0 {
		return fmt.Errorf("config: buffer_size must be positive, got %d", c.Render.BufferSize)
	}
	if c.Input.ReadTimeout < 1 || c.Input.ReadTimeout > 255 {
		return fmt.Errorf("config: read_timeout_ds must be in 1..255, got %d", c.Input.ReadTimeout)
	}
	return nil
}

// Runtime converts the configuration to the settings a session runs with.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		WorldWidth:  c.World.Width,
		WorldHeight: c.World.Height,
		BufferSize:  c.Render.BufferSize,
		ReadTimeout: c.Input.ReadTimeout,
	}
}

package config

import (
	_ "embed"

	"github.com/vovakirdan/tilefield/internal/core"
)

//go:embed defaults/tilefield.yaml
var defaultYAML []byte

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:  core.DefaultWorldWidth,
			Height: core.DefaultWorldHeight,
		},
		Render: RenderConfig{
			BufferSize: core.DefaultBufferSize,
		},
		Input: InputConfig{
			ReadTimeout: core.DefaultReadTimeout,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

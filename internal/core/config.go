package core

// Reference world and output dimensions.
const (
	DefaultWorldWidth  = 100
	DefaultWorldHeight = 100
	DefaultBufferSize  = 1 << 14
	DefaultReadTimeout = 1 // tenths of a second (VTIME)
)

// RuntimeConfig contains the resolved settings a viewer session runs with.
type RuntimeConfig struct {
	WorldWidth  int // World grid width in tiles
	WorldHeight int // World grid height in tiles
	BufferSize  int // Output buffer capacity in bytes
	ReadTimeout int // Key read timeout in tenths of a second
}

// DefaultConfig returns a RuntimeConfig matching the reference behavior.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldWidth:  DefaultWorldWidth,
		WorldHeight: DefaultWorldHeight,
		BufferSize:  DefaultBufferSize,
		ReadTimeout: DefaultReadTimeout,
	}
}

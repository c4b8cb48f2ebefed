package core

// Color is an SGR background color code, emitted as ESC [ <code> m.
type Color uint8

// Background colors used by the viewer. The numeric values are part of
// the terminal contract and must not change.
const (
	ColorBlack Color = 40
	ColorGreen Color = 42
	ColorCyan  Color = 46
)

// NoColor is never emitted; it marks "no color set yet" at frame start.
const NoColor Color = 0

// ANSIIndex returns the palette index (0-7) of a background color.
func (c Color) ANSIIndex() int {
	return int(c) - 40
}

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorGreen:
		return "green"
	case ColorCyan:
		return "cyan"
	case NoColor:
		return "none"
	default:
		return "unknown"
	}
}

// Package world generates and holds the fixed tile field the viewer scrolls over.
package world

import "github.com/vovakirdan/tilefield/internal/core"

// TileKind classifies a world tile.
type TileKind uint8

const (
	Empty TileKind = iota // Outside the world grid
	Grass
	Water
)

// tileColors is the fixed kind -> background color table.
var tileColors = [...]core.Color{
	Empty: core.ColorBlack,
	Grass: core.ColorGreen,
	Water: core.ColorCyan,
}

// Kinds lists every tile kind in declaration order.
func Kinds() []TileKind {
	return []TileKind{Empty, Grass, Water}
}

// Color returns the background color the tile is drawn with.
// Unknown kinds are drawn like Empty.
func (k TileKind) Color() core.Color {
	if int(k) >= len(tileColors) {
		return tileColors[Empty]
	}
	return tileColors[k]
}

// String returns a human-readable name for the tile kind.
func (k TileKind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Grass:
		return "Grass"
	case Water:
		return "Water"
	default:
		return "Unknown"
	}
}

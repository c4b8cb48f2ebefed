package world

import (
	"fmt"

	"github.com/vovakirdan/tilefield/internal/core"
)

// Grid is the materialized world: every tile is classified once at
// construction and never changes afterwards.
// Tiles are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int        // Width of the grid (columns)
	H     int        // Height of the grid (rows)
	Tiles []TileKind // Flat array of tiles, length W*H
}

// NewGrid builds a w x h grid by evaluating Classify for every tile.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("world: invalid grid size %dx%d", w, h)
	}

	g := &Grid{
		W:     w,
		H:     h,
		Tiles: make([]TileKind, w*h),
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			g.Tiles[i*w+j] = Classify(i, j)
		}
	}
	return g, nil
}

// Bounds returns the grid rectangle in world coordinates.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.W, g.H)
}

// InBounds returns true if (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return g.Bounds().Contains(x, y)
}

// At returns the tile at world column x, row y.
// Coordinates outside the grid are Empty.
func (g *Grid) At(x, y int) TileKind {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.Tiles[y*g.W+x]
}

// ColorAt returns the display color of the tile at (x, y).
func (g *Grid) ColorAt(x, y int) core.Color {
	return g.At(x, y).Color()
}

// Count returns how many tiles of the given kind the grid holds.
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, t := range g.Tiles {
		if t == kind {
			n++
		}
	}
	return n
}

// Package core provides fundamental types shared by the viewer's packages.
// It has no external dependencies so that world generation, rendering and
// input handling stay pure and testable.
package core

// Rect represents an axis-aligned rectangle of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Size is a terminal size in character cells.
type Size struct {
	Rows    int
	Columns int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int {
	if s.Rows <= 0 || s.Columns <= 0 {
		return 0
	}
	return s.Rows * s.Columns
}

// Center returns the (row, column) of the visual center cell.
func (s Size) Center() (int, int) {
	return s.Rows / 2, s.Columns / 2
}

// Offset is the viewport translation relative to the world center.
// Positive X moves the view right, positive Y moves it up.
// It is never clamped: any value is a valid, renderable state.
type Offset struct {
	X, Y int
}

// Add returns the offset translated by (dx, dy).
func (o Offset) Add(dx, dy int) Offset {
	return Offset{X: o.X + dx, Y: o.Y + dy}
}

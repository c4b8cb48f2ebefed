package render

import (
	"github.com/vovakirdan/tilefield/internal/core"
	"github.com/vovakirdan/tilefield/internal/world"
)

// Glyphs drawn into cells. Color comes from the background, so every cell
// except the player marker is a space.
const (
	PlayerGlyph byte = 'P'
	BlankGlyph  byte = ' '
)

// FrameStats describes one rendered frame.
type FrameStats struct {
	Size    core.Size
	Cells   int   // cells emitted
	Escapes int   // color escape sequences emitted
	Bytes   int64 // bytes delivered to the terminal for this frame
}

// Renderer draws the viewport over a world grid into a Buffer.
type Renderer struct {
	grid *world.Grid
	buf  *Buffer

	// Color of the previously emitted cell; NoColor at frame start.
	lastColor core.Color
}

// NewRenderer creates a renderer reading grid and writing into buf.
func NewRenderer(grid *world.Grid, buf *Buffer) *Renderer {
	return &Renderer{
		grid:      grid,
		buf:       buf,
		lastColor: core.NoColor,
	}
}

// WorldAt maps screen cell (row, column) to world coordinates (x, y).
// The screen center shows the world center shifted by the offset; y is
// inverted so a positive offset Y moves the view up.
func (r *Renderer) WorldAt(size core.Size, off core.Offset, row, column int) (int, int) {
	x := column - size.Columns/2 + r.grid.W/2 + off.X
	y := row - size.Rows/2 + r.grid.H/2 - off.Y
	return x, y
}

// Cell returns the glyph and background color of screen cell (row, column).
func (r *Renderer) Cell(size core.Size, off core.Offset, row, column int) (byte, core.Color) {
	glyph := BlankGlyph
	if cr, cc := size.Center(); row == cr && column == cc {
		glyph = PlayerGlyph
	}
	x, y := r.WorldAt(size, off, row, column)
	return glyph, r.grid.ColorAt(x, y)
}

// Render writes one complete frame: clear, home, every cell in row-major
// order, then a forced flush. A color escape is emitted only when a cell's
// color differs from the previous cell's.
func (r *Renderer) Render(size core.Size, off core.Offset) (FrameStats, error) {
	stats := FrameStats{Size: size}
	start := r.buf.Written() + int64(r.buf.Buffered())

	if err := r.buf.AppendString(ClearScreen); err != nil {
		return stats, err
	}
	if err := r.buf.AppendString(CursorHome); err != nil {
		return stats, err
	}

	r.lastColor = core.NoColor

	for row := 0; row < size.Rows; row++ {
		for column := 0; column < size.Columns; column++ {
			glyph, color := r.Cell(size, off, row, column)

			if color != r.lastColor {
				if err := r.writeColor(color); err != nil {
					return stats, err
				}
				r.lastColor = color
				stats.Escapes++
			}

			if err := r.buf.Append(glyph); err != nil {
				return stats, err
			}
			stats.Cells++
		}
	}

	if err := r.buf.Flush(); err != nil {
		return stats, err
	}
	stats.Bytes = r.buf.Written() - start
	return stats, nil
}

// writeColor emits ESC [ <code> m.
func (r *Renderer) writeColor(c core.Color) error {
	if err := r.buf.AppendString(CSI); err != nil {
		return err
	}
	if err := r.buf.AppendInt(int(c)); err != nil {
		return err
	}
	return r.buf.Append('m')
}

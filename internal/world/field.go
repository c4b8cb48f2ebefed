package world

import "math"

// Shape of the river band.
const (
	riverHalfWidth = 5.0 // |d| below this is water
	riverAmplitude = 5.0 // sideways swing of the band
	riverPeriod    = 5   // divisor of i+j before the sine
)

// Classify returns the tile kind at world row i, column j.
// The result depends only on (i, j): a sinuous diagonal river of water
// about ten tiles wide running through grass.
//
// (i+j)/riverPeriod is an integer division, so the sine steps every
// few tiles instead of varying smoothly.
func Classify(i, j int) TileKind {
	q := float64((i + j) / riverPeriod)
	d := float64(i-j) + riverAmplitude*math.Sin(q)
	if math.Abs(d) < riverHalfWidth {
		return Water
	}
	return Grass
}

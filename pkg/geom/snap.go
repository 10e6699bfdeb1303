package geom

import "math"

// DefaultGrid is the base used by [Snap] when no positive base is given.
const DefaultGrid = 10

// Snap rounds value to the nearest multiple of base. Ties round towards
// positive infinity, so Snap(-5, 10) is 0.
// A base <= 0 falls back to [DefaultGrid].
func Snap(value, base float64) float64 {
	if base <= 0 {
		base = DefaultGrid
	}
	return math.Floor(value/base+0.5) * base
}

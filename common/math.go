package common

import "math"

// BaseWidth and BaseHeight are the logical resolution the game simulates and
// renders at. The window may be any size; ebiten scales the layout.
const (
	BaseWidth  = 480
	BaseHeight = 800
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Signum returns -1 for negative values (including negative zero) and +1
// otherwise. This matches the sign convention the restitution math needs: a
// zero velocity still resolves as "moving positive".
func Signum(v float64) int {
	if math.Signbit(v) {
		return -1
	}
	return 1
}

// Package physics is the per-tick simulation core: axis-aligned overlap
// detection across the four collider pools, positional restitution against
// the scroll-boundary walls, and the gameplay rules (damage, death,
// destruction, pruning) that consume the resulting contacts.
package physics

import "fmt"

// Rect is an axis-aligned rectangle with an integer origin at its top-left
// corner. W and H must be non-negative; overlap math panics on malformed
// extents because they always indicate a caller bug.
type Rect struct {
	X, Y int
	W, H int
}

// Intersects reports whether r and other overlap on both axes.
func (r Rect) Intersects(other Rect) bool {
	return !SeparatingAxis(r.X, r.X+r.W, other.X, other.X+other.W) &&
		!SeparatingAxis(r.Y, r.Y+r.H, other.Y, other.Y+other.H)
}

// SeparatingAxis reports whether the half-open intervals [a1,a2) and [b1,b2)
// do NOT overlap. Two rectangles overlap iff neither the X nor the Y
// projection is separating.
func SeparatingAxis(a1, a2, b1, b2 int) bool {
	if a1 > a2 || b1 > b2 {
		panic(fmt.Sprintf("physics: malformed interval [%d,%d) vs [%d,%d)", a1, a2, b1, b2))
	}
	return a2 <= b1 || b2 <= a1
}

// Displacement returns the minimum translation vector that separates r1 from
// r2 along the axis of least penetration, and ok=false when the rectangles do
// not overlap on both axes. Exactly one component of the returned vector is
// nonzero: when the X overlap is strictly larger than the Y overlap the
// correction is on Y, otherwise on X.
func Displacement(r1, r2 Rect) (dx, dy int, ok bool) {
	xOverlap := min(r1.X+r1.W, r2.X+r2.W) - max(r1.X, r2.X)
	yOverlap := min(r1.Y+r1.H, r2.Y+r2.H) - max(r1.Y, r2.Y)
	if xOverlap <= 0 || yOverlap <= 0 {
		return 0, 0, false
	}
	if xOverlap > yOverlap {
		return 0, yOverlap, true
	}
	return xOverlap, 0, true
}

package engine

import "math"

// Collides reports whether two bodies overlap, approximating each square by the
// circle inscribed in it: the centers must be strictly closer than the sum of
// the half sizes.
func Collides(a, b Body) bool {
	ax, ay := a.Center()
	bx, by := b.Center()
	dist := math.Hypot(ax-bx, ay-by)
	return dist < a.Size/2+b.Size/2
}

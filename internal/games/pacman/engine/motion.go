package engine

import "math"

const (
	// cornerInset keeps the far-edge probes inside the last covered tile when an
	// edge sits exactly on a tile boundary.
	cornerInset = 0.01

	// ShrinkStep is how much each displacement component loses per blocked probe.
	// Resolved positions may stop up to this far short of a wall.
	ShrinkStep = 0.01

	// tileEpsilon absorbs the float error of summed speed steps, so a body that
	// walked to x = 0.9999999999999999 is treated as standing at tile 1.
	tileEpsilon = 1e-9
)

// Resolve computes how much of the displacement (dx, dy) a body can actually make.
//
// The request is first clamped so the bounding square stays inside the grid,
// then both components are shrunk toward zero in ShrinkStep increments until the
// four corners of the square land on passable tiles. Each returned component has
// the same sign as the request and is never larger in magnitude. full is false
// when any clamping or shrinking happened.
//
// Resolve does not modify the body; callers add the result to the position.
func Resolve(g *Grid, b Body, dx, dy float64) (adx, ady float64, full bool) {
	full = true
	w, h := float64(g.Width()), float64(g.Height())

	if b.X+dx+b.Size > w {
		dx = w - b.X - b.Size
		full = false
	} else if b.X+dx < 0 {
		dx = -b.X
		full = false
	}
	if b.Y+dy+b.Size > h {
		dy = h - b.Y - b.Size
		full = false
	} else if b.Y+dy < 0 {
		dy = -b.Y
		full = false
	}

	for !cornersPassable(g, b.Size, b.X+dx, b.Y+dy) {
		full = false
		if dx == 0 && dy == 0 {
			// Already blocked where it stands: nothing left to shrink.
			return 0, 0, false
		}
		dx = shrinkToward0(dx)
		dy = shrinkToward0(dy)
	}

	return dx, dy, full
}

// CouldMoveTo reports whether a square of the given size fits at (x, y):
// fully inside the grid and with all four corners on passable tiles.
func CouldMoveTo(g *Grid, size, x, y float64) bool {
	if x < 0 || y < 0 || x > float64(g.Width())-size || y > float64(g.Height())-size {
		return false
	}
	return cornersPassable(g, size, x, y)
}

// Fits reports whether the body currently satisfies the placement invariant.
func Fits(g *Grid, b Body) bool {
	return CouldMoveTo(g, b.Size, b.X, b.Y)
}

func cornersPassable(g *Grid, size, x, y float64) bool {
	left := tileIndex(x)
	top := tileIndex(y)
	right := tileIndex(x + size - cornerInset)
	bottom := tileIndex(y + size - cornerInset)

	return g.IsPassable(left, top) &&
		g.IsPassable(left, bottom) &&
		g.IsPassable(right, top) &&
		g.IsPassable(right, bottom)
}

func tileIndex(v float64) int {
	return int(math.Floor(v + tileEpsilon))
}

func shrinkToward0(v float64) float64 {
	switch {
	case v > ShrinkStep:
		return v - ShrinkStep
	case v < -ShrinkStep:
		return v + ShrinkStep
	default:
		return 0
	}
}

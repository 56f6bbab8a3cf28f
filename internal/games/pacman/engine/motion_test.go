package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFreeMove(t *testing.T) {
	g := gridOf(t,
		".....",
		".....",
		".....",
	)
	b := Body{X: 1, Y: 1, Size: 0.8}

	dx, dy, full := Resolve(g, b, 0.25, -0.5)
	assert.True(t, full)
	assert.Equal(t, 0.25, dx)
	assert.Equal(t, -0.5, dy)
}

func TestResolveZeroMotionIsIdentity(t *testing.T) {
	g := gridOf(t,
		"....#",
		".#...",
		".....",
	)
	bodies := []Body{
		{X: 0, Y: 0, Size: 1},
		{X: 2, Y: 0, Size: 1},
		{X: 4, Y: 2, Size: 1},
		{X: 2.1, Y: 1.1, Size: 0.8},
		{X: 0.3, Y: 2.5, Size: 0.2},
	}
	for _, b := range bodies {
		require.True(t, Fits(g, b), "fixture %+v must be valid", b)
		dx, dy, full := Resolve(g, b, 0, 0)
		assert.Equal(t, 0.0, dx)
		assert.Equal(t, 0.0, dy)
		assert.True(t, full, "zero move from %+v", b)
	}
}

func TestResolveClampsToGridBounds(t *testing.T) {
	g := gridOf(t, "....")

	tests := []struct {
		name   string
		x, dx  float64
		wantDx float64
	}{
		{"right edge", 2.75, 0.5, 0.25},
		{"left edge", 0.25, -0.5, -0.25},
		{"exactly at right edge", 3, 0.1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy, full := Resolve(g, Body{X: tc.x, Y: 0, Size: 1}, tc.dx, 0)
			assert.False(t, full)
			assert.InDelta(t, tc.wantDx, dx, 1e-9)
			assert.Equal(t, 0.0, dy)
		})
	}

	// Vertical clamp on a single-row grid.
	_, dy, full := Resolve(g, Body{X: 0, Y: 0, Size: 1}, 0, -0.1)
	assert.False(t, full)
	assert.Equal(t, 0.0, dy)
}

func TestResolveSlidesUpToWall(t *testing.T) {
	g := gridOf(t, "..#")
	b := Body{X: 0.9, Y: 0, Size: 1}

	dx, _, full := Resolve(g, b, 0.3, 0)
	assert.False(t, full)
	assert.Greater(t, dx, 0.0)
	// Contact is quantized to the shrink step.
	assert.InDelta(t, 0.1, dx, ShrinkStep+1e-9)
	assert.True(t, Fits(g, Body{X: b.X + dx, Y: b.Y, Size: b.Size}))
}

func TestResolveShrinksBothAxes(t *testing.T) {
	g := gridOf(t,
		"..",
		".#",
	)
	b := Body{X: 0, Y: 0, Size: 1}

	// Diagonal into the only wall: both components collapse together.
	dx, dy, full := Resolve(g, b, 0.5, 0.5)
	assert.False(t, full)
	assert.InDelta(t, 0.0, dx, ShrinkStep+1e-9)
	assert.InDelta(t, dx, dy, 1e-12)
	assert.True(t, Fits(g, Body{X: dx, Y: dy, Size: 1}))
}

func TestResolveStuckBodyTerminates(t *testing.T) {
	g := gridOf(t, ".#.")
	// Malformed placement: the body starts inside a wall.
	dx, dy, full := Resolve(g, Body{X: 1, Y: 0, Size: 1}, 0.5, 0)
	assert.False(t, full)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)
}

func TestResolveProperties(t *testing.T) {
	g := gridOf(t,
		"..........",
		".##.##.##.",
		"..........",
		".#..#...#.",
		"...##.#...",
		".#......#.",
		"..........",
	)
	rng := rand.New(rand.NewSource(99))
	sizes := []float64{0.2, 0.8, 1.0}

	for i := 0; i < 2000; i++ {
		size := sizes[rng.Intn(len(sizes))]
		b := randomPlacement(t, g, rng, size)
		reqX := (rng.Float64()*2 - 1) * 1.5
		reqY := (rng.Float64()*2 - 1) * 1.5
		if rng.Intn(2) == 0 {
			reqY = 0
		}

		dx, dy, full := Resolve(g, b, reqX, reqY)

		// Monotonic shrink: same sign, never larger.
		assert.GreaterOrEqual(t, dx*reqX, 0.0)
		assert.GreaterOrEqual(t, dy*reqY, 0.0)
		assert.LessOrEqual(t, math.Abs(dx), math.Abs(reqX)+1e-12)
		assert.LessOrEqual(t, math.Abs(dy), math.Abs(reqY)+1e-12)
		if full {
			assert.Equal(t, reqX, dx)
			assert.Equal(t, reqY, dy)
		}

		// Containment.
		moved := Body{X: b.X + dx, Y: b.Y + dy, Size: size}
		require.True(t, Fits(g, moved), "move %+v by (%v,%v) escaped to %+v", b, reqX, reqY, moved)
	}
}

func TestCouldMoveTo(t *testing.T) {
	g := gridOf(t,
		"...",
		".#.",
	)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"origin", 0, 0, true},
		{"right edge exact", 2, 0, true},
		{"past right edge", 2.01, 0, false},
		{"negative", -0.01, 0, false},
		{"overlaps wall", 0.5, 0.5, false},
		{"beside wall", 0, 1, true},
		{"on wall", 1, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CouldMoveTo(g, 1, tc.x, tc.y))
		})
	}
}

func TestBodyMoveCommits(t *testing.T) {
	g := gridOf(t, "....")
	b := Body{X: 0, Y: 0, Size: 1}

	assert.True(t, b.Move(g, 0.5, 0))
	assert.Equal(t, 0.5, b.X)

	assert.False(t, b.Move(g, 10, 0))
	assert.InDelta(t, 3.0, b.X, 1e-9)
}

func randomPlacement(t *testing.T, g *Grid, rng *rand.Rand, size float64) Body {
	t.Helper()
	for range 10000 {
		x := rng.Float64() * (float64(g.Width()) - size)
		y := rng.Float64() * (float64(g.Height()) - size)
		if CouldMoveTo(g, size, x, y) {
			return Body{X: x, Y: y, Size: size}
		}
	}
	t.Fatalf("no valid placement found for size %v", size)
	return Body{}
}

func TestSummedStepsLandOnTile(t *testing.T) {
	g := gridOf(t,
		"..",
		"#.",
	)
	x := 0.0
	for range 10 {
		x += 0.1
	}
	require.NotEqual(t, 1.0, x, "fixture relies on float drift")

	assert.True(t, CouldMoveTo(g, 1, x, 1), "drifted body should fit the corridor below")
}

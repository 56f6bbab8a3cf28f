package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsBadShapes(t *testing.T) {
	_, err := NewGrid(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid([][]bool{{}})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid([][]bool{{true, true}, {true}})
	assert.ErrorIs(t, err, ErrRaggedGrid)
}

func TestGridFromInts(t *testing.T) {
	// The 4x4 map of the tiny level, row-major.
	g, err := GridFromInts([][]int{
		{1, 1, 1, 1},
		{1, 0, 1, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, 11, g.OpenCount())

	tests := []struct {
		x, y     int
		passable bool
	}{
		{0, 0, true},
		{1, 1, false},
		{3, 1, false},
		{0, 3, false},
		{3, 3, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.passable, g.IsPassable(tc.x, tc.y), "tile (%d,%d)", tc.x, tc.y)
	}
}

func TestGridFromIntsTreatsUnknownValuesAsWalls(t *testing.T) {
	g, err := GridFromInts([][]int{{1, 2, -1, 1}})
	require.NoError(t, err)

	assert.True(t, g.IsPassable(0, 0))
	assert.False(t, g.IsPassable(1, 0))
	assert.False(t, g.IsPassable(2, 0))
	assert.True(t, g.IsPassable(3, 0))
}

func TestGridOutOfRangeIsWall(t *testing.T) {
	g := gridOf(t,
		"...",
		"...",
	)

	outside := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {-100, 100}}
	for _, c := range outside {
		assert.False(t, g.IsPassable(c[0], c[1]), "tile (%d,%d) should read as wall", c[0], c[1])
	}
}

func TestNewGridCopiesRows(t *testing.T) {
	rows := [][]bool{{true, true}}
	g, err := NewGrid(rows)
	require.NoError(t, err)

	rows[0][0] = false
	assert.True(t, g.IsPassable(0, 0), "grid must not alias caller rows")
}

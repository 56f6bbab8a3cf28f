package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// gridOf builds a grid from ASCII rows: '#' is a wall, anything else is open.
func gridOf(t *testing.T, rows ...string) *Grid {
	t.Helper()
	flags := make([][]bool, len(rows))
	for y, row := range rows {
		flags[y] = make([]bool, len(row))
		for x, ch := range row {
			flags[y][x] = ch != '#'
		}
	}
	g, err := NewGrid(flags)
	require.NoError(t, err)
	return g
}

// scriptedRand replays a fixed sequence of values and counts calls.
type scriptedRand struct {
	vals  []int
	calls int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		r.calls++
		return 0
	}
	v := r.vals[r.calls%len(r.vals)]
	r.calls++
	return v % n
}

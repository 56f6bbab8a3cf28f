package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when a grid would have a zero dimension.
	ErrEmptyGrid = errors.New("engine: grid must be at least 1x1")
	// ErrRaggedGrid is returned when grid rows differ in length.
	ErrRaggedGrid = errors.New("engine: grid rows must all have the same width")
)

// Grid is the static passability map of a level.
// Cells are stored in row-major order: index = y*w + x. A Grid never changes
// after construction, so a single instance is shared by every entity.
type Grid struct {
	w, h     int
	passable []bool
}

// NewGrid builds a grid from rows of passability flags, rows[y][x].
func NewGrid(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	w, h := len(rows[0]), len(rows)
	g := &Grid{w: w, h: h, passable: make([]bool, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedGrid, y, len(row), w)
		}
		copy(g.passable[y*w:(y+1)*w], row)
	}
	return g, nil
}

// GridFromInts builds a grid from the level file encoding, where 1 is open ground.
// Any other value is treated as a wall.
func GridFromInts(rows [][]int) (*Grid, error) {
	flags := make([][]bool, len(rows))
	for y, row := range rows {
		flags[y] = make([]bool, len(row))
		for x, v := range row {
			flags[y][x] = v == 1
		}
	}
	return NewGrid(flags)
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.h
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// IsPassable returns whether the tile at (x, y) can be walked on.
// Out-of-range tiles read as walls.
func (g *Grid) IsPassable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.passable[y*g.w+x]
}

// OpenCount returns the number of passable tiles.
func (g *Grid) OpenCount() int {
	n := 0
	for _, p := range g.passable {
		if p {
			n++
		}
	}
	return n
}

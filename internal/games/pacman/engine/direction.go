// Package engine implements the Pac-Man simulation core: the tile grid, continuous
// movement with wall resolution, circular collision tests and the ghost steering AI.
// The package is UI-agnostic and deterministic for a given random source.
package engine

// Direction is a cardinal movement direction, numbered clockwise from Up.
type Direction int8

const (
	DirNone Direction = iota - 1
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Directions lists the four cardinal directions in enumeration order.
// Every tie-break in the engine follows this order.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Unit returns the unit vector for d. Up decreases Y (screen coordinates).
func (d Direction) Unit() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Scaled returns the displacement of one step of the given length in d.
func (d Direction) Scaled(step float64) (dx, dy float64) {
	ux, uy := d.Unit()
	return ux * step, uy * step
}

// Opposite returns d rotated by 180 degrees. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 2) % 4
}

package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

// Palette used by the maze renderer.
const (
	ColorDefault Color = iota
	ColorWall
	ColorPellet
	ColorPlayer
	ColorGhost
	ColorGhostAlt
	ColorText
	ColorDim
	ColorAlert
)

// ghostColors cycles so neighbouring ghosts are told apart.
var ghostColors = [...]Color{ColorGhost, ColorGhostAlt}

// GhostColor returns the color for the ghost with the given ID.
func GhostColor(id int) Color {
	if id < 0 {
		id = -id
	}
	return ghostColors[id%len(ghostColors)]
}

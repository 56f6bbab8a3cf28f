// Package formats provides the level file parsers for Pac-Man.
package formats

import (
	"errors"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

// ErrMalformed is wrapped by every error that rejects a whole level file.
var ErrMalformed = errors.New("malformed level")

// Level is a parsed level before it is bound to an ID and a file.
type Level struct {
	Name     string
	Width    int
	Height   int
	Open     [][]bool // Open[y][x]
	Spawns   []engine.Spawn
	Warnings []string
}

// Grid builds the passability grid of the level.
func (l *Level) Grid() (*engine.Grid, error) {
	return engine.NewGrid(l.Open)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".yaml", ".yml"}
}

// ParseKind maps a spawn keyword to an entity kind.
func ParseKind(s string) (engine.Kind, bool) {
	switch s {
	case "pacman":
		return engine.KindPlayer, true
	case "ghost":
		return engine.KindGhost, true
	case "pellet":
		return engine.KindPellet, true
	default:
		return 0, false
	}
}

func spawn(kind engine.Kind, x, y float64) engine.Spawn {
	return engine.Spawn{Kind: kind, X: x, Y: y}
}

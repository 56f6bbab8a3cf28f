package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

// Input symbols stored in a run journal, one per Step.
const (
	symNone  byte = '.'
	symUp    byte = '^'
	symRight byte = '>'
	symDown  byte = 'v'
	symLeft  byte = '<'
	symPause byte = 'p'
)

// symbolFor reduces a frame to the one input the game acts on.
// Pause wins over movement.
func symbolFor(in core.InputFrame) byte {
	switch {
	case in.Has(core.ActionPause):
		return symPause
	case in.Has(core.ActionUp):
		return symUp
	case in.Has(core.ActionRight):
		return symRight
	case in.Has(core.ActionDown):
		return symDown
	case in.Has(core.ActionLeft):
		return symLeft
	default:
		return symNone
	}
}

func directionFor(sym byte) engine.Direction {
	switch sym {
	case symUp:
		return engine.DirUp
	case symRight:
		return engine.DirRight
	case symDown:
		return engine.DirDown
	case symLeft:
		return engine.DirLeft
	default:
		return engine.DirNone
	}
}

// FrameFor rebuilds the input frame a recorded symbol came from.
func FrameFor(sym byte) (core.InputFrame, error) {
	in := core.NewInputFrame()
	switch sym {
	case symNone:
	case symPause:
		in.Set(core.ActionPause)
	case symUp:
		in.Set(core.ActionUp)
	case symRight:
		in.Set(core.ActionRight)
	case symDown:
		in.Set(core.ActionDown)
	case symLeft:
		in.Set(core.ActionLeft)
	default:
		return in, fmt.Errorf("pacman: unknown input symbol %q", sym)
	}
	return in, nil
}

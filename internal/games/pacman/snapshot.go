package pacman

import "github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateRespawning   GameStateType = "respawning"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Steps  uint64
	Level  string
	Lives  int
	Held   engine.Direction
	State  GameStateType
	Engine engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Steps: g.steps,
		Level: g.State().Level,
		Lives: g.lives,
		Held:  g.held,
		State: g.stateType(),
	}
	if g.session != nil {
		snap.Engine = g.session.Snapshot()
	}
	return snap
}

func (g *Game) stateType() GameStateType {
	switch {
	case g.won:
		return StateWin
	case g.gameOver:
		return StateGameOver
	case g.paused:
		return StatePaused
	case g.clearTicks > 0:
		return StateLevelCleared
	case g.respawnTicks > 0:
		return StateRespawning
	default:
		return StatePlaying
	}
}

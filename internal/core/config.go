package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second
	Seed     int64  // RNG seed for deterministic gameplay
	Level    string // ID of the first level, empty for the first in the pack
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// 20 ticks per second matches a 50ms simulation step.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int
	Lives    int
	Level    string
	GameOver bool
	Won      bool // every level cleared
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Events lists what happened this tick, for the status line and logs.
	Events []string
}

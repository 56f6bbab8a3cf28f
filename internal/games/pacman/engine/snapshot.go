package engine

// ActorState is the position and facing of a moving entity.
type ActorState struct {
	X, Y   float64
	Facing Direction
}

// Snapshot captures the simulation state for determinism testing and replay checks.
type Snapshot struct {
	Tick      uint64
	Score     int
	HasPlayer bool
	Player    ActorState
	Ghosts    []ActorState
	Pellets   []int // remaining pellet IDs
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    s.tick,
		Score:   s.score,
		Ghosts:  make([]ActorState, len(s.ghosts)),
		Pellets: make([]int, len(s.pellets)),
	}
	if s.player != nil {
		snap.HasPlayer = true
		snap.Player = ActorState{X: s.player.X, Y: s.player.Y, Facing: s.player.Facing}
	}
	for i, gh := range s.ghosts {
		snap.Ghosts[i] = ActorState{X: gh.X, Y: gh.Y, Facing: gh.AI.Facing}
	}
	for i, p := range s.pellets {
		snap.Pellets[i] = p.ID
	}
	return snap
}

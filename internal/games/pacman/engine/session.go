package engine

// Params holds the tunable constants of a simulation.
type Params struct {
	PlayerSpeed float64 // tiles per tick
	GhostSpeed  float64 // tiles per tick
	PlayerSize  float64
	GhostSize   float64
	PelletSize  float64
	PelletScore int
}

// DefaultParams returns the classic tuning: 0.1 tiles per tick for everyone.
func DefaultParams() Params {
	return Params{
		PlayerSpeed: 0.1,
		GhostSpeed:  0.1,
		PlayerSize:  0.8,
		GhostSize:   1.0,
		PelletSize:  0.2,
		PelletScore: 10,
	}
}

// TickReport lists the events of one simulation tick.
type TickReport struct {
	Tick        uint64
	Consumed    []int // pellet IDs eaten this tick, ascending
	ScoreDelta  int
	PelletsLeft int
	Caught      bool
	CaughtBy    int // ghost ID, valid when Caught
	PlayerFull  bool
	Ghosts      []GhostStep
}

// Session owns the entities of the level being played and advances them one
// tick at a time. It is not safe for concurrent use.
type Session struct {
	params Params
	rng    Rand

	grid    *Grid
	player  *Player
	ghosts  []*Ghost
	pellets []*Pellet

	playerSpawnX, playerSpawnY float64

	score int
	tick  uint64
}

// NewSession creates an empty session. ResetLevel must be called before Tick
// does anything.
func NewSession(p Params, rng Rand) *Session {
	return &Session{params: p, rng: rng}
}

// SetParams replaces the tuning. Sizes take effect on the next ResetLevel,
// speeds on the next tick.
func (s *Session) SetParams(p Params) {
	s.params = p
}

// Params returns the current tuning.
func (s *Session) Params() Params {
	return s.params
}

// ResetLevel discards every entity and spawns the level described by spawns on
// grid. The first pacman spawn becomes the player; later ones are ignored.
// Score and tick count carry over.
func (s *Session) ResetLevel(g *Grid, spawns []Spawn) {
	s.grid = g
	s.player = nil
	s.ghosts = nil
	s.pellets = nil

	for _, sp := range spawns {
		switch sp.Kind {
		case KindPlayer:
			if s.player != nil {
				continue
			}
			s.playerSpawnX, s.playerSpawnY = sp.X, sp.Y
			s.player = &Player{
				Body:   Body{X: sp.X, Y: sp.Y, Size: s.params.PlayerSize},
				Facing: DirRight,
			}
		case KindGhost:
			s.ghosts = append(s.ghosts, &Ghost{
				ID:     len(s.ghosts),
				Body:   Body{X: sp.X, Y: sp.Y, Size: s.params.GhostSize},
				AI:     GhostController{Facing: DirUp},
				spawnX: sp.X,
				spawnY: sp.Y,
			})
		case KindPellet:
			s.pellets = append(s.pellets, &Pellet{
				ID:   len(s.pellets),
				Body: Body{X: sp.X, Y: sp.Y, Size: s.params.PelletSize},
			})
		}
	}
}

// RespawnActors puts the player and every ghost back on their spawn points.
// Pellets and score are untouched.
func (s *Session) RespawnActors() {
	if s.player != nil {
		s.player.X, s.player.Y = s.playerSpawnX, s.playerSpawnY
		s.player.Facing = DirRight
	}
	for _, gh := range s.ghosts {
		gh.X, gh.Y = gh.spawnX, gh.spawnY
		gh.AI = GhostController{Facing: DirUp}
	}
}

// StepPlayer moves the player one step in dir. DirNone leaves it in place.
// The player turns to face dir even when a wall stops it.
// It returns false when the move was cut short.
func (s *Session) StepPlayer(dir Direction) bool {
	if s.player == nil || s.grid == nil || !dir.Valid() {
		return true
	}
	s.player.Facing = dir
	dx, dy := dir.Scaled(s.params.PlayerSpeed)
	return s.player.Move(s.grid, dx, dy)
}

// Tick advances the simulation by one step:
// player move, ghost targeting, ghost moves, pellet pickup, ghost contact.
func (s *Session) Tick(dir Direction) TickReport {
	if s.grid == nil {
		return TickReport{}
	}

	s.tick++
	report := TickReport{Tick: s.tick}
	report.PlayerFull = s.StepPlayer(dir)

	if s.player != nil {
		for _, gh := range s.ghosts {
			gh.AI.SetTarget(s.player.X, s.player.Y)
		}
	}

	for _, gh := range s.ghosts {
		step := gh.AI.Step(s.grid, &gh.Body, s.params.GhostSpeed, s.rng)
		step.GhostID = gh.ID
		report.Ghosts = append(report.Ghosts, step)
	}

	if s.player != nil {
		s.collectPellets(&report)
		for _, gh := range s.ghosts {
			if Collides(s.player.Body, gh.Body) {
				report.Caught = true
				report.CaughtBy = gh.ID
				break
			}
		}
	}

	report.PelletsLeft = len(s.pellets)
	return report
}

func (s *Session) collectPellets(report *TickReport) {
	kept := s.pellets[:0]
	for _, p := range s.pellets {
		if Collides(s.player.Body, p.Body) {
			report.Consumed = append(report.Consumed, p.ID)
			report.ScoreDelta += s.params.PelletScore
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(s.pellets); i++ {
		s.pellets[i] = nil
	}
	s.pellets = kept
	s.score += report.ScoreDelta
}

// Grid returns the level grid, or nil before the first ResetLevel.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Player returns the player, or nil when the level has no pacman spawn.
func (s *Session) Player() *Player {
	return s.player
}

// Ghosts returns the ghosts in stepping order.
func (s *Session) Ghosts() []*Ghost {
	return s.ghosts
}

// Pellets returns the pellets still on the board, in ID order.
func (s *Session) Pellets() []*Pellet {
	return s.pellets
}

// Score returns the points collected so far.
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of ticks simulated.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Cleared reports whether a level was loaded and every pellet has been eaten.
func (s *Session) Cleared() bool {
	return s.grid != nil && len(s.pellets) == 0
}

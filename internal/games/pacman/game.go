// Package pacman is the game layer around the simulation engine: lives, level
// progression, respawns, pause, input handling, rendering and run recording.
package pacman

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

// Outcome values recorded for a finished run.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
	OutcomeQuit = "quit"
)

// Options configures a game.
type Options struct {
	Config config.PacmanConfig
	Levels []levels.Level // played in order
}

// Game implements Pac-Man on top of engine.Session.
type Game struct {
	cfg        config.PacmanConfig
	levels     []levels.Level
	difficulty *config.DifficultyManager

	rng     *rand.Rand
	session *engine.Session
	seed    int64

	levelIndex     int
	firstLevel     string
	pelletsAtStart int
	lives          int
	held           engine.Direction
	steps          uint64 // Step calls that were not ignored

	respawnTicks int
	clearTicks   int

	paused   bool
	gameOver bool
	won      bool
	err      error

	inputs strings.Builder
	events []string

	screenW int
	screenH int
}

// New creates a game. Reset must be called before the first Step.
func New(opts Options) *Game {
	return &Game{
		cfg:        opts.Config,
		levels:     opts.Levels,
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset starts a new run from the level named in cfg.Level, or the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = engine.NewSession(g.params(g.cfg.Movement.GhostSpeed), g.rng)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.levelIndex = 0
	for i, lvl := range g.levels {
		if lvl.ID == cfg.Level {
			g.levelIndex = i
			break
		}
	}
	g.firstLevel = ""
	if g.levelIndex < len(g.levels) {
		g.firstLevel = g.levels[g.levelIndex].ID
	}

	g.lives = g.cfg.Gameplay.Lives
	g.held = engine.DirNone
	g.steps = 0
	g.respawnTicks = 0
	g.clearTicks = 0
	g.paused = false
	g.gameOver = false
	g.won = false
	g.err = nil
	g.inputs.Reset()
	g.events = nil

	g.loadLevel()
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// loadLevel spawns the current level into the session.
func (g *Game) loadLevel() {
	if len(g.levels) == 0 {
		g.fail(errors.New("pacman: no levels to play"))
		return
	}
	lvl := &g.levels[g.levelIndex]
	grid, err := lvl.Grid()
	if err != nil {
		g.fail(err)
		return
	}

	speed := g.difficulty.GhostSpeed(g.cfg.Movement.GhostSpeed, g.session.Score(), g.session.Ticks())
	g.session.SetParams(g.params(speed))
	g.session.ResetLevel(grid, lvl.Spawns)

	g.pelletsAtStart = len(g.session.Pellets())
	g.held = engine.DirNone
	g.event(fmt.Sprintf("level %s", lvl.Title()))
}

func (g *Game) fail(err error) {
	g.err = err
	g.gameOver = true
}

func (g *Game) params(ghostSpeed float64) engine.Params {
	return engine.Params{
		PlayerSpeed: g.cfg.Movement.PlayerSpeed,
		GhostSpeed:  ghostSpeed,
		PlayerSize:  g.cfg.Sizes.Player,
		GhostSize:   g.cfg.Sizes.Ghost,
		PelletSize:  g.cfg.Sizes.Pellet,
		PelletScore: g.cfg.Gameplay.PelletScore,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
			Level:   g.firstLevel,
		})
		return g.result()
	}

	if g.gameOver || g.won {
		return g.result()
	}

	sym := symbolFor(in)
	g.inputs.WriteByte(sym)
	g.apply(sym)

	return g.result()
}

// apply runs one recorded input symbol.
func (g *Game) apply(sym byte) {
	g.steps++

	if sym == symPause {
		g.paused = !g.paused
		if g.paused {
			g.event("paused")
		}
	}
	if g.paused {
		return
	}

	if g.respawnTicks > 0 {
		g.respawnTicks--
		if g.respawnTicks == 0 {
			g.session.RespawnActors()
		}
		return
	}
	if g.clearTicks > 0 {
		g.clearTicks--
		if g.clearTicks == 0 {
			g.advanceLevel()
		}
		return
	}

	if dir := directionFor(sym); dir.Valid() {
		g.held = dir
	}

	report := g.session.Tick(g.held)

	if len(report.Consumed) > 0 {
		g.event(fmt.Sprintf("+%d", report.ScoreDelta))
	}

	switch {
	case g.pelletsAtStart > 0 && report.PelletsLeft == 0:
		g.event("level cleared")
		g.clearTicks = g.cfg.Gameplay.RespawnDelay
		if g.clearTicks == 0 {
			g.advanceLevel()
		}
	case report.Caught:
		g.lives--
		g.held = engine.DirNone
		g.event(fmt.Sprintf("caught by ghost %d", report.CaughtBy))
		if g.lives <= 0 {
			g.gameOver = true
			g.event("game over")
			return
		}
		g.respawnTicks = g.cfg.Gameplay.RespawnDelay
		if g.respawnTicks == 0 {
			g.session.RespawnActors()
		}
	}
}

// advanceLevel moves to the next level, or ends the run when none is left.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.levelIndex >= len(g.levels) {
		g.levelIndex = len(g.levels) - 1
		g.won = true
		g.event("all levels cleared")
		return
	}
	g.loadLevel()
}

func (g *Game) event(e string) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Lives:    g.lives,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
	if g.session != nil {
		st.Score = g.session.Score()
	}
	if g.levelIndex < len(g.levels) {
		st.Level = g.levels[g.levelIndex].ID
	}
	return st
}

// Err returns the error that stopped the game, if any.
func (g *Game) Err() error {
	return g.err
}

// Inputs returns the recorded input symbols of the current run.
func (g *Game) Inputs() string {
	return g.inputs.String()
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.seed
}

// FirstLevel returns the ID of the level the current run started on.
func (g *Game) FirstLevel() string {
	return g.firstLevel
}

// Outcome describes how the current run ended so far.
func (g *Game) Outcome() string {
	switch {
	case g.won:
		return OutcomeWon
	case g.gameOver:
		return OutcomeLost
	default:
		return OutcomeQuit
	}
}

// Ticks returns the number of simulation ticks run so far.
func (g *Game) Ticks() uint64 {
	if g.session == nil {
		return 0
	}
	return g.session.Ticks()
}

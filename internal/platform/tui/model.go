package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// Game is the contract between the platform and a game implementation.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Recorder is implemented by games whose runs can be journaled and replayed.
type Recorder interface {
	Seed() int64
	FirstLevel() string
	Inputs() string
	Outcome() string
	Ticks() uint64
}

// Resizer is implemented by games that relayout on terminal resize.
type Resizer interface {
	Resize(w, h int)
}

// Options configures a Model.
type Options struct {
	Store      *storage.Store // nil disables the run journal
	Logger     *log.Logger
	Difficulty string
	ConfigYAML string // effective config, stored with each run

	// Playback, when set, supplies the input of every tick instead of the
	// keyboard. It returns false once the recording is exhausted.
	Playback func() (core.InputFrame, bool)
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // the current run is already in the journal
	finished   bool // playback exhausted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:       game,
		opts:       opts,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight(cfg.ScreenH))
	m.help.Width = cfg.ScreenW
	return m
}

// playHeight leaves the last terminal row for the help bar.
func (m Model) playHeight(h int) int {
	return max(h-1, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.playHeight(cfg.ScreenH)
	m.game.Reset(cfg)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	isQuit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	if m.opts.Playback != nil {
		// Recorded input drives the game; only quit is honored.
		m.inputFrame.Clear()
	}
	return m, nil
}

// handleResize processes window resize events. The run keeps going; the
// game only relayouts.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.playHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, m.playHeight(msg.Height))
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	in := m.inputFrame
	if m.opts.Playback != nil {
		var ok bool
		in, ok = m.opts.Playback()
		if !ok {
			m.finished = true
			return m, nil
		}
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(in)
	m.gameState = result.State

	for _, e := range result.Events {
		m.logger.Debug("game event", "event", e, "score", m.gameState.Score)
	}

	if wasOver && !m.gameState.GameOver {
		// Restarted: a fresh run begins.
		m.runSaved = false
	}
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun writes the current run to the journal once.
func (m *Model) saveRun() {
	if m.runSaved || m.opts.Store == nil || m.opts.Playback != nil {
		return
	}
	rec, ok := m.game.(Recorder)
	if !ok || rec.Inputs() == "" {
		return
	}
	m.runSaved = true

	st := m.game.State()
	id, err := m.opts.Store.SaveRun(storage.Run{
		Level:      rec.FirstLevel(),
		Seed:       rec.Seed(),
		Difficulty: m.opts.Difficulty,
		Config:     m.opts.ConfigYAML,
		Inputs:     rec.Inputs(),
		Score:      st.Score,
		Ticks:      int64(rec.Ticks()),
		Outcome:    rec.Outcome(),
	})
	if err != nil {
		m.logger.Error("could not save run", "err", err)
		return
	}
	m.logger.Info("run saved", "id", id, "score", st.Score, "outcome", rec.Outcome())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".pacman", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keyMapper.Keys())
	if m.opts.Playback != nil {
		footer = "replay"
		if m.finished {
			footer = "replay finished, press q to quit"
		}
	}
	return RenderScreen(m.screen) + "\n" + colorStyles[core.ColorDim].Render(footer)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

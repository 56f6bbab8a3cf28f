package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDifficulty string
	flagStartLevel string
	flagPick       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pac-Man",
	Long: `Start a run. Pac-Man keeps moving in the last direction pressed.

Controls:
  Arrows/WASD/hjkl - Move
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower ghosts
  normal - Ghosts speed up as the score grows
  hard   - Fewer lives, faster ghosts
  fixed  - No progression, stays at the config's speeds

Examples:
  pacman play
  pacman play --difficulty hard
  pacman play --level 02-corridors --seed 7
  pacman play --pick`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (default: the config's tick_rate)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagStartLevel, "level", "", "ID of the level to start on")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the starting level from a menu")
}

func runPlay(cmd *cobra.Command, args []string) error {
	lvls, err := loadLevels()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Gameplay.TickRate,
		Seed:     flagSeed,
		Level:    flagStartLevel,
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}

	if flagPick {
		id, err := tui.RunLevelPicker(lvls, rc)
		if err != nil {
			return err
		}
		if id == "" {
			return nil
		}
		rc.Level = id
	}
	if rc.Level != "" {
		if err := findLevel(lvls, rc.Level); err != nil {
			return err
		}
	}

	cfgYAML, err := config.MarshalPacman(cfg)
	if err != nil {
		return err
	}

	tuiLogger, closeLog := fileLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without a journal.
		logger.Warn("could not open run journal", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := pacman.New(pacman.Options{Config: cfg, Levels: lvls})
	return tui.Run(game, rc, tui.Options{
		Store:      store,
		Logger:     tuiLogger,
		Difficulty: flagDifficulty,
		ConfigYAML: string(cfgYAML),
	})
}

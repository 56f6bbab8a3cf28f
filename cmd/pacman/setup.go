package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

// loadLevels reads the level pack named by --levels, or the built-in one.
func loadLevels() ([]levels.Level, error) {
	loader := levels.Builtin()
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	}
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(lvls) == 0 {
		return nil, errors.New("no playable levels found")
	}
	for _, lvl := range lvls {
		for _, w := range lvl.Warnings {
			logger.Warn("level warning", "level", lvl.ID, "warning", w)
		}
	}
	return lvls, nil
}

// loadConfig loads the game config and applies a difficulty preset.
func loadConfig(preset string) (config.PacmanConfig, error) {
	cfg, err := config.LoadPacman(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		p, err := config.ParsePreset(preset)
		if err != nil {
			return cfg, err
		}
		config.ApplyPacmanPreset(&cfg, p)
	}
	return cfg, nil
}

// terminalSize returns the terminal dimensions, or 80x24 when unknown.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// fileLogger sends log output to ~/.pacman/pacman.log while the TUI owns the
// terminal. It falls back to the stderr logger when the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return logger, func() {}
	}
	dir := filepath.Join(home, ".pacman")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return logger, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "pacman.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return logger, func() {}
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pacman",
		Level:           logger.GetLevel(),
	})
	return l, func() { f.Close() }
}

// findLevel reports whether id names one of lvls.
func findLevel(lvls []levels.Level, id string) error {
	for _, lvl := range lvls {
		if lvl.ID == id {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", levels.ErrUnknownLevel, id)
}

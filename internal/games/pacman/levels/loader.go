// Package levels provides level loading for Pac-Man.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels/formats"
)

// ErrUnknownLevel is returned when no level has the requested ID.
var ErrUnknownLevel = errors.New("unknown level")

//go:embed pack/*
var pack embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Open     [][]bool
	Spawns   []engine.Spawn
	Warnings []string
	FilePath string
}

// Grid creates the passability grid of the level.
func (l *Level) Grid() (*engine.Grid, error) {
	g, err := engine.NewGrid(l.Open)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return g, nil
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// PelletCount returns the number of pellet spawns.
func (l *Level) PelletCount() int {
	n := 0
	for _, s := range l.Spawns {
		if s.Kind == engine.KindPellet {
			n++
		}
	}
	return n
}

// Loader handles loading levels from a file tree.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader reading from a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Builtin returns a loader for the level pack compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(pack, "pack")
	if err != nil {
		// The pack directory is embedded above, so Sub cannot fail.
		panic(err)
	}
	return &Loader{fsys: sub, root: "builtin"}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped. Levels are sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file, given relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	return Level{
		ID:       strings.TrimSuffix(path.Base(p), path.Ext(p)),
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Open:     parsed.Open,
		Spawns:   parsed.Spawns,
		Warnings: parsed.Warnings,
		FilePath: path.Join(l.root, p),
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrUnknownLevel, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Parse parses level data in the plain text format.
func Parse(id string, data []byte) (Level, error) {
	parsed, err := formats.ParseText(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", id, err)
	}
	return Level{
		ID:       id,
		Name:     parsed.Name,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Open:     parsed.Open,
		Spawns:   parsed.Spawns,
		Warnings: parsed.Warnings,
	}, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".txt":
		return formats.ParseText(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

func TestBuiltinPack(t *testing.T) {
	lvls, err := Builtin().LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 3)

	ids := []string{lvls[0].ID, lvls[1].ID, lvls[2].ID}
	assert.Equal(t, []string{"01-tiny", "02-corridors", "03-classic"}, ids)

	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			assert.Empty(t, lvl.Warnings)
			assert.NotEmpty(t, lvl.Name)
			assert.Positive(t, lvl.PelletCount())

			g, err := lvl.Grid()
			require.NoError(t, err)

			p := engine.DefaultParams()
			players := 0
			for _, s := range lvl.Spawns {
				size := p.PelletSize
				switch s.Kind {
				case engine.KindPlayer:
					size = p.PlayerSize
					players++
				case engine.KindGhost:
					size = p.GhostSize
				}
				assert.True(t, engine.CouldMoveTo(g, size, s.X, s.Y), "%s spawn at (%v,%v) does not fit", s.Kind, s.X, s.Y)
			}
			assert.Equal(t, 1, players)
		})
	}
}

func TestBuiltinTinyLayout(t *testing.T) {
	lvl, err := Builtin().LoadByID("01-tiny")
	require.NoError(t, err)

	assert.Equal(t, "Tiny", lvl.Title())
	assert.Equal(t, [][]bool{
		{true, true, true, true},
		{true, false, true, false},
		{true, true, true, true},
		{false, false, false, true},
	}, lvl.Open)
}

func TestLoadByIDUnknown(t *testing.T) {
	_, err := Builtin().LoadByID("99-missing")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("b.txt", "2 1\n1 1\npacman 0 0\n")
	write("nested/a.yaml", "rows:\n  - \"P.\"\n")
	write("broken.txt", "not a level\n")
	write("notes.md", "ignored")

	loader := NewLoader(dir)
	ids, err := loader.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	lvl, err := loader.LoadByID("a")
	require.NoError(t, err)
	assert.Equal(t, "a", lvl.Title())
	assert.Equal(t, filepath.Join(dir, "nested", "a.yaml"), filepath.FromSlash(lvl.FilePath))

	_, err = loader.LoadFile("broken.txt")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	lvl, err := Parse("inline", []byte("1 1\n1\npacman 0.1 0.1\nghost x 0\n"))
	require.NoError(t, err)
	assert.Equal(t, "inline", lvl.ID)
	assert.Len(t, lvl.Spawns, 1)
	assert.Len(t, lvl.Warnings, 1)

	_, err = Parse("bad", []byte("1 1\n"))
	assert.Error(t, err)
}

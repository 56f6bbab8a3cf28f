package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`name: Box
rows:
  - "#####"
  - "#P.G#"
  - "# ..#"
  - "#####"
spawns:
  - {kind: ghost, x: 1.5, y: 2}
`)
	lvl, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "Box", lvl.Name)
	assert.Equal(t, 5, lvl.Width)
	assert.Equal(t, 4, lvl.Height)
	assert.True(t, lvl.Open[1][1])
	assert.False(t, lvl.Open[0][0])
	assert.True(t, lvl.Open[2][1], "blank is floor")
	assert.Empty(t, lvl.Warnings)

	kinds := map[engine.Kind]int{}
	for _, s := range lvl.Spawns {
		kinds[s.Kind]++
	}
	assert.Equal(t, 1, kinds[engine.KindPlayer])
	assert.Equal(t, 2, kinds[engine.KindGhost])
	assert.Equal(t, 3, kinds[engine.KindPellet])

	// Drawn spawns are centered on their tile.
	assert.InDelta(t, 1.1, lvl.Spawns[0].X, 1e-9)
	assert.InDelta(t, 1.1, lvl.Spawns[0].Y, 1e-9)
	assert.InDelta(t, 2.4, lvl.Spawns[1].X, 1e-9)
	assert.Equal(t, engine.Spawn{Kind: engine.KindGhost, X: 3, Y: 1}, lvl.Spawns[2])
	assert.Equal(t, engine.Spawn{Kind: engine.KindGhost, X: 1.5, Y: 2}, lvl.Spawns[len(lvl.Spawns)-1])
}

func TestParseYAMLRejectsBadLayout(t *testing.T) {
	_, err := ParseYAML([]byte("name: nothing\n"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseYAML([]byte("rows:\n  - \"###\"\n  - \"##\"\n"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = ParseYAML([]byte("rows: [unterminated\n"))
	assert.Error(t, err)
}

func TestParseYAMLWarnings(t *testing.T) {
	lvl, err := ParseYAML([]byte(`rows:
  - "P?"
spawns:
  - {kind: cherry, x: 0, y: 0}
`))
	require.NoError(t, err)
	assert.Len(t, lvl.Warnings, 2)
	assert.True(t, lvl.Open[0][1])
}

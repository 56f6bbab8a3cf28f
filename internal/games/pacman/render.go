package pacman

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
)

const hudHeight = 2

// playerGlyphs shows the mouth opening toward the facing direction.
var playerGlyphs = map[engine.Direction]rune{
	engine.DirUp:    'v',
	engine.DirRight: '<',
	engine.DirDown:  '^',
	engine.DirLeft:  '>',
}

// layout maps tile coordinates to screen cells.
type layout struct {
	ox, oy int
	scale  int // screen columns per tile
}

func (l layout) cell(x, y float64) (int, int) {
	return l.ox + int(math.Floor(x*float64(l.scale))), l.oy + int(math.Floor(y))
}

// fit centers the grid below the HUD. Terminal cells are about twice as tall
// as they are wide, so two columns per tile are used when there is room.
func fit(g *engine.Grid, w, h int) (layout, bool) {
	if g.Height() > h-hudHeight || g.Width() > w {
		return layout{}, false
	}
	scale := 1
	if g.Width()*2 <= w {
		scale = 2
	}
	return layout{
		ox:    (w - g.Width()*scale) / 2,
		oy:    hudHeight + (h-hudHeight-g.Height())/2,
		scale: scale,
	}, true
}

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.err != nil {
		g.renderOverlay(dst, "Level error", g.err.Error())
		return
	}
	if g.session == nil || g.session.Grid() == nil {
		return
	}

	l, ok := fit(g.session.Grid(), dst.Width(), dst.Height())
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst, l)
	g.renderEntities(dst, l)

	switch g.stateType() {
	case StateWin:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.session.Score()))
	case StateGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case StateLevelCleared:
		g.renderOverlay(dst, "Level cleared!", g.levels[g.levelIndex].Title())
	case StateRespawning:
		g.renderOverlay(dst, "Caught!", fmt.Sprintf("Lives left: %d", g.lives))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	score := 0
	pellets := 0
	if g.session != nil {
		score = g.session.Score()
		pellets = len(g.session.Pellets())
	}
	title := ""
	if g.levelIndex < len(g.levels) {
		title = g.levels[g.levelIndex].Title()
	}

	hud := fmt.Sprintf(" Pac-Man  Score: %d  Lives: %d  Level %d/%d %s  Pellets: %d",
		score, g.lives, g.levelIndex+1, len(g.levels), title, pellets)
	dst.DrawTextColor(0, 0, hud, core.ColorText)

	for x := range dst.Width() {
		dst.SetWithColor(x, 1, '─', core.ColorDim)
	}
}

// renderMaze draws walls.
func (g *Game) renderMaze(dst *core.Screen, l layout) {
	grid := g.session.Grid()
	for y := range grid.Height() {
		for x := range grid.Width() {
			if grid.IsPassable(x, y) {
				continue
			}
			for i := range l.scale {
				dst.SetWithColor(l.ox+x*l.scale+i, l.oy+y, '█', core.ColorWall)
			}
		}
	}
}

// renderEntities draws pellets first so actors stay visible on top of them.
func (g *Game) renderEntities(dst *core.Screen, l layout) {
	for _, p := range g.session.Pellets() {
		x, y := l.cell(p.Center())
		dst.SetWithColor(x, y, '·', core.ColorPellet)
	}

	if p := g.session.Player(); p != nil {
		glyph, ok := playerGlyphs[p.Facing]
		if !ok {
			glyph = 'O'
		}
		x, y := l.cell(p.Center())
		dst.SetWithColor(x, y, glyph, core.ColorPlayer)
	}

	for _, gh := range g.session.Ghosts() {
		x, y := l.cell(gh.Center())
		dst.SetWithColor(x, y, 'M', core.GhostColor(gh.ID))
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorText)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorAlert)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorText)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorPellet:   lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	core.ColorPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorGhost:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGhostAlt: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorAlert:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/levels"
)

// LevelPickerModel lets users choose the level a run starts on.
type LevelPickerModel struct {
	levels    []levels.Level
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  string
	choosing  bool
	quitting  bool
	back      bool
}

// NewLevelPickerModel creates a level picker over lvls.
func NewLevelPickerModel(lvls []levels.Level, width, height int) LevelPickerModel {
	return LevelPickerModel{
		levels:    lvls,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelPickerModel) handleKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selected = m.levels[m.cursor].ID
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level list.
func (m LevelPickerModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("P A C - M A N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select starting level:", m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText("No levels found.", m.width))
		b.WriteString("\n")
	}
	for i, lvl := range m.levels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %-16s %2dx%-2d %3d pellets", cursor, i+1, lvl.Title(), lvl.Width, lvl.Height, lvl.PelletCount())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the chosen level ID, or "" while still choosing.
func (m LevelPickerModel) Selected() string {
	if m.choosing {
		return ""
	}
	return m.selected
}

// RunLevelPicker shows the picker and returns the chosen level ID.
// An empty ID means the user backed out or quit.
func RunLevelPicker(lvls []levels.Level, cfg core.RuntimeConfig) (string, error) {
	p := tea.NewProgram(
		NewLevelPickerModel(lvls, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := finalModel.(LevelPickerModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}

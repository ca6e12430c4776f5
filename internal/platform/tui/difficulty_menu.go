package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bomberman/internal/config"
	"github.com/vovakirdan/tui-bomberman/internal/core"
)

var menuTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("214"))

// DifficultyModel lets users choose a difficulty preset before playing.
type DifficultyModel struct {
	cursor    int
	width     int
	height    int
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
}

// NewDifficultyModel creates a difficulty picker with "normal" preselected.
func NewDifficultyModel(width, height int) DifficultyModel {
	cursor := 0
	for i, p := range config.Presets {
		if p == config.DifficultyNormal {
			cursor = i
		}
	}

	return DifficultyModel{
		cursor:   cursor,
		width:    width,
		height:   height,
		choosing: true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(config.Presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = config.Presets[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("B O M B E R M A N", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range config.Presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-7s %s", cursor, p, p.Describe())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

// Selected returns the chosen preset and whether a choice was made.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing || m.quitting {
		return "", false
	}
	return m.selection, true
}

// centerText pads text on the left so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunDifficultySelector runs the difficulty picker. It reports false when
// the user backed out without choosing.
func RunDifficultySelector(cfg core.RuntimeConfig) (config.DifficultyPreset, bool, error) {
	model := NewDifficultyModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return "", false, nil
	}

	preset, chosen := m.Selected()
	return preset, chosen, nil
}

package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomberman/internal/core"
	"github.com/vovakirdan/tui-bomberman/internal/registry"
)

// footerHeight is the number of terminal rows reserved for the help bar.
const footerHeight = 1

// Options configures a game session.
type Options struct {
	HoldTicks int         // Frames a movement key stays held after its last repeat
	Logger    *log.Logger // Run event sink; nil discards
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	input     *KeyState
	logger    *log.Logger
	gameState core.GameState
	summary   string // Last end-of-run summary reported by the game
	paused    bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	// Initialize the game here; Init has a value receiver and cannot keep state
	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerHeight)),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		input:     NewKeyState(opts.HoldTicks),
		logger:    logger,
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"fps", m.config.TickRate,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

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
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended",
			"score", m.gameState.Score,
			"level", m.gameState.Level,
			"game_over", m.gameState.GameOver)
		return m, tea.Quit

	case core.ActionPause:
		if m.gameState.GameOver {
			return m, nil
		}
		m.paused = !m.paused
		m.input.Reset()
		m.logger.Debug("pause toggled", "paused", m.paused)

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionBomb:
		if !m.paused && !m.gameState.GameOver {
			m.input.Press(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The maze does not depend on
// the terminal size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.gameState.GameOver {
		return m, tickCmd(m.config.TickRate)
	}

	prev := m.gameState
	result := m.game.Step(m.input.Frame())
	m.gameState = result.State
	if result.Summary != "" {
		m.summary = result.Summary
	}
	m.logTransition(prev, result)

	return m, tickCmd(m.config.TickRate)
}

// logTransition records run events between two consecutive states.
func (m Model) logTransition(prev core.GameState, result core.StepResult) {
	cur := result.State
	if cur.Lives < prev.Lives {
		m.logger.Debug("life lost", "lives", cur.Lives, "level", cur.Level)
	}
	if cur.Level > prev.Level {
		m.logger.Info("level cleared", "level", prev.Level, "score", cur.Score)
	}
	if cur.GameOver && !prev.GameOver {
		m.logger.Info("game over", "score", cur.Score, "level", cur.Level, "summary", result.Summary)
	}
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.summary = ""
	m.paused = false
	m.input.Reset()
	m.logger.Info("run restarted", "seed", m.config.Seed)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.screen.Width(), m.screen.Height()

	var body string
	switch {
	case m.gameState.GameOver:
		summary := m.summary
		if summary == "" {
			summary = fmt.Sprintf("Final Score: %d", m.gameState.Score)
		}
		body = renderModal(w, h, "GAME OVER",
			summary,
			fmt.Sprintf("Reached level %d", m.gameState.Level),
			"R: restart  |  Q: quit")
	case m.paused:
		body = renderModal(w, h, "PAUSED", "P/Esc: resume  |  Q: quit")
	default:
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, helpStyle.Render(m.help.View(m.keys)))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

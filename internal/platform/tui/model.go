package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

// RequiredTerminal returns the smallest terminal that shows a board of the
// given size together with the help line.
func RequiredTerminal(gridW, gridH int) (w, h int) {
	w, h = snake.RequiredScreen(gridW, gridH)
	return w, h + helpHeight
}

// Model is the Bubble Tea model for one snake session.
//
// Key and tick messages arrive on the same Bubble Tea event loop, so a
// direction change always lands between two steps, never inside one.
type Model struct {
	engine   *snake.Engine
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	paused   bool
	quitting bool
}

// NewModel creates a model around an existing engine. The engine is not
// started; the player starts it from the title screen.
func NewModel(engine *snake.Engine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		engine: engine,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		config: cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-helpHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	running := m.engine.Status() == snake.StatusRunning

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		if !running {
			m.engine.Start()
			m.paused = false
			m.logger.Info("game started")
		}

	case core.ActionPause:
		if running {
			m.paused = !m.paused
			m.logger.Debug("pause toggled", "paused", m.paused)
		}

	default:
		if !action.IsMove() || m.paused {
			break
		}
		if dir, ok := DirectionFor(action); ok {
			m.engine.SetDirection(dir)
		}
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.engine.Status() == snake.StatusRunning && !m.paused {
		res := m.engine.Step()
		if res.Ended {
			st := res.State
			m.logger.Info("game over",
				"reason", st.Reason,
				"score", st.Score,
				"length", st.Len(),
				"ticks", st.Tick,
			)
		}
	}

	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snake.Render(m.screen, m.engine.State(), m.paused)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Paused reports whether the tick is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts a local Bubble Tea program around engine and blocks until the player quits.
func Run(engine *snake.Engine, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(engine, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

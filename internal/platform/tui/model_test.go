package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T) (Model, *snake.Engine) {
	t.Helper()
	engine, err := snake.NewEngine(snake.Options{Width: 20, Height: 10, PointsPerFood: 10, Seed: 7})
	require.NoError(t, err)

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickInterval: 10 * time.Millisecond}
	return NewModel(engine, cfg, log.New(io.Discard)), engine
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update should return a Model")
	return nm, cmd
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestModelStartsOnSpace(t *testing.T) {
	m, engine := newTestModel(t)
	assert.Equal(t, snake.StatusNotStarted, engine.Status())
	assert.Contains(t, m.View(), "SNAKE GAME")

	m, _ = send(t, m, spaceKey)
	assert.Equal(t, snake.StatusRunning, engine.Status())
	assert.NotContains(t, m.View(), "SNAKE GAME")
}

func TestModelTickSteps(t *testing.T) {
	m, engine := newTestModel(t)
	m, _ = send(t, m, spaceKey)
	before, _ := engine.State().Head()

	_, cmd := send(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd, "tick loop must continue")

	after, _ := engine.State().Head()
	assert.Equal(t, before.Add(snake.DirRight.Delta()), after)
}

func TestModelSteering(t *testing.T) {
	m, engine := newTestModel(t)
	m, _ = send(t, m, spaceKey)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, snake.DirRight, engine.State().Pending, "reverse ignored")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, snake.DirDown, engine.State().Pending)

	before, _ := engine.State().Head()
	_, _ = send(t, m, TickMsg(time.Now()))
	after, _ := engine.State().Head()
	assert.Equal(t, before.Add(snake.DirDown.Delta()), after)
}

func TestModelPause(t *testing.T) {
	m, engine := newTestModel(t)
	m, _ = send(t, m, spaceKey)

	m, _ = send(t, m, runeKey('p'))
	require.True(t, m.Paused())

	tick := engine.State().Tick
	m, _ = send(t, m, TickMsg(time.Now()))
	assert.Equal(t, tick, engine.State().Tick, "paused model must not step")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, snake.DirRight, engine.State().Pending, "steering ignored while paused")
	assert.Contains(t, m.View(), "Paused")

	m, _ = send(t, m, runeKey('p'))
	assert.False(t, m.Paused())
}

func TestModelStartIgnoredWhileRunning(t *testing.T) {
	m, engine := newTestModel(t)
	m, _ = send(t, m, spaceKey)
	m, _ = send(t, m, TickMsg(time.Now()))
	tick := engine.State().Tick
	require.NotZero(t, tick)

	_, _ = send(t, m, spaceKey)
	assert.Equal(t, tick, engine.State().Tick, "space must not restart a running game")
}

func TestModelGameOverAndRestart(t *testing.T) {
	m, engine := newTestModel(t)
	m, _ = send(t, m, spaceKey)

	for i := 0; i < 50 && engine.Status() == snake.StatusRunning; i++ {
		m, _ = send(t, m, TickMsg(time.Now()))
	}
	require.Equal(t, snake.StatusGameOver, engine.Status())
	assert.Contains(t, m.View(), "GAME OVER")

	m, _ = send(t, m, spaceKey)
	assert.Equal(t, snake.StatusRunning, engine.Status())
	assert.Zero(t, engine.State().Score)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := send(t, m, runeKey('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 40, "screen rows plus one help row")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "abc", core.ColorRed)
	s.DrawText(3, 0, "def", core.ColorGreen)

	out := RenderScreen(s)
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "def")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestRequiredTerminal(t *testing.T) {
	w, h := RequiredTerminal(30, 30)
	assert.Equal(t, 62, w)
	assert.Equal(t, 35, h)

	// A terminal of exactly that size shows the board, not the too-small notice.
	engine, err := snake.NewEngine(snake.DefaultOptions())
	require.NoError(t, err)
	m := NewModel(engine, core.RuntimeConfig{ScreenW: w, ScreenH: h}, log.New(io.Discard))
	assert.NotContains(t, m.View(), "Window too small")
}

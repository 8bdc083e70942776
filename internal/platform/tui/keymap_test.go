package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"a", runeKey('a'), core.ActionLeft},
		{"s", runeKey('s'), core.ActionDown},
		{"d", runeKey('d'), core.ActionRight},
		{"vim k", runeKey('k'), core.ActionUp},
		{"vim h", runeKey('h'), core.ActionLeft},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"pause", runeKey('p'), core.ActionPause},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, km.Action(tc.msg))
		})
	}
}

func TestDirectionFor(t *testing.T) {
	pairs := map[core.Action]snake.Direction{
		core.ActionUp:    snake.DirUp,
		core.ActionDown:  snake.DirDown,
		core.ActionLeft:  snake.DirLeft,
		core.ActionRight: snake.DirRight,
	}
	for action, want := range pairs {
		got, ok := DirectionFor(action)
		assert.True(t, ok, action.String())
		assert.Equal(t, want, got, action.String())
		assert.True(t, action.IsMove())
	}

	for _, action := range []core.Action{core.ActionNone, core.ActionStart, core.ActionPause, core.ActionQuit} {
		_, ok := DirectionFor(action)
		assert.False(t, ok, action.String())
		assert.False(t, action.IsMove())
	}
}

func TestHelpListsBindings(t *testing.T) {
	km := DefaultKeyMap()
	assert.NotEmpty(t, km.ShortHelp())
	assert.Len(t, km.FullHelp(), 2)
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-squash/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		ok       bool
	}{
		{"space starts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart, true},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionMoveUp, true},
		{"w", runeKey('w'), core.ActionMoveUp, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionMoveDown, true},
		{"s", runeKey('s'), core.ActionMoveDown, true},
		{"plus", runeKey('+'), core.ActionSpeedUp, true},
		{"minus", runeKey('-'), core.ActionSpeedDown, true},
		{"p pauses", runeKey('p'), core.ActionPause, true},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"help is not an action", runeKey('?'), core.ActionNone, false},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := keys.Action(tt.msg)
			if action != tt.expected || ok != tt.ok {
				t.Errorf("Action(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp lists %d bindings, expected 8", total)
	}
}

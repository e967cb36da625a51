package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-squash/internal/core"
)

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	Start     key.Binding
	Up        key.Binding
	Down      key.Binding
	SpeedUp   key.Binding
	SpeedDown key.Binding
	Pause     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Up, k.Down, k.Pause, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Up, k.Down},
		{k.SpeedUp, k.SpeedDown},
		{k.Pause, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default play bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("+", "=", "]"),
			key.WithHelp("+", "faster paddle"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("-", "_", "["),
			key.WithHelp("-", "slower paddle"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to the logical action it is bound to.
// Help has no logical action and reports false.
func (k KeyMap) Action(msg tea.KeyMsg) (core.Action, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Pause):
		return core.ActionPause, true
	case key.Matches(msg, k.Start):
		return core.ActionStart, true
	case key.Matches(msg, k.Up):
		return core.ActionMoveUp, true
	case key.Matches(msg, k.Down):
		return core.ActionMoveDown, true
	case key.Matches(msg, k.SpeedUp):
		return core.ActionSpeedUp, true
	case key.Matches(msg, k.SpeedDown):
		return core.ActionSpeedDown, true
	}
	return core.ActionNone, false
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-squash/internal/registry"

	// Registers the built-in variants
	_ "github.com/vovakirdan/tui-squash/internal/games/squash"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return nm, cmd
}

func TestMenuSelectsVariant(t *testing.T) {
	m := NewMenuModel(80)
	variants := registry.List()
	if len(variants) < 2 {
		t.Fatalf("expected at least 2 registered variants, got %d", len(variants))
	}

	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Error("select should quit the picker")
	}
	if m.Selected() != variants[1].ID {
		t.Errorf("Selected() = %q, expected %q", m.Selected(), variants[1].ID)
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(80)

	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, expected 0", m.cursor)
	}

	for i := 0; i < len(m.items)+3; i++ {
		m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d after many downs, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(80)

	m, cmd := sendMenu(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.Selected() != "" {
		t.Errorf("Selected() = %q after quit, expected empty", m.Selected())
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestMenuViewListsVariants(t *testing.T) {
	view := NewMenuModel(80).View()

	for _, v := range registry.List() {
		if !strings.Contains(view, v.Title) {
			t.Errorf("view missing variant %q", v.Title)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText should not pad overlong text, got %q", got)
	}
}

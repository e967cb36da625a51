package tui

import (
	"time"

	"github.com/vovakirdan/tui-squash/internal/core"
)

// heldActions are the actions written into every InputState.
var heldActions = []core.Action{
	core.ActionStart,
	core.ActionMoveUp,
	core.ActionMoveDown,
	core.ActionSpeedUp,
	core.ActionSpeedDown,
}

// KeyLatch turns terminal key presses into held actions.
// Terminals report presses and auto-repeat but never releases, so an action
// stays held until its hold window passes without another press.
type KeyLatch struct {
	hold  time.Duration
	until map[core.Action]time.Time
	taps  map[core.Action]bool
}

// NewKeyLatch creates a latch with the given hold window.
func NewKeyLatch(hold time.Duration) *KeyLatch {
	return &KeyLatch{
		hold:  hold,
		until: make(map[core.Action]time.Time),
		taps:  make(map[core.Action]bool),
	}
}

// Press holds a until now+hold.
func (l *KeyLatch) Press(a core.Action, now time.Time) {
	l.until[a] = now.Add(l.hold)
}

// Tap holds a for exactly the next State call.
func (l *KeyLatch) Tap(a core.Action) {
	l.taps[a] = true
}

// Reset releases everything.
func (l *KeyLatch) Reset() {
	clear(l.until)
	clear(l.taps)
}

// State returns the input for a tick at now. Expired holds and taps are dropped.
func (l *KeyLatch) State(now time.Time) core.InputState {
	in := core.NewInputState()
	for _, a := range heldActions {
		in.Release(a)
	}

	for a, until := range l.until {
		if now.Before(until) {
			in.Press(a)
		} else {
			delete(l.until, a)
		}
	}
	for a := range l.taps {
		in.Press(a)
	}
	clear(l.taps)

	return in
}

package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-squash/internal/core"
)

func TestKeyLatchHold(t *testing.T) {
	start := time.Unix(1000, 0)
	l := NewKeyLatch(100 * time.Millisecond)

	l.Press(core.ActionMoveUp, start)

	tests := []struct {
		name   string
		at     time.Duration
		expect float64
	}{
		{"immediately", 0, core.Pressed},
		{"inside window", 99 * time.Millisecond, core.Pressed},
		{"window elapsed", 100 * time.Millisecond, core.Released},
		{"stays released", 200 * time.Millisecond, core.Released},
	}

	for _, tt := range tests {
		in := l.State(start.Add(tt.at))
		if got := in.Value(core.ActionMoveUp); got != tt.expect {
			t.Errorf("%s: MoveUp = %v, expected %v", tt.name, got, tt.expect)
		}
	}
}

func TestKeyLatchRepeatExtends(t *testing.T) {
	start := time.Unix(1000, 0)
	l := NewKeyLatch(100 * time.Millisecond)

	l.Press(core.ActionMoveDown, start)
	l.Press(core.ActionMoveDown, start.Add(80*time.Millisecond))

	if !l.State(start.Add(150 * time.Millisecond)).Held(core.ActionMoveDown) {
		t.Error("repeat press should extend the hold window")
	}
}

func TestKeyLatchTapLastsOneState(t *testing.T) {
	now := time.Unix(1000, 0)
	l := NewKeyLatch(time.Second)

	l.Tap(core.ActionStart)

	if !l.State(now).Held(core.ActionStart) {
		t.Fatal("tap should be held on the next state")
	}
	if l.State(now).Held(core.ActionStart) {
		t.Error("tap should be released on the following state")
	}
}

func TestKeyLatchWritesReleased(t *testing.T) {
	l := NewKeyLatch(time.Second)
	in := l.State(time.Unix(1000, 0))

	for _, a := range heldActions {
		if v := in.Value(a); v != core.Released {
			t.Errorf("%v = %v, expected released", a, v)
		}
	}
}

func TestKeyLatchReset(t *testing.T) {
	now := time.Unix(1000, 0)
	l := NewKeyLatch(time.Second)

	l.Press(core.ActionMoveUp, now)
	l.Tap(core.ActionStart)
	l.Reset()

	in := l.State(now)
	if in.Held(core.ActionMoveUp) || in.Held(core.ActionStart) {
		t.Error("Reset should release every action")
	}
}

package core

import "testing"

func TestInputStateDefaults(t *testing.T) {
	var zero InputState
	if zero.Value(ActionStart) != Released {
		t.Error("Zero InputState should read every action as released")
	}

	s := NewInputState()
	if s.Held(ActionMoveUp) {
		t.Error("New InputState should not hold MoveUp")
	}
}

func TestInputStatePressRelease(t *testing.T) {
	var s InputState // nil map must be usable

	s.Press(ActionMoveDown)
	if s.Value(ActionMoveDown) != Pressed || !s.Held(ActionMoveDown) {
		t.Errorf("Press should set 1.0, got %f", s.Value(ActionMoveDown))
	}

	s.Release(ActionMoveDown)
	if s.Value(ActionMoveDown) != Released || s.Held(ActionMoveDown) {
		t.Errorf("Release should set 0.0, got %f", s.Value(ActionMoveDown))
	}
}

func TestInputStateClear(t *testing.T) {
	s := NewInputState()
	s.Press(ActionStart)
	s.Press(ActionSpeedUp)

	s.Clear()

	if s.Held(ActionStart) || s.Held(ActionSpeedUp) {
		t.Error("Clear should release all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionStart, "Start"},
		{ActionMoveUp, "MoveUp"},
		{ActionMoveDown, "MoveDown"},
		{ActionSpeedUp, "SpeedUp"},
		{ActionSpeedDown, "SpeedDown"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestSequenceSource(t *testing.T) {
	src := NewSequenceSource(0.1, 0.9)
	got := []float64{src.Float64(), src.Float64(), src.Float64()}
	expected := []float64{0.1, 0.9, 0.1}

	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("draw %d = %f, expected %f", i, got[i], expected[i])
		}
	}

	if NewSequenceSource().Float64() != 0.5 {
		t.Error("Empty sequence should return 0.5")
	}
}

func TestRuntimeConfigResolution(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 80, ScreenH: 24, ScaleFactor: 2}
	res := cfg.Resolution()
	if res.X != 160 || res.Y != 48 {
		t.Errorf("Resolution() = %+v, expected {160 48}", res)
	}

	cfg.ScaleFactor = 0
	if res := cfg.Resolution(); res.X != 80 {
		t.Errorf("Zero scale should fall back to 1, got %+v", res)
	}

	if dt := (RuntimeConfig{TickRate: 50}).Dt(); dt != 0.02 {
		t.Errorf("Dt() = %f, expected 0.02", dt)
	}
}

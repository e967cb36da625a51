package squash

import (
	"github.com/vovakirdan/tui-squash/internal/core"
)

// Autopilot is an input collaborator that presses start and tracks the ball
// with the paddle. It drives headless runs and demos.
type Autopilot struct {
	// Deadzone is the fraction of the paddle half-extent within which the
	// autopilot holds still. Zero chases the ball exactly.
	Deadzone float64
}

// Input derives this tick's held actions from a snapshot.
func (a Autopilot) Input(snap Snapshot) core.InputState {
	in := core.NewInputState()
	in.Press(core.ActionStart)

	diff := snap.Ball.Y - snap.Paddle.Y
	deadzone := snap.Paddle.Size * a.Deadzone
	switch {
	case diff < -deadzone:
		in.Press(core.ActionMoveUp)
	case diff > deadzone:
		in.Press(core.ActionMoveDown)
	}
	return in
}

package squash

import (
	"math"

	"github.com/vovakirdan/tui-squash/internal/core"
)

// Snapshot is a read-only view of everything a renderer draws.
// It is a value; mutating it does not affect the engine.
type Snapshot struct {
	Tick       uint64
	Resolution core.Vec2
	Scale      float64
	Paddle     Paddle
	Ball       Ball
	Round      int
	Started    bool
}

// Snapshot returns the current renderable state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:       e.tickCount,
		Resolution: e.resolution,
		Scale:      e.scale,
		Paddle:     e.paddle,
		Ball:       e.ball,
		Round:      e.round,
		Started:    e.started,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, f := range []float64{
		snap.Resolution.X, snap.Resolution.Y,
		snap.Paddle.X, snap.Paddle.Y, snap.Paddle.Speed,
		snap.Ball.X, snap.Ball.Y, snap.Ball.Target.X, snap.Ball.Target.Y,
	} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.Round) //#nosec G115 -- hash computation
	if snap.Started {
		h = h*31 + 1
	}
	return h
}

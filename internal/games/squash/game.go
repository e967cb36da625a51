// Package squash implements the single-player squash simulation: a paddle on
// the left deflects a ball that homes toward a target row, bounces off the far
// wall, and speeds up with every round.
package squash

import (
	"math"

	"github.com/vovakirdan/tui-squash/internal/config"
	"github.com/vovakirdan/tui-squash/internal/core"
)

// Event is something notable that happened during a tick.
type Event int

const (
	EventStart      Event = iota // Idle -> Running
	EventPaddleHit               // Ball retargeted toward the far wall
	EventWallBounce              // Ball retargeted toward the paddle, round scored
	EventMiss                    // Ball passed the paddle; engine reset to idle
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// GameState is the round state a HUD needs.
type GameState struct {
	Round   int
	Started bool
}

// StepResult is returned by Update after each tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}

// Engine owns the paddle, the ball and the round state.
// It is not safe for concurrent use; the platform loop drives it from one goroutine.
type Engine struct {
	paddle Paddle
	ball   Ball

	started    bool
	round      int
	resolution core.Vec2 // Viewport in logical units
	scale      float64   // Logical units per platform unit

	cfg       config.SquashConfig
	policy    Policy
	rng       core.RandomSource
	tickCount uint64
}

// New creates an engine laid out for the runtime viewport.
// The retarget draw is seeded from runtime.Seed.
func New(cfg config.SquashConfig, runtime core.RuntimeConfig) *Engine {
	e := &Engine{
		cfg:    cfg,
		policy: PolicyFromConfig(cfg.Policy),
		rng:    core.NewRandomSource(runtime.Seed),
	}

	e.paddle.Speed = cfg.Paddle.Speed
	e.paddle.Color = parseColor(cfg.Paddle.Color, core.ColorBrightWhite)
	e.ball.Speed = cfg.Ball.Speed
	e.ball.Color = parseColor(cfg.Ball.Color, core.ColorOrange)

	e.OnResize(float64(runtime.ScreenW), float64(runtime.ScreenH), runtime.ScaleFactor)
	return e
}

func parseColor(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// SetPolicy replaces the rule set. Entity state is left untouched.
func (e *Engine) SetPolicy(p Policy) {
	e.policy = p
}

// SetRandomSource replaces the source used for retarget draws.
func (e *Engine) SetRandomSource(src core.RandomSource) {
	e.rng = src
}

// Update advances the simulation by dt seconds using the held input.
func (e *Engine) Update(dt float64, in core.InputState) StepResult {
	var events []Event

	if in.Held(core.ActionStart) && !e.started {
		e.started = true
		events = append(events, EventStart)
	}

	e.movePaddle(dt, in)

	if e.policy.DifficultyKeys {
		e.adjustPaddleSpeed(in)
	}

	if e.started {
		events = e.step(dt, events)
	}

	e.tickCount++
	return StepResult{State: e.State(), Events: events}
}

// movePaddle applies each held direction only when the whole move stays on
// screen. A move that would overshoot is dropped, not clamped.
func (e *Engine) movePaddle(dt float64, in core.InputState) {
	p := &e.paddle
	delta := p.Speed * e.resolution.Y * dt

	if in.Held(core.ActionMoveUp) {
		if y := p.Y - delta; y-p.Size >= 0 {
			p.Y = y
		}
	}
	if in.Held(core.ActionMoveDown) {
		if y := p.Y + delta; y+p.Size <= e.resolution.Y {
			p.Y = y
		}
	}
}

func (e *Engine) adjustPaddleSpeed(in core.InputState) {
	p := &e.paddle

	if in.Held(core.ActionSpeedUp) {
		p.Speed += e.policy.SpeedStep
	}
	if in.Held(core.ActionSpeedDown) {
		p.Speed = math.Max(p.Speed-e.policy.SpeedStep, e.policy.MinPaddleSpeed)
	}
}

// step runs contact, bounce, miss and motion in that order.
func (e *Engine) step(dt float64, events []Event) []Event {
	b := &e.ball
	p := &e.paddle

	// Each retarget fires once per crossing: a ball already sent to the far
	// wall is not re-sent while it still overlaps the paddle face, and a ball
	// already sent home does not score again while still past the wall.
	if b.Target.X < e.resolution.X &&
		b.VerticalBounds().Overlaps(p.VerticalBounds()) &&
		b.Left() <= p.Front() {
		b.Target = core.Vec2{X: e.resolution.X, Y: e.nextTargetY()}
		events = append(events, EventPaddleHit)
	}

	if b.Target.X > 0 && b.Right() >= e.resolution.X {
		b.Target = core.Vec2{X: 0, Y: e.nextTargetY()}
		e.round++
		events = append(events, EventWallBounce)
	}

	if b.Left() <= 0 {
		e.Reset()
		return append(events, EventMiss)
	}

	speed := e.policy.Escalation.Speed(b.Speed, e.round)

	dx := speed * e.resolution.X * dt
	if b.Direction() == Right {
		b.X += dx
	} else {
		b.X -= dx
	}

	// Homing steer: the correction shrinks with the distance to the target row.
	// Large dt can overshoot; that is accepted.
	diff := b.Y - b.Target.Y
	b.Y -= core.Sign(diff) * speed * math.Abs(diff) * dt

	return events
}

func (e *Engine) nextTargetY() float64 {
	return e.policy.Target.NextY(e.resolution.Y, e.rng)
}

// Reset returns to idle: round zero, ball centered and aimed at the left
// wall's midpoint, paddle vertically centered.
func (e *Engine) Reset() {
	e.round = 0
	e.started = false

	center := e.resolution.Center()
	e.ball.X = center.X
	e.ball.Y = center.Y
	e.ball.Target = core.Vec2{X: 0, Y: center.Y}

	e.paddle.Y = center.Y
}

// OnResize adopts a new viewport of w x h platform units at the given scale.
// Geometry is re-derived from the new resolution and the engine is reset;
// positions from the old viewport are discarded rather than rescaled.
func (e *Engine) OnResize(w, h, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	e.scale = scale
	e.resolution = core.Vec2{X: w, Y: h}.Scale(scale)

	e.layout()
	e.Reset()
}

// layout derives entity geometry from the resolution and the config fractions.
func (e *Engine) layout() {
	e.paddle.X = e.resolution.X * e.cfg.Paddle.X
	e.paddle.Size = e.resolution.Y * e.cfg.Paddle.Size
	e.paddle.Thickness = e.resolution.X * e.cfg.Paddle.Thickness
	e.ball.Size = e.resolution.Y * e.cfg.Ball.Size
}

// State returns the current round state.
func (e *Engine) State() GameState {
	return GameState{
		Round:   e.round,
		Started: e.started,
	}
}

// Paddle returns a copy of the paddle.
func (e *Engine) Paddle() Paddle {
	return e.paddle
}

// Ball returns a copy of the ball.
func (e *Engine) Ball() Ball {
	return e.ball
}

// Round returns the number of far-wall bounces since the last reset.
func (e *Engine) Round() int {
	return e.round
}

// Started reports whether the engine is running.
func (e *Engine) Started() bool {
	return e.started
}

// Resolution returns the viewport size in logical units.
func (e *Engine) Resolution() core.Vec2 {
	return e.resolution
}

// ScaleFactor returns the logical units per platform unit.
func (e *Engine) ScaleFactor() float64 {
	return e.scale
}

// EffectiveSpeed returns the ball speed for the current round.
func (e *Engine) EffectiveSpeed() float64 {
	return e.policy.Escalation.Speed(e.ball.Speed, e.round)
}

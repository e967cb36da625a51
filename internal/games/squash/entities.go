package squash

import (
	"github.com/vovakirdan/tui-squash/internal/core"
)

// Direction is the horizontal travel direction of the ball.
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "Left"
	}
	return "Right"
}

// Paddle is the player-controlled vertical deflector.
type Paddle struct {
	X, Y      float64 // Center position
	Size      float64 // Vertical half-extent
	Thickness float64 // Horizontal half-extent
	Speed     float64 // Fraction of vertical resolution per second
	Color     core.Color
}

// VerticalBounds returns the paddle's vertical extent.
func (p Paddle) VerticalBounds() core.Interval {
	return core.Around(p.Y, p.Size)
}

// Front returns the x coordinate of the face the ball strikes.
func (p Paddle) Front() float64 {
	return p.X + p.Thickness
}

// Ball has no velocity: its position and target alone drive motion.
type Ball struct {
	X, Y   float64 // Center position
	Size   float64 // Radius
	Speed  float64 // Fraction of horizontal resolution per second
	Target core.Vec2
	Color  core.Color
}

// Direction is Right while x <= target.x, Left otherwise.
func (b Ball) Direction() Direction {
	if b.X > b.Target.X {
		return Left
	}
	return Right
}

// Left returns the left edge of the ball.
func (b Ball) Left() float64 {
	return b.X - b.Size
}

// Right returns the right edge of the ball.
func (b Ball) Right() float64 {
	return b.X + b.Size
}

// VerticalBounds returns the ball's vertical extent.
func (b Ball) VerticalBounds() core.Interval {
	return core.Around(b.Y, b.Size)
}

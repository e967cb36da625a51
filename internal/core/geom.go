// Package core provides fundamental types and utilities for the squash platform.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Vec2 is a point or size in logical units. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Center returns the midpoint of the area spanned by v from the origin.
func (v Vec2) Center() Vec2 {
	return Vec2{X: v.X / 2, Y: v.Y / 2}
}

// Interval is a closed range [Min, Max] on one axis.
type Interval struct {
	Min, Max float64
}

// Around returns the interval of half-extent r centered on c.
func Around(c, r float64) Interval {
	return Interval{Min: c - r, Max: c + r}
}

// Overlaps reports whether two closed intervals share at least one point.
func (i Interval) Overlaps(other Interval) bool {
	return i.Min <= other.Max && other.Min <= i.Max
}

// Rect represents an axis-aligned cell rectangle used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Sign returns -1, 0 or 1 following the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Package config provides YAML-based configuration loading and difficulty
// presets for the squash simulation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-squash/internal/core"
)

// Target policy names accepted in PolicyConfig.Target.
const (
	TargetRandom   = "random"
	TargetMidpoint = "midpoint"
)

// SquashConfig contains all configuration for the squash simulation.
type SquashConfig struct {
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Policy  PolicyConfig  `yaml:"policy"`
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	X         float64 `yaml:"x"`         // Center, fraction of width
	Size      float64 `yaml:"size"`      // Vertical half-extent, fraction of height
	Thickness float64 `yaml:"thickness"` // Horizontal half-extent, fraction of width
	Speed     float64 `yaml:"speed"`     // Fraction of height per second
	Color     string  `yaml:"color"`
}

// BallConfig defines ball geometry and base speed.
type BallConfig struct {
	Size  float64 `yaml:"size"`  // Radius, fraction of height
	Speed float64 `yaml:"speed"` // Fraction of width per second
	Color string  `yaml:"color"`
}

// PolicyConfig selects the retarget and difficulty rules.
type PolicyConfig struct {
	Target         string  `yaml:"target"`
	Escalation     bool    `yaml:"escalation"`
	EscalationStep float64 `yaml:"escalation_step"`
	DifficultyKeys bool    `yaml:"difficulty_keys"`
	SpeedStep      float64 `yaml:"speed_step"`
	MinPaddleSpeed float64 `yaml:"min_paddle_speed"`
}

// DisplayConfig defines how terminal cells map to logical units.
type DisplayConfig struct {
	ScaleFactor float64 `yaml:"scale_factor"`
}

// InputConfig tunes the terminal key latch.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// HoldDuration returns the key latch window.
func (c InputConfig) HoldDuration() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// AudioConfig toggles sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Validate checks that the config describes a playable layout.
// All problems are reported together.
func (c SquashConfig) Validate() error {
	var errs []error

	if c.Paddle.Size <= 0 || c.Paddle.Size >= 0.5 {
		errs = append(errs, fmt.Errorf("paddle.size must be in (0, 0.5), got %g", c.Paddle.Size))
	}
	if c.Paddle.Thickness <= 0 {
		errs = append(errs, fmt.Errorf("paddle.thickness must be positive, got %g", c.Paddle.Thickness))
	}
	if c.Paddle.X <= 0 || c.Paddle.X >= 1 {
		errs = append(errs, fmt.Errorf("paddle.x must be in (0, 1), got %g", c.Paddle.X))
	}
	if c.Paddle.Speed <= 0 {
		errs = append(errs, fmt.Errorf("paddle.speed must be positive, got %g", c.Paddle.Speed))
	}
	if c.Ball.Size <= 0 || c.Ball.Size >= 0.5 {
		errs = append(errs, fmt.Errorf("ball.size must be in (0, 0.5), got %g", c.Ball.Size))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball.speed must be positive, got %g", c.Ball.Speed))
	}
	if c.Policy.Target != TargetRandom && c.Policy.Target != TargetMidpoint {
		errs = append(errs, fmt.Errorf("policy.target must be %q or %q, got %q", TargetRandom, TargetMidpoint, c.Policy.Target))
	}
	if c.Policy.EscalationStep < 0 {
		errs = append(errs, fmt.Errorf("policy.escalation_step must not be negative, got %g", c.Policy.EscalationStep))
	}
	if c.Policy.MinPaddleSpeed <= 0 {
		errs = append(errs, fmt.Errorf("policy.min_paddle_speed must be positive, got %g", c.Policy.MinPaddleSpeed))
	}
	if c.Display.ScaleFactor <= 0 {
		errs = append(errs, fmt.Errorf("display.scale_factor must be positive, got %g", c.Display.ScaleFactor))
	}
	if c.Input.HoldMS <= 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must be positive, got %d", c.Input.HoldMS))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %g", c.Audio.Volume))
	}
	if _, ok := core.ParseColor(c.Paddle.Color); !ok && c.Paddle.Color != "" {
		errs = append(errs, fmt.Errorf("paddle.color: unknown color %q", c.Paddle.Color))
	}
	if _, ok := core.ParseColor(c.Ball.Color); !ok && c.Ball.Color != "" {
		errs = append(errs, fmt.Errorf("ball.color: unknown color %q", c.Ball.Color))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

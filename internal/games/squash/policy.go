package squash

import (
	"github.com/vovakirdan/tui-squash/internal/config"
	"github.com/vovakirdan/tui-squash/internal/core"
)

// TargetPolicy picks the vertical coordinate of a new target after a bounce.
type TargetPolicy interface {
	NextY(height float64, rng core.RandomSource) float64
}

// RandomTarget draws the new row uniformly over the viewport height.
type RandomTarget struct{}

// NextY implements TargetPolicy.
func (RandomTarget) NextY(height float64, rng core.RandomSource) float64 {
	return rng.Float64() * height
}

// MidpointTarget always aims at the vertical center. It never draws from rng.
type MidpointTarget struct{}

// NextY implements TargetPolicy.
func (MidpointTarget) NextY(height float64, _ core.RandomSource) float64 {
	return height / 2
}

// Escalation computes the ball's effective speed for a round.
type Escalation interface {
	Speed(base float64, round int) float64
}

// LinearEscalation adds Step for every round plus one, so round 0 already
// runs Step faster than the base speed.
type LinearEscalation struct {
	Step float64
}

// Speed implements Escalation.
func (l LinearEscalation) Speed(base float64, round int) float64 {
	return base + float64(1+round)*l.Step
}

// NoEscalation keeps the base speed for every round.
type NoEscalation struct{}

// Speed implements Escalation.
func (NoEscalation) Speed(base float64, _ int) float64 {
	return base
}

// Policy bundles the rules that changed between versions of the game.
type Policy struct {
	Target         TargetPolicy
	Escalation     Escalation
	DifficultyKeys bool    // Honor SpeedUp/SpeedDown
	SpeedStep      float64 // Paddle speed change per tick while a difficulty key is held
	MinPaddleSpeed float64 // Floor for paddle speed
}

// CanonicalPolicy is random retargeting with (1 + round) / 100 escalation.
func CanonicalPolicy() Policy {
	return Policy{
		Target:         RandomTarget{},
		Escalation:     LinearEscalation{Step: 0.01},
		DifficultyKeys: true,
		SpeedStep:      0.01,
		MinPaddleSpeed: 0.01,
	}
}

// PolicyFromConfig builds a Policy from its YAML description.
func PolicyFromConfig(pc config.PolicyConfig) Policy {
	p := Policy{
		Target:         RandomTarget{},
		Escalation:     NoEscalation{},
		DifficultyKeys: pc.DifficultyKeys,
		SpeedStep:      pc.SpeedStep,
		MinPaddleSpeed: pc.MinPaddleSpeed,
	}
	if pc.Target == config.TargetMidpoint {
		p.Target = MidpointTarget{}
	}
	if pc.Escalation {
		p.Escalation = LinearEscalation{Step: pc.EscalationStep}
	}
	if p.MinPaddleSpeed <= 0 {
		p.MinPaddleSpeed = 0.01
	}
	return p
}

package squash

import (
	"github.com/vovakirdan/tui-squash/internal/config"
	"github.com/vovakirdan/tui-squash/internal/registry"
)

// Variant IDs registered by this package.
const (
	VariantSquash  = "squash"
	VariantClassic = "classic"
)

func init() {
	registry.Register(registry.Variant{
		ID:          VariantSquash,
		Title:       "Squash",
		Description: "Random bounce targets, ball speeds up every round, +/- tune paddle speed",
		Policy: config.PolicyConfig{
			Target:         config.TargetRandom,
			Escalation:     true,
			EscalationStep: 0.01,
			DifficultyKeys: true,
			SpeedStep:      0.01,
			MinPaddleSpeed: 0.01,
		},
	})

	registry.Register(registry.Variant{
		ID:          VariantClassic,
		Title:       "Classic Squash",
		Description: "Ball always returns to mid-height at a constant speed",
		Policy: config.PolicyConfig{
			Target:         config.TargetMidpoint,
			Escalation:     false,
			DifficultyKeys: false,
			SpeedStep:      0.01,
			MinPaddleSpeed: 0.01,
		},
	})
}

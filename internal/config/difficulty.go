package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Presets tune speeds and sizes; only fixed changes whether the ball escalates,
// so a constant-speed variant stays constant under easy, normal and hard.
func ApplyPreset(cfg *SquashConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.Speed = 0.2
		cfg.Paddle.Size = 0.14
		cfg.Policy.EscalationStep = 0.005
	case DifficultyNormal:
		// Config values as loaded
	case DifficultyHard:
		cfg.Ball.Speed = 0.35
		cfg.Paddle.Size = 0.08
		cfg.Policy.EscalationStep = 0.02
	case DifficultyFixed:
		cfg.Policy.Escalation = false
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/squash.yaml
var defaultSquashYAML []byte

// DefaultSquashConfig returns the built-in configuration. It matches the
// embedded YAML and backs it up if that ever fails to parse.
func DefaultSquashConfig() SquashConfig {
	return SquashConfig{
		Paddle: PaddleConfig{
			X:         0.125,
			Size:      0.1,
			Thickness: 0.0125,
			Speed:     0.8,
			Color:     "bright_white",
		},
		Ball: BallConfig{
			Size:  0.02,
			Speed: 0.25,
			Color: "orange",
		},
		Policy: PolicyConfig{
			Target:         TargetRandom,
			Escalation:     true,
			EscalationStep: 0.01,
			DifficultyKeys: true,
			SpeedStep:      0.01,
			MinPaddleSpeed: 0.01,
		},
		Display: DisplayConfig{
			ScaleFactor: 1.0,
		},
		Input: InputConfig{
			HoldMS: 120,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSquashYAML
}

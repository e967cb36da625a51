package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultSquashConfig()

	fixed := base
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Policy.Escalation {
		t.Error("fixed preset should disable escalation")
	}

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	hard := base
	ApplyPreset(&hard, DifficultyHard)

	if !(easy.Ball.Speed < base.Ball.Speed && base.Ball.Speed < hard.Ball.Speed) {
		t.Errorf("ball speed should rise easy < normal < hard, got %g, %g, %g",
			easy.Ball.Speed, base.Ball.Speed, hard.Ball.Speed)
	}
	if !(easy.Paddle.Size > hard.Paddle.Size) {
		t.Error("easy paddle should be larger than hard paddle")
	}

	if easy.Policy.EscalationStep >= hard.Policy.EscalationStep {
		t.Error("easy should escalate slower than hard")
	}

	for _, cfg := range []SquashConfig{fixed, easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}

func TestApplyPresetKeepsEscalationOff(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		cfg := DefaultSquashConfig()
		cfg.Policy.Escalation = false

		ApplyPreset(&cfg, preset)
		if cfg.Policy.Escalation {
			t.Errorf("preset %q turned escalation back on", preset)
		}
	}
}

func TestApplyPresetKeepsEscalationOn(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := DefaultSquashConfig()

		ApplyPreset(&cfg, preset)
		if !cfg.Policy.Escalation {
			t.Errorf("preset %q should leave escalation on", preset)
		}
	}
}

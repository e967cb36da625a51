package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-squash/internal/config"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name       string
		variant    string
		difficulty string
		check      func(t *testing.T, cfg config.SquashConfig)
		wantErr    bool
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg config.SquashConfig) {
				if cfg.Policy.Target != config.TargetRandom || !cfg.Policy.Escalation {
					t.Errorf("unexpected default policy %+v", cfg.Policy)
				}
			},
		},
		{
			name:    "classic variant",
			variant: "classic",
			check: func(t *testing.T, cfg config.SquashConfig) {
				if cfg.Policy.Target != config.TargetMidpoint || cfg.Policy.Escalation || cfg.Policy.DifficultyKeys {
					t.Errorf("classic policy not applied: %+v", cfg.Policy)
				}
			},
		},
		{
			name:       "preset applies after variant",
			variant:    "squash",
			difficulty: "fixed",
			check: func(t *testing.T, cfg config.SquashConfig) {
				if cfg.Policy.Escalation {
					t.Error("fixed preset should disable escalation")
				}
			},
		},
		{
			name:       "classic stays constant speed on easy",
			variant:    "classic",
			difficulty: "easy",
			check: func(t *testing.T, cfg config.SquashConfig) {
				if cfg.Policy.Escalation {
					t.Error("easy preset must not turn escalation on for classic")
				}
				if cfg.Ball.Speed != 0.2 {
					t.Errorf("ball.speed = %g, expected easy speed 0.2", cfg.Ball.Speed)
				}
			},
		},
		{
			name:       "classic stays constant speed on hard",
			variant:    "classic",
			difficulty: "hard",
			check: func(t *testing.T, cfg config.SquashConfig) {
				if cfg.Policy.Escalation {
					t.Error("hard preset must not turn escalation on for classic")
				}
			},
		},
		{name: "unknown variant", variant: "tennis", wantErr: true},
		{name: "unknown difficulty", difficulty: "insane", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig("", tt.variant, tt.difficulty)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() failed: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("level filtering wrong, output %q", out)
	}
	if !strings.Contains(out, "squash") {
		t.Errorf("missing prefix, output %q", out)
	}

	if _, err := newLogger(&buf, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOpenLogOutput(t *testing.T) {
	w, closeFn, err := openLogOutput("", io.Discard)
	if err != nil || w != io.Discard {
		t.Fatalf("empty path should return fallback, got %v, %v", w, err)
	}
	closeFn()

	path := filepath.Join(t.TempDir(), "squash.log")
	w, closeFn, err = openLogOutput(path, io.Discard)
	if err != nil {
		t.Fatalf("openLogOutput() failed: %v", err)
	}
	if _, err := io.WriteString(w, "hello\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hello\n" {
		t.Errorf("log file = %q, %v", data, err)
	}
}

func TestRuntimeConfig(t *testing.T) {
	cfg := config.DefaultSquashConfig()
	cfg.Display.ScaleFactor = 2

	flagSeed = 42
	flagFPS = 30
	t.Cleanup(func() { flagSeed, flagFPS = 0, 60 })

	rt := runtimeConfig(100, 40, cfg)
	if rt.ScreenW != 100 || rt.ScreenH != 40 || rt.ScaleFactor != 2 || rt.TickRate != 30 || rt.Seed != 42 {
		t.Errorf("runtimeConfig() = %+v", rt)
	}

	flagSeed = 0
	if runtimeConfig(100, 40, cfg).Seed == 0 {
		t.Error("zero seed should be replaced by a time-based seed")
	}
}

func TestOpenAudioDisabled(t *testing.T) {
	logger, err := newLogger(io.Discard, "info")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	if p := openAudio(false, 0.5, logger); p != nil {
		t.Error("disabled audio should not open a player")
	}
}

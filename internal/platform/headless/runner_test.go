package headless

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-squash/internal/config"
	"github.com/vovakirdan/tui-squash/internal/core"
	"github.com/vovakirdan/tui-squash/internal/games/squash"
)

func newEngine(seed int64) *squash.Engine {
	return squash.New(config.DefaultSquashConfig(), core.RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		ScaleFactor: 1,
		TickRate:    60,
		Seed:        seed,
	})
}

func TestRunnerScoresRounds(t *testing.T) {
	r := NewRunner(newEngine(1), squash.Autopilot{Deadzone: 0.2}, 1.0/60, nil)

	sum, err := r.Run(context.Background(), 6000)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if sum.Ticks != 6000 {
		t.Errorf("Ticks = %d, expected 6000", sum.Ticks)
	}
	if sum.Bounces == 0 || sum.Hits == 0 {
		t.Errorf("autopilot should hit and score, got %+v", sum)
	}
	if sum.BestRound > sum.Bounces {
		t.Errorf("best round %d cannot exceed total bounces %d", sum.BestRound, sum.Bounces)
	}
	if sum.Final.Tick != 6000 {
		t.Errorf("Final.Tick = %d, expected 6000", sum.Final.Tick)
	}
}

func TestRunnerDeterministic(t *testing.T) {
	a, _ := NewRunner(newEngine(9), squash.Autopilot{Deadzone: 0.5}, 1.0/30, nil).Run(context.Background(), 3000)
	b, _ := NewRunner(newEngine(9), squash.Autopilot{Deadzone: 0.5}, 1.0/30, nil).Run(context.Background(), 3000)

	if a != b {
		t.Errorf("same seed produced different runs:\n%+v\n%+v", a, b)
	}
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(newEngine(1), squash.Autopilot{}, 1.0/60, nil).Run(ctx, 100)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
}

func TestRunnerLogsMisses(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	// A pilot that never moves still starts the game; the ball eventually gets past
	lazy := squash.Autopilot{Deadzone: 1000}
	sum, err := NewRunner(newEngine(3), lazy, 1.0/60, logger).Run(context.Background(), 20000)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if sum.Misses == 0 {
		t.Fatal("a motionless paddle should miss at least once")
	}
	if !strings.Contains(buf.String(), "miss") {
		t.Errorf("expected miss to be logged, got %q", buf.String())
	}
}

// Package headless drives the simulation without a terminal, using the
// autopilot as its input collaborator. It backs the sim command and soak tests.
package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-squash/internal/games/squash"
)

// ctxCheckEvery is how many ticks run between cancellation checks.
const ctxCheckEvery = 1024

// Summary aggregates what happened during a run.
type Summary struct {
	Ticks     int
	Hits      int
	Bounces   int
	Misses    int
	BestRound int
	Final     squash.Snapshot
}

// Runner steps an engine at a fixed dt.
type Runner struct {
	engine *squash.Engine
	pilot  squash.Autopilot
	dt     float64
	logger *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(engine *squash.Engine, pilot squash.Autopilot, dt float64, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		engine: engine,
		pilot:  pilot,
		dt:     dt,
		logger: logger,
	}
}

// Run advances the engine ticks times or until ctx is cancelled.
func (r *Runner) Run(ctx context.Context, ticks int) (Summary, error) {
	var sum Summary

	for i := 0; i < ticks; i++ {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				sum.Final = r.engine.Snapshot()
				return sum, fmt.Errorf("headless: stopped after %d ticks: %w", sum.Ticks, err)
			}
		}

		result := r.engine.Update(r.dt, r.pilot.Input(r.engine.Snapshot()))
		sum.Ticks++

		for _, ev := range result.Events {
			switch ev {
			case squash.EventPaddleHit:
				sum.Hits++
			case squash.EventWallBounce:
				sum.Bounces++
				sum.BestRound = max(sum.BestRound, result.State.Round)
				r.logger.Debug("wall bounce", "tick", i, "round", result.State.Round)
			case squash.EventMiss:
				sum.Misses++
				r.logger.Info("miss", "tick", i)
			case squash.EventStart:
				r.logger.Debug("started", "tick", i)
			}
		}
	}

	sum.Final = r.engine.Snapshot()
	return sum, nil
}

// Package tui runs the squash engine inside a Bubble Tea program.
// It maps terminal keys to held actions, feeds frame deltas to the engine
// and draws its snapshot.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps dt after a stall (suspend, slow terminal).
const maxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed since last, falling back to the
// nominal tick interval on the first frame.
func frameDelta(last, now time.Time, nominal float64) float64 {
	if last.IsZero() || !now.After(last) {
		return nominal
	}
	d := now.Sub(last)
	if d > maxFrameDelta {
		d = maxFrameDelta
	}
	return d.Seconds()
}

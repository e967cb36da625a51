package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-squash/internal/core"
	"github.com/vovakirdan/tui-squash/internal/games/squash"
)

// Glyphs used by the renderer.
const (
	glyphPaddle = '█'
	glyphBall   = '●'
	glyphWall   = '│'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	hudStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// toCell converts a logical coordinate to a cell index.
func toCell(v, scale float64) int {
	if scale <= 0 {
		scale = 1
	}
	return int(math.Floor(v / scale))
}

// DrawSnapshot draws the playfield for snap into s.
func DrawSnapshot(s *core.Screen, snap squash.Snapshot) {
	s.Clear()

	// Far wall
	s.DrawVLine(s.Width()-1, 0, s.Height(), glyphWall, core.ColorGray)

	p := snap.Paddle
	x0 := toCell(p.X-p.Thickness, snap.Scale)
	x1 := max(x0, toCell(p.X+p.Thickness, snap.Scale))
	y0 := toCell(p.Y-p.Size, snap.Scale)
	y1 := max(y0, toCell(p.Y+p.Size, snap.Scale))
	s.DrawRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), glyphPaddle, p.Color)

	b := snap.Ball
	s.SetColored(toCell(b.X, snap.Scale), toCell(b.Y, snap.Scale), glyphBall, b.Color)

	if !snap.Started {
		s.DrawTextCentered(s.Height()/3, "PRESS SPACE TO START")
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderHUD renders the status line below the playfield.
func RenderHUD(snap squash.Snapshot, best int, paused bool) string {
	line := hudStyle.Render(fmt.Sprintf("Round %d  Best %d  Paddle %.2f", snap.Round, best, snap.Paddle.Speed))
	if paused {
		line += "  " + pausedStyle.Render("PAUSED")
	}
	return line
}

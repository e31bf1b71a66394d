package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/invaders"
)

// ansiCodes maps core.Color to ANSI 256-color codes. ColorDefault has none.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

// Status bar styles
var (
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	newBestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	helpLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderStatusBar renders the one-line bar below the playfield: the scoreboard
// pushed by the simulation on the left and key help on the right.
func RenderStatusBar(board invaders.Scoreboard, newBest bool, help string, width int) string {
	left := fmt.Sprintf(" SCORE %d  LIVES %d  HI %d  WAVE %d ", board.Score, board.Lives, board.HighScore, board.Wave)
	rendered := statusStyle.Render(left)
	if newBest {
		rendered += newBestStyle.Render(" NEW HIGH SCORE ")
	}

	gap := width - lipgloss.Width(rendered) - lipgloss.Width(help) - 1
	if gap < 1 {
		return rendered
	}
	return rendered + strings.Repeat(" ", gap) + helpLineStyle.Render(help)
}

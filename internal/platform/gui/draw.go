package gui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/invaders"
)

// Layout constants in screen pixels.
const (
	hudHeight  = 24
	glyphWidth = 7 // basicfont.Face7x13 advance
	lineHeight = 16
)

var (
	backgroundColor = color.RGBA{0x05, 0x05, 0x10, 0xff}
	hudColor        = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	separatorColor  = color.RGBA{0x44, 0x44, 0x55, 0xff}
	playerColor     = color.RGBA{0x33, 0xdd, 0x55, 0xff}
	playerShotColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	enemyShotColor  = color.RGBA{0xff, 0x55, 0x33, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0xc0}
	titleColor      = color.RGBA{0xff, 0xee, 0x88, 0xff}
)

// palette maps terminal colors to RGB so both frontends agree on rank colors.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:     {0xdd, 0x33, 0x33, 0xff},
	core.ColorGreen:   {0x33, 0xcc, 0x33, 0xff},
	core.ColorYellow:  {0xee, 0xcc, 0x22, 0xff},
	core.ColorBlue:    {0x33, 0x66, 0xee, 0xff},
	core.ColorMagenta: {0xcc, 0x44, 0xcc, 0xff},
	core.ColorCyan:    {0x33, 0xcc, 0xcc, 0xff},
	core.ColorWhite:   {0xdd, 0xdd, 0xdd, 0xff},
	core.ColorOrange:  {0xff, 0x88, 0x22, 0xff},
	core.ColorGray:    {0x88, 0x88, 0x88, 0xff},
}

// rankColor returns the fill color for an enemy rank.
func rankColor(rank int) color.RGBA {
	c := invaders.EnemyColors[rank%len(invaders.EnemyColors)]
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return hudColor
}

// hudText is the status line drawn above the playfield.
func hudText(board invaders.Scoreboard) string {
	return fmt.Sprintf("SCORE %d   WAVE %d   HI %d   %s",
		board.Score, board.Wave, board.HighScore, strings.Repeat("<3 ", board.Lives))
}

// overlayLines returns the centered message for the current state, if any.
func overlayLines(state invaders.State, paused bool, score int) []string {
	switch {
	case state == invaders.StateNotStarted:
		return []string{"SPACE INVADERS", "Press ENTER or click to start"}
	case state == invaders.StateGameOver:
		return []string{"GAME OVER", fmt.Sprintf("Score: %d", score), "Press ENTER, R or click to restart"}
	case paused:
		return []string{"PAUSED", "Press P to resume"}
	}
	return nil
}

func fillRect(dst *ebiten.Image, r core.Rect, dy float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y+dy), float32(r.W), float32(r.H), clr, false)
}

// draw renders the simulation onto dst.
func (a *App) draw(dst *ebiten.Image) {
	dst.Fill(backgroundColor)

	sim := a.game.Sim()
	w, _ := sim.Playfield()

	text.Draw(dst, hudText(a.board), basicfont.Face7x13, 8, 16, hudColor)
	vector.DrawFilledRect(dst, 0, hudHeight-2, float32(w), 1, separatorColor, false)

	for _, e := range sim.Enemies() {
		fillRect(dst, e.Rect(), hudHeight, rankColor(e.Rank))
	}
	for _, p := range sim.PlayerShots() {
		fillRect(dst, p.Rect(), hudHeight, playerShotColor)
	}
	for _, p := range sim.EnemyShots() {
		fillRect(dst, p.Rect(), hudHeight, enemyShotColor)
	}
	fillRect(dst, sim.Player().Rect(), hudHeight, playerColor)

	if lines := overlayLines(sim.State(), a.game.Paused(), sim.Score()); lines != nil {
		a.drawOverlay(dst, lines)
	}
}

// drawOverlay dims the playfield and centers lines of text.
func (a *App) drawOverlay(dst *ebiten.Image, lines []string) {
	bounds := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), overlayColor, false)

	top := bounds.Dy()/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		x := (bounds.Dx() - len(line)*glyphWidth) / 2
		clr := color.Color(hudColor)
		if i == 0 {
			clr = titleColor
		}
		text.Draw(dst, line, basicfont.Face7x13, x, top+i*lineHeight, clr)
	}
}

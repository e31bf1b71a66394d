package invaders

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/invaders/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '█'
	PlayerTurret    = '▲'
	PlayerShotChar  = '|'
	EnemyShotChar   = '¦'
	HUDSeparator    = '─'
	LifeChar        = '♥'
	playfieldOffset = 2 // HUD row plus separator
)

// Enemy glyphs and colors by rank, back row first (cycling).
var (
	EnemyGlyphs = []rune{'▓', '▒', '░', '#'}
	EnemyColors = []core.Color{core.ColorMagenta, core.ColorCyan, core.ColorYellow, core.ColorGreen}
)

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	v := newViewport(g.sim, dst)
	g.renderEnemies(dst, v)
	g.renderShots(dst, v)
	g.renderPlayer(dst, v)
	g.renderOverlay(dst)
}

// renderHUD draws score, wave, lives and the best score.
func (g *Game) renderHUD(dst *core.Screen) {
	board := g.sim.Scoreboard()

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", board.Score), core.ColorBrightWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("Wave %d", board.Wave))

	right := fmt.Sprintf("Hi: %d  %s", board.HighScore, strings.Repeat(string(LifeChar), board.Lives))
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightRed)

	dst.DrawHLine(0, 1, dst.Width(), HUDSeparator)
}

// viewport maps playfield units onto screen cells below the HUD.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(sim *Simulation, dst *core.Screen) viewport {
	pw, ph := sim.Playfield()
	w := dst.Width()
	h := dst.Height() - playfieldOffset
	return viewport{
		sx: float64(w) / pw,
		sy: float64(h) / ph,
		w:  w,
		h:  h,
	}
}

// cells converts a playfield rectangle to a cell rectangle at least one cell in size.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * v.sx))
	y = int(math.Floor(r.Y*v.sy)) + playfieldOffset
	w = max(int(math.Round(r.W*v.sx)), 1)
	h = max(int(math.Round(r.H*v.sy)), 1)
	return x, y, w, h
}

func (g *Game) renderEnemies(dst *core.Screen, v viewport) {
	for _, e := range g.sim.Enemies() {
		x, y, w, h := v.cells(e.Rect())
		glyph := EnemyGlyphs[e.Rank%len(EnemyGlyphs)]
		color := EnemyColors[e.Rank%len(EnemyColors)]
		dst.DrawRect(x, y, w, h, glyph, color)
	}
}

func (g *Game) renderShots(dst *core.Screen, v viewport) {
	for _, p := range g.sim.PlayerShots() {
		x, y, _, _ := v.cells(p.Rect())
		dst.SetColored(x, y, PlayerShotChar, core.ColorBrightGreen)
	}
	for _, p := range g.sim.EnemyShots() {
		x, y, _, _ := v.cells(p.Rect())
		dst.SetColored(x, y, EnemyShotChar, core.ColorBrightRed)
	}
}

// renderPlayer draws the craft on the bottom rows with the turret on top.
func (g *Game) renderPlayer(dst *core.Screen, v viewport) {
	x, _, w, h := v.cells(g.sim.Player().Rect())
	y := dst.Height() - h
	dst.DrawRect(x, y, w, h, PlayerChar, core.ColorGreen)
	if y-1 >= playfieldOffset {
		dst.SetColored(x+w/2, y-1, PlayerTurret, core.ColorBrightGreen)
	}
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.sim.State() == StateNotStarted:
		g.drawCenteredBox(dst, "SPACE INVADERS", "Press ENTER to start")

	case g.sim.State() == StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.sim.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

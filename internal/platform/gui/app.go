// Package gui runs the game in a desktop window using Ebitengine.
package gui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/invaders/internal/audio"
	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/invaders"
	"github.com/vovakirdan/invaders/internal/storage"
)

// Options are the collaborators the window runs with. All fields are optional.
type Options struct {
	Store  *storage.Store
	Sound  *audio.SoundManager
	Logger *log.Logger
	Scale  float64 // Window size multiplier
}

// App implements ebiten.Game on top of an invaders.Game.
type App struct {
	game   *invaders.Game
	board  invaders.Scoreboard
	opts   Options
	logger *log.Logger
	keys   keySource
	width  int
	height int

	runID    string
	recorded bool // Whether the current game over has been handled
}

// NewApp creates the window game. The clock is wall time.
func NewApp(gameCfg config.InvadersConfig, cfg core.RuntimeConfig, opts Options) *App {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &App{
		opts:   opts,
		logger: logger,
		keys:   ebitenKeys{},
		width:  int(gameCfg.Playfield.Width),
		height: int(gameCfg.Playfield.Height) + hudHeight,
	}

	deps := invaders.Deps{
		Sink:   invaders.ScoreSinkFunc(func(b invaders.Scoreboard) { a.board = b }),
		Logger: logger,
	}
	if opts.Store != nil {
		deps.Store = opts.Store
	}

	a.game = invaders.NewGame(gameCfg, deps, core.SystemClock{})
	cfg.ScreenW, cfg.ScreenH = a.width, a.height
	a.game.Reset(cfg)
	return a
}

// Update advances the game by one tick.
func (a *App) Update() error {
	in := readInput(a.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	a.step(in)
	return nil
}

// step runs one frame of input through the game and handles its effects.
func (a *App) step(in core.InputFrame) {
	wasRunning := a.game.Sim().State() == invaders.StateRunning
	state := a.game.Step(in).State

	if !wasRunning && a.game.Sim().State() == invaders.StateRunning {
		a.runID = uuid.NewString()
		a.recorded = false
		a.logger.Info("game started", "run", a.runID)
	}

	a.opts.Sound.HandleEvents(a.game.Sim().DrainEvents())

	if state.GameOver && !a.recorded {
		a.recorded = true
		a.saveScore(state)
	}
}

// saveScore stores a finished game with a positive score.
func (a *App) saveScore(state core.GameState) {
	if a.opts.Store == nil || state.Score == 0 {
		return
	}
	if _, err := a.opts.Store.SaveScore(a.game.ID(), a.runID, state.Score, state.Wave); err != nil {
		a.logger.Warn("failed to save score", "run", a.runID, "err", err)
		return
	}
	a.logger.Info("score saved", "run", a.runID, "score", state.Score, "wave", state.Wave)
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.draw(screen)
}

// Layout keeps the logical screen at playfield size plus the HUD.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// Run opens the window and blocks until it is closed.
func Run(gameCfg config.InvadersConfig, cfg core.RuntimeConfig, opts Options) error {
	app := NewApp(gameCfg, cfg, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	tps := cfg.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(int(float64(app.width)*scale), int(float64(app.height)*scale))
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(app)
}

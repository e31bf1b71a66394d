package invaders

import (
	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

// Minimum terminal size for a playable layout.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Game adapts a Simulation to the frame-stepped terminal platform.
// It maps actions to simulation calls, owns pause, and renders to a core.Screen.
type Game struct {
	cfg   config.InvadersConfig
	deps  Deps
	clock core.Clock

	sim     *Simulation
	runtime core.RuntimeConfig
	paused  bool

	screenTooSmall bool
}

// NewGame creates a terminal game. A nil clock means wall time.
func NewGame(cfg config.InvadersConfig, deps Deps, clock core.Clock) *Game {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Game{cfg: cfg, deps: deps, clock: clock}
}

// ID returns the identifier used for score history.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset builds a fresh simulation for the given runtime.
// A non-zero runtime seed makes enemy fire reproducible.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.paused = false

	deps := g.deps
	if deps.RNG == nil && runtime.Seed != 0 {
		deps.RNG = core.NewSimpleRNG(runtime.Seed)
	}
	g.sim = NewSimulation(g.cfg, deps)
}

// Resize updates the layout without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.sim.State() {
	case StateNotStarted:
		if in.Has(core.ActionStart) || in.Has(core.ActionFire) {
			g.sim.Start()
		}
		return core.StepResult{State: g.State()}

	case StateGameOver:
		if in.Has(core.ActionStart) || in.Has(core.ActionRestart) {
			g.sim.Start()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sim.Advance(InputFromFrame(in), g.clock.Now())
	return core.StepResult{State: g.State()}
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		Wave:     g.sim.Wave(),
		Started:  g.sim.State() != StateNotStarted,
		GameOver: g.sim.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Snapshot returns the simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Sim returns the underlying simulation.
func (g *Game) Sim() *Simulation {
	return g.sim
}

package invaders

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
)

func newTestGame() *Game {
	g := NewGame(config.DefaultInvadersConfig(), Deps{}, core.NewTickClock(epoch, time.Second/60))
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameStartAndPause(t *testing.T) {
	g := newTestGame()

	if g.State().Started {
		t.Fatal("game should wait for start")
	}

	g.Step(frame(core.ActionLeft))
	if g.Sim().State() != StateNotStarted {
		t.Errorf("movement should not start the game")
	}

	result := g.Step(frame(core.ActionStart))
	if !result.State.Started || g.Sim().State() != StateRunning {
		t.Fatalf("ActionStart did not start the game: %+v", result.State)
	}

	g.Step(frame(core.ActionRight))
	if g.Sim().Player().X != 365 {
		t.Errorf("Player.X = %v, expected 365", g.Sim().Player().X)
	}

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("ActionPause did not pause")
	}
	tick := g.Sim().Tick()
	g.Step(frame(core.ActionRight))
	if g.Sim().Tick() != tick {
		t.Error("paused game advanced")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second ActionPause did not resume")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionStart))
	g.Sim().endGame("test")

	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	g.Step(frame(core.ActionFire))
	if g.Sim().State() != StateGameOver {
		t.Error("fire should not restart a finished game")
	}

	g.Step(frame(core.ActionRestart))
	if g.Sim().State() != StateRunning {
		t.Errorf("State = %v after restart, expected %v", g.Sim().State(), StateRunning)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionStart)
		case i%10 == 0:
			inputs[i].Set(core.ActionFire)
		case i%90 < 40:
			inputs[i].Set(core.ActionLeft)
		default:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := newTestGame()
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "SPACE INVADERS") {
		t.Error("title overlay missing before start")
	}

	g.Step(frame(core.ActionStart))
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Wave 1") {
		t.Errorf("HUD row = %q, expected wave", screen.Row(0))
	}
	if strings.Contains(out, "SPACE INVADERS") {
		t.Error("title overlay should disappear once running")
	}
	if !strings.ContainsRune(out, EnemyGlyphs[0]) {
		t.Error("back row enemies not drawn")
	}
	if !strings.ContainsRune(screen.Row(23), PlayerChar) {
		t.Errorf("bottom row = %q, expected player", screen.Row(23))
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := NewGame(config.DefaultInvadersConfig(), Deps{}, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1})
	screen := core.NewScreen(20, 10)

	g.Step(frame(core.ActionStart))
	if g.State().Started {
		t.Error("game started on a too-small screen")
	}

	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected too-small message")
	}

	g.Resize(80, 24)
	g.Step(frame(core.ActionStart))
	if !g.State().Started {
		t.Error("game should start after resizing")
	}
}

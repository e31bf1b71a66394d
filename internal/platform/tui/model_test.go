package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/invaders"
	"github.com/vovakirdan/invaders/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// landingConfig places one enemy on the player's row so the first tick ends the game.
func landingConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.Formation.Rows = 1
	cfg.Formation.Cols = 1
	cfg.Formation.TopMargin = cfg.Playfield.Height - cfg.Player.Height - cfg.Formation.EnemyHeight
	cfg.EnemyFire.Probability = 0
	return cfg
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, TickMsg(time.Now()))
}

func TestModelStartsOnEnter(t *testing.T) {
	m := NewModel(config.DefaultInvadersConfig(), testRuntime(), Options{})

	if m.game.Sim().State() != invaders.StateNotStarted {
		t.Fatal("model should open on the title screen")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	if m.game.Sim().State() != invaders.StateRunning {
		t.Fatalf("state = %v, expected running", m.game.Sim().State())
	}
	if m.runID == "" {
		t.Error("a run id should be assigned when a game starts")
	}
}

func TestModelHeldDirectionMovesPlayer(t *testing.T) {
	m := NewModel(config.DefaultInvadersConfig(), testRuntime(), Options{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	startX := m.game.Sim().Player().X
	m = send(t, m, runeKey('a'))
	m = tick(t, m)
	m = tick(t, m)

	if got := m.game.Sim().Player().X; got != startX-10 {
		t.Errorf("Player.X = %v, expected %v after two held ticks", got, startX-10)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(config.DefaultInvadersConfig(), testRuntime(), Options{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if view := next.View(); view != "" {
		t.Errorf("View after quit = %q, expected empty", view)
	}
}

func TestModelGameOverRecordsStats(t *testing.T) {
	stats := &SessionStats{}
	m := NewModel(landingConfig(), testRuntime(), Options{Store: openStore(t), Stats: stats})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = tick(t, m)

	if !m.gameState.GameOver {
		t.Fatal("landing formation should end the game")
	}
	if !m.scoreSaved {
		t.Error("game over should be handled once")
	}

	// Further ticks on the game over screen must not count again.
	m = tick(t, m)
	games, best := stats.Totals()
	if games != 1 || best != 0 {
		t.Errorf("Totals() = (%d, %d), expected (1, 0)", games, best)
	}

	scores, err := m.opts.Store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("zero score should not be stored, got %d rows", len(scores))
	}
}

func TestModelSaveScore(t *testing.T) {
	store := openStore(t)
	m := NewModel(config.DefaultInvadersConfig(), testRuntime(), Options{Store: store})
	m.runID = "run-1"
	m.gameState = core.GameState{Score: 150, Wave: 2, Started: true, GameOver: true}

	m.saveScore()

	entry, err := store.ScoreByRun("run-1")
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if entry == nil {
		t.Fatal("score was not saved")
	}
	if entry.Score != 150 || entry.Wave != 2 || entry.GameID != "invaders" {
		t.Errorf("saved entry = %+v", entry)
	}
}

func TestModelUsesStoredHighScore(t *testing.T) {
	store := openStore(t)
	if err := store.SetHighScore("highScore", 900); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	m := NewModel(config.DefaultInvadersConfig(), testRuntime(), Options{Store: store})
	if m.hud.board.HighScore != 900 {
		t.Errorf("status bar high score = %d, expected 900", m.hud.board.HighScore)
	}
	if !strings.Contains(m.View(), "HI 900") {
		t.Error("view should show the stored high score")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := NewModel(config.DefaultInvadersConfig(), testRuntime(), Options{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	tickBefore := m.game.Sim().Tick()

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
	if m.game.Sim().State() != invaders.StateRunning || m.game.Sim().Tick() != tickBefore {
		t.Error("resize should not reset the game")
	}
}

func TestHudSinkNewBest(t *testing.T) {
	h := &hudSink{}
	h.ScoreChanged(invaders.Scoreboard{Score: 0, Lives: 3, HighScore: 50, Wave: 1})
	if h.newBest() {
		t.Error("fresh game is not a new best")
	}

	h.ScoreChanged(invaders.Scoreboard{Score: 40, Lives: 3, HighScore: 50, Wave: 1})
	if h.newBest() {
		t.Error("40 does not beat 50")
	}

	h.ScoreChanged(invaders.Scoreboard{Score: 60, Lives: 3, HighScore: 60, Wave: 1})
	if !h.newBest() {
		t.Error("60 beats the starting best of 50")
	}

	// Next game starts from the new best.
	h.ScoreChanged(invaders.Scoreboard{Score: 0, Lives: 3, HighScore: 60, Wave: 1})
	if h.newBest() {
		t.Error("new game should compare against 60")
	}
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/invaders/internal/audio"
	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/invaders"
	"github.com/vovakirdan/invaders/internal/storage"
)

// Options are the collaborators a game session runs with. All fields are optional.
type Options struct {
	Store      *storage.Store
	Sound      *audio.SoundManager
	Logger     *log.Logger
	HoldWindow time.Duration
	Stats      *SessionStats
}

// SessionStats accumulates per-session results, read after the program exits.
type SessionStats struct {
	mu          sync.Mutex
	gamesPlayed int
	bestScore   int
}

// record adds one finished game.
func (s *SessionStats) record(score int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gamesPlayed++
	s.bestScore = max(s.bestScore, score)
}

// Totals returns games played and the best score so far.
func (s *SessionStats) Totals() (games, best int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gamesPlayed, s.bestScore
}

// hudSink receives scoreboard updates from the simulation for the status bar.
type hudSink struct {
	board     invaders.Scoreboard
	startBest int
	primed    bool
}

// ScoreChanged implements invaders.ScoreSink.
func (h *hudSink) ScoreChanged(board invaders.Scoreboard) {
	if !h.primed || board.Score == 0 {
		h.startBest = board.HighScore
		h.primed = true
	}
	h.board = board
}

// newBest reports whether the current game beat the best score it started with.
func (h *hudSink) newBest() bool {
	return h.board.Score > h.startBest
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *invaders.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	hud        *hudSink
	holds      *HoldTracker
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      string
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(gameCfg config.InvadersConfig, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hud := &hudSink{}
	deps := invaders.Deps{Sink: hud, Logger: logger}
	if opts.Store != nil {
		deps.Store = opts.Store
	}

	// One row is reserved for the status bar
	screenH := max(cfg.ScreenH-1, 1)

	m := Model{
		game:       invaders.NewGame(gameCfg, deps, core.SystemClock{}),
		screen:     core.NewScreen(cfg.ScreenW, screenH),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		hud:        hud,
		holds:      NewHoldTracker(opts.HoldWindow),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.game.Reset(m.gameRuntime())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// gameRuntime is the runtime config with the status bar row removed.
func (m Model) gameRuntime() core.RuntimeConfig {
	rt := m.config
	rt.ScreenH = m.screen.Height()
	return rt
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.holds.Press(action, time.Now())
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the game running and only changes the layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	sim := m.game.Sim()
	wasRunning := sim.State() == invaders.StateRunning

	m.holds.Apply(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Starting or restarting replaces the simulation state, so re-read it.
	if !wasRunning && m.game.Sim().State() == invaders.StateRunning {
		m.runID = uuid.NewString()
		m.scoreSaved = false
		m.holds.Release()
		m.logger.Info("game started", "run", m.runID)
	}

	events := m.game.Sim().DrainEvents()
	m.opts.Sound.HandleEvents(events)
	for _, ev := range events {
		m.logger.Debug("event", "kind", ev.Kind, "tick", ev.Tick, "points", ev.Points, "wave", ev.Wave)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished game once.
func (m *Model) saveScore() {
	m.scoreSaved = true
	m.opts.Stats.record(m.gameState.Score)

	if m.opts.Store == nil || m.gameState.Score == 0 {
		return
	}
	if m.runID == "" {
		m.runID = uuid.NewString()
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.runID, m.gameState.Score, m.gameState.Wave); err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("failed to save score", "run", m.runID, "err", err)
		return
	}
	m.logger.Info("score saved", "run", m.runID, "score", m.gameState.Score, "wave", m.gameState.Wave)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	status := RenderStatusBar(m.hud.board, m.hud.newBest(), m.help.View(m.keyMapper.Keys), m.config.ScreenW)
	return RenderScreen(m.screen) + "\n" + status
}

// Run starts the Bubble Tea program for the game.
func Run(gameCfg config.InvadersConfig, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(gameCfg, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

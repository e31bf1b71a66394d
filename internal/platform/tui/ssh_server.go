package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.invaders/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate for every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.invaders/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

type contextKey string

const (
	sessionIDKey    contextKey = "invaders-session-id"
	sessionStatsKey contextKey = "invaders-session-stats"
)

// SSHServer wraps a Wish SSH server that runs one game per session.
type SSHServer struct {
	config  SSHServerConfig
	gameCfg config.InvadersConfig
	server  *ssh.Server
	store   *storage.Store
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, gameCfg config.InvadersConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "invaders-ssh",
		})
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config:  cfg,
		gameCfg: gameCfg,
		store:   store,
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".invaders", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first, so logging wraps the program.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	ctx := sshSession.Context()
	stats, _ := ctx.Value(sessionStatsKey).(*SessionStats)
	sessionID, _ := ctx.Value(sessionIDKey).(string)

	model := NewModel(s.gameCfg, cfg, Options{
		Store:  s.store,
		Logger: s.logger.With("session", sessionID),
		Stats:  stats,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events and records the session when it ends.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		sessionID := uuid.NewString()
		stats := &SessionStats{}
		sshSession.Context().SetValue(sessionIDKey, sessionID)
		sshSession.Context().SetValue(sessionStatsKey, stats)

		started := time.Now()
		s.logger.Info("session started",
			"session", sessionID,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)

		next(sshSession)

		games, best := stats.Totals()
		s.logger.Info("session ended",
			"session", sessionID,
			"user", sshSession.User(),
			"games", games,
			"best", best,
			"duration", time.Since(started).Round(time.Second),
		)

		if s.store == nil {
			return
		}
		rec := storage.SessionRecord{
			SessionID:   sessionID,
			User:        sshSession.User(),
			RemoteAddr:  sshSession.RemoteAddr().String(),
			GamesPlayed: games,
			BestScore:   best,
			StartedAt:   started,
			EndedAt:     time.Now(),
		}
		if _, err := s.store.SaveSession(rec); err != nil {
			s.logger.Warn("failed to save session", "session", sessionID, "error", err)
		}
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

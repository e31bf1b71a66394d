// Package storage provides SQLite-based persistence for scores and the best score.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
// It is safe for concurrent use; database/sql serialises access.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents one finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	RunID     string
	Score     int
	Wave      int
	CreatedAt time.Time
}

// SessionRecord represents one SSH session of the game server.
type SessionRecord struct {
	ID          int64
	SessionID   string
	User        string
	RemoteAddr  string
	GamesPlayed int
	BestScore   int
	StartedAt   time.Time
	EndedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			run_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			wave INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_scores_run_id ON scores(run_id);

		CREATE TABLE IF NOT EXISTS high_scores (
			key TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			user TEXT NOT NULL,
			remote_addr TEXT NOT NULL,
			games_played INTEGER NOT NULL DEFAULT 0,
			best_score INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME NOT NULL,
			ended_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID, runID string, score, wave int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, run_id, score, wave) VALUES (?, ?, ?, ?)",
		gameID, runID, score, wave,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending, earlier games first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, run_id, score, wave, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.RunID, &e.Score, &e.Wave, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ScoreByRun retrieves the score recorded for a run. Returns nil if there is none.
func (s *Store) ScoreByRun(runID string) (*ScoreEntry, error) {
	var e ScoreEntry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, game_id, run_id, score, wave, created_at
		 FROM scores
		 WHERE run_id = ?`,
		runID,
	).Scan(&e.ID, &e.GameID, &e.RunID, &e.Score, &e.Wave, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// ClearScores deletes the score history for the given game.
// The best score is kept; use ResetHighScore to drop it.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// HighScore returns the best score stored under key.
// Returns 0 if nothing has been stored yet.
func (s *Store) HighScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE key = ?", key).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	return score, nil
}

// SetHighScore stores score under key, replacing any previous value.
func (s *Store) SetHighScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (key, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ResetHighScore deletes the best score stored under key.
func (s *Store) ResetHighScore(key string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}

// SaveSession records a finished SSH session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO sessions
		 (session_id, user, remote_addr, games_played, best_score, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID,
		rec.User,
		rec.RemoteAddr,
		rec.GamesPlayed,
		rec.BestScore,
		rec.StartedAt.UTC().Format(sqliteTime),
		rec.EndedAt.UTC().Format(sqliteTime),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recently finished sessions.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, user, remote_addr, games_played, best_score, started_at, ended_at
		 FROM sessions
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var results []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var startedAt, endedAt any

		if err := rows.Scan(
			&rec.ID,
			&rec.SessionID,
			&rec.User,
			&rec.RemoteAddr,
			&rec.GamesPlayed,
			&rec.BestScore,
			&startedAt,
			&endedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		rec.StartedAt = parseTime(startedAt)
		rec.EndedAt = parseTime(endedAt)
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	BestScore  int
	BestWave   int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(wave), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.BestScore, &stats.BestWave, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime converts a DATETIME column value. The driver may return either
// time.Time or the raw text; unknown values give the zero time.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

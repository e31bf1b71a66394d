package invaders

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/core"
)

//go:generate go tool mockgen -destination=./mocks/sinks_mock.go -package=mocks . ScoreSink,HighScoreStore

// Scoreboard is the set of numbers a score display shows.
type Scoreboard struct {
	Score     int
	Lives     int
	HighScore int
	Wave      int
}

// ScoreSink receives score display updates.
// Called on reset and whenever a tick changes score or lives.
type ScoreSink interface {
	ScoreChanged(board Scoreboard)
}

// HighScoreStore persists the best score under a key.
type HighScoreStore interface {
	HighScore(key string) (int, error)
	SetHighScore(key string, score int) error
}

// Deps are the collaborators a Simulation is built with.
// Any nil field is replaced with a no-op (or, for RNG, a time-seeded generator).
type Deps struct {
	RNG          core.RNG
	Sink         ScoreSink
	Store        HighScoreStore
	Logger       *log.Logger
	HighScoreKey string // Overrides the configured key when set
}

// ScoreSinkFunc adapts a function to ScoreSink.
type ScoreSinkFunc func(Scoreboard)

// ScoreChanged calls f(board).
func (f ScoreSinkFunc) ScoreChanged(board Scoreboard) {
	f(board)
}

type nopSink struct{}

func (nopSink) ScoreChanged(Scoreboard) {}

// MemoryStore is an in-process HighScoreStore, used when nothing is persisted.
type MemoryStore struct {
	scores map[string]int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]int)}
}

// HighScore returns the stored score for key, or 0.
func (m *MemoryStore) HighScore(key string) (int, error) {
	return m.scores[key], nil
}

// SetHighScore stores score under key.
func (m *MemoryStore) SetHighScore(key string, score int) error {
	m.scores[key] = score
	return nil
}

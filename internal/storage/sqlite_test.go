package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetHighScore("highScore", 420); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("highScore")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 420 {
		t.Errorf("HighScore = %d, expected 420", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score int
		wave  int
	}{
		{100, 2},
		{50, 1},
		{200, 3},
	}
	for _, r := range runs {
		if _, err := store.SaveScore("invaders", uuid.NewString(), r.score, r.wave); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game id
	if _, err := store.SaveScore("other", uuid.NewString(), 500, 9); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, e := range scores {
		if e.Score != expected[i] {
			t.Errorf("scores[%d].Score = %d, expected %d", i, e.Score, expected[i])
		}
	}
	if scores[0].Wave != 3 {
		t.Errorf("scores[0].Wave = %d, expected 3", scores[0].Wave)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		if _, err := store.SaveScore("invaders", uuid.NewString(), i*10, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("invaders", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", scores[0].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("invaders", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores, got %d", len(scores))
	}
}

func TestStoreRunIDs(t *testing.T) {
	store := openTestStore(t)
	runID := uuid.NewString()

	if _, err := store.SaveScore("invaders", runID, 340, 2); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	entry, err := store.ScoreByRun(runID)
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if entry == nil || entry.Score != 340 || entry.RunID != runID {
		t.Errorf("ScoreByRun = %+v, expected score 340 for run %s", entry, runID)
	}

	if _, err := store.SaveScore("invaders", runID, 10, 1); err == nil {
		t.Error("expected error when saving the same run twice")
	}

	missing, err := store.ScoreByRun(uuid.NewString())
	if err != nil {
		t.Fatalf("ScoreByRun() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("ScoreByRun(unknown) = %+v, expected nil", missing)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("highScore")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	for _, score := range []int{150, 90, 300} {
		if err := store.SetHighScore("highScore", score); err != nil {
			t.Fatalf("SetHighScore(%d) failed: %v", score, err)
		}
	}

	// The store keeps the last written value; callers decide when to write.
	high, err = store.HighScore("highScore")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore = %d, expected 300", high)
	}

	other, err := store.HighScore("otherKey")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if other != 0 {
		t.Errorf("HighScore(otherKey) = %d, expected 0", other)
	}

	if err := store.ResetHighScore("highScore"); err != nil {
		t.Fatalf("ResetHighScore() failed: %v", err)
	}
	high, _ = store.HighScore("highScore")
	if high != 0 {
		t.Errorf("HighScore after reset = %d, expected 0", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 3 {
		if _, err := store.SaveScore("invaders", uuid.NewString(), i*100, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if err := store.SetHighScore("highScore", 200); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	if err := store.ClearScores("invaders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	high, _ := store.HighScore("highScore")
	if high != 200 {
		t.Errorf("HighScore after ClearScores = %d, expected 200", high)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("invaders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", empty)
	}

	for i, score := range []int{100, 200, 300} {
		if _, err := store.SaveScore("invaders", uuid.NewString(), score, i+1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("invaders")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.BestScore != 300 || stats.BestWave != 3 {
		t.Errorf("best = %d/%d, expected 300/3", stats.BestScore, stats.BestWave)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, expected 600", stats.TotalScore)
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i := range 3 {
		rec := SessionRecord{
			SessionID:   uuid.NewString(),
			User:        fmt.Sprintf("player%d", i),
			RemoteAddr:  "127.0.0.1:5000",
			GamesPlayed: i + 1,
			BestScore:   (i + 1) * 100,
			StartedAt:   start.Add(time.Duration(i) * time.Hour),
			EndedAt:     start.Add(time.Duration(i)*time.Hour + 10*time.Minute),
		}
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(recent))
	}
	if recent[0].User != "player2" {
		t.Errorf("most recent user = %q, expected player2", recent[0].User)
	}
	if !recent[0].EndedAt.Equal(start.Add(2*time.Hour + 10*time.Minute)) {
		t.Errorf("EndedAt = %v, expected %v", recent[0].EndedAt, start.Add(2*time.Hour+10*time.Minute))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.invaders/nested/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created under the expanded home
	if _, err := os.Stat(filepath.Join(home, ".invaders", "nested", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created in the expanded home directory")
	}
}

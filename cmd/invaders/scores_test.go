package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/invaders/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestWriteSessionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSessions(&buf, openTestStore(t), 10); err != nil {
		t.Fatalf("writeSessions() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions recorded yet.") {
		t.Errorf("output = %q, expected the empty message", buf.String())
	}
}

func TestWriteSessionsListsRecorded(t *testing.T) {
	store := openTestStore(t)
	started := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	rec := storage.SessionRecord{
		SessionID:   "s-1",
		User:        "alice",
		RemoteAddr:  "10.0.0.5:50122",
		GamesPlayed: 3,
		BestScore:   480,
		StartedAt:   started,
		EndedAt:     started.Add(95 * time.Second),
	}
	if _, err := store.SaveSession(rec); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := writeSessions(&buf, store, 10); err != nil {
		t.Fatalf("writeSessions() failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"alice", "10.0.0.5:50122", "480", "1m35s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

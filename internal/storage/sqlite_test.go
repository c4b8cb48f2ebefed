package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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
	if _, err := store.SaveSession(SessionRecord{StartedAt: time.Now(), EndReason: "quit", WorldW: 100, WorldH: 100, BufferSize: 16384}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("expected 1 session after reopen, got %d", len(sessions))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []SessionRecord{
		{StartedAt: base, Duration: 1500 * time.Millisecond, Frames: 10, Bytes: 20000, Writes: 10, Escapes: 300, EndReason: "quit", WorldW: 100, WorldH: 100, BufferSize: 16384},
		{StartedAt: base.Add(time.Hour), Duration: 2 * time.Second, Frames: 4, Bytes: 8000, Writes: 8, Escapes: 90, EndReason: "error", WorldW: 50, WorldH: 60, BufferSize: 4096},
		{StartedAt: base.Add(2 * time.Hour), Duration: time.Second, Frames: 1, Bytes: 2000, Writes: 1, Escapes: 1, EndReason: "signal", WorldW: 100, WorldH: 100, BufferSize: 16384},
	}
	for _, r := range records {
		id, err := store.SaveSession(r)
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
		if id <= 0 {
			t.Errorf("SaveSession() returned id %d", id)
		}
	}

	got, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}

	// Newest first
	if got[0].EndReason != "signal" || got[1].EndReason != "error" {
		t.Errorf("unexpected order: %q, %q", got[0].EndReason, got[1].EndReason)
	}
	if !got[1].StartedAt.Equal(records[1].StartedAt) {
		t.Errorf("StartedAt = %v, expected %v", got[1].StartedAt, records[1].StartedAt)
	}
	if got[1].Duration != 2*time.Second {
		t.Errorf("Duration = %v, expected 2s", got[1].Duration)
	}
	if got[1].Frames != 4 || got[1].Bytes != 8000 || got[1].Writes != 8 || got[1].Escapes != 90 {
		t.Errorf("counters not preserved: %+v", got[1])
	}
	if got[1].WorldW != 50 || got[1].WorldH != 60 || got[1].BufferSize != 4096 {
		t.Errorf("settings not preserved: %+v", got[1])
	}
}

func TestStoreSummarize(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() on empty store failed: %v", err)
	}
	if sum != (Summary{}) {
		t.Errorf("empty summary = %+v", sum)
	}

	for i := 1; i <= 3; i++ {
		_, err := store.SaveSession(SessionRecord{
			StartedAt: time.Now(),
			Duration:  time.Duration(i) * time.Second,
			Frames:    i,
			Bytes:     int64(i * 100),
			Writes:    int64(i),
			EndReason: "quit",
		})
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sum, err = store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	expected := Summary{Sessions: 3, Frames: 6, Bytes: 600, Writes: 6, TotalDuration: 6 * time.Second}
	if sum != expected {
		t.Errorf("Summarize() = %+v, expected %+v", sum, expected)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSession(SessionRecord{StartedAt: time.Now(), EndReason: "quit"}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	sessions, err := store.RecentSessions(0)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected no sessions after clear, got %d", len(sessions))
	}
}

// Package storage provides SQLite-based persistence for viewer session statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only renderer telemetry is stored. The world grid and the viewport offset
// are never persisted.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session statistics.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished viewer session.
type SessionRecord struct {
	ID         int64
	StartedAt  time.Time
	Duration   time.Duration
	Frames     int
	Bytes      int64
	Writes     int64
	Escapes    int
	EndReason  string // "quit", "signal", "error"
	WorldW     int
	WorldH     int
	BufferSize int
}

// Summary aggregates all recorded sessions.
type Summary struct {
	Sessions      int
	Frames        int64
	Bytes         int64
	Writes        int64
	TotalDuration time.Duration
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

	// Test connection
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at DATETIME NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			bytes INTEGER NOT NULL DEFAULT 0,
			writes INTEGER NOT NULL DEFAULT 0,
			escapes INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			world_w INTEGER NOT NULL,
			world_h INTEGER NOT NULL,
			buffer_size INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (started_at, duration_ms, frames, bytes, writes, escapes, end_reason, world_w, world_h, buffer_size)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UTC().Format(timeLayout),
		rec.Duration.Milliseconds(),
		rec.Frames,
		rec.Bytes,
		rec.Writes,
		rec.Escapes,
		rec.EndReason,
		rec.WorldW,
		rec.WorldH,
		rec.BufferSize,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, duration_ms, frames, bytes, writes, escapes,
		        end_reason, world_w, world_h, buffer_size
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var startedAt any
		var durationMS int64
		if err := rows.Scan(
			&r.ID, &startedAt, &durationMS, &r.Frames, &r.Bytes, &r.Writes, &r.Escapes,
			&r.EndReason, &r.WorldW, &r.WorldH, &r.BufferSize,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = parseTime(startedAt)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Summarize aggregates every recorded session.
func (s *Store) Summarize() (Summary, error) {
	var sum Summary
	var frames, bytes, writes, durationMS sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), SUM(frames), SUM(bytes), SUM(writes), SUM(duration_ms) FROM sessions`,
	).Scan(&sum.Sessions, &frames, &bytes, &writes, &durationMS)
	if err != nil {
		return sum, fmt.Errorf("storage: cannot summarize sessions: %w", err)
	}

	sum.Frames = frames.Int64
	sum.Bytes = bytes.Int64
	sum.Writes = writes.Int64
	sum.TotalDuration = time.Duration(durationMS.Int64) * time.Millisecond
	return sum, nil
}

// ClearSessions deletes all recorded sessions.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

const timeLayout = "2006-01-02 15:04:05.000"

// parseTime handles both time.Time and string column values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

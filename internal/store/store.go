// Package store persists detection sessions and status transitions in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/studywatch/platform/internal/status"
)

// Session is one start/stop cycle of the detection loop.
type Session struct {
	ID          string     `json:"id"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	Frames      int64      `json:"frames"`
	Emergencies int64      `json:"emergencies"`
}

// Transition is one status change within a session.
type Transition struct {
	SessionID       string        `json:"session_id"`
	At              time.Time     `json:"at"`
	From            status.Status `json:"from"`
	To              status.Status `json:"to"`
	EAR             float64       `json:"ear"`
	MAR             float64       `json:"mar"`
	InactiveSeconds float64       `json:"inactive_seconds"`
}

// Store is a SQLite-backed session history.
type Store struct {
	db *sql.DB
}

// Open creates the database file if needed and migrates the schema.
// Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			started_at TIMESTAMP NOT NULL,
			ended_at TIMESTAMP,
			frames INTEGER NOT NULL DEFAULT 0,
			emergencies INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS transitions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			at TIMESTAMP NOT NULL,
			from_status TEXT NOT NULL,
			to_status TEXT NOT NULL,
			ear REAL NOT NULL DEFAULT 0,
			mar REAL NOT NULL DEFAULT 0,
			inactive_seconds REAL NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transitions_session ON transitions(session_id, at)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// BeginSession inserts a new session row and returns its id.
func (s *Store) BeginSession(ctx context.Context) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		id, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("begin session: %w", err)
	}
	return id, nil
}

// EndSession closes a session with its final counters.
func (s *Store) EndSession(ctx context.Context, id string, frames, emergencies int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ?, frames = ?, emergencies = ? WHERE id = ?`,
		time.Now().UTC(), frames, emergencies, id)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("end session: unknown session %s", id)
	}
	return nil
}

// RecordTransition appends a status change to the session history.
func (s *Store) RecordTransition(ctx context.Context, t Transition) error {
	at := t.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transitions (session_id, at, from_status, to_status, ear, mar, inactive_seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.SessionID, at, string(t.From), string(t.To), t.EAR, t.MAR, t.InactiveSeconds)
	if err != nil {
		return fmt.Errorf("record transition: %w", err)
	}
	return nil
}

// ListSessions returns sessions, newest first.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, ended_at, frames, emergencies
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var ended sql.NullTime
		if err := rows.Scan(&sess.ID, &sess.StartedAt, &ended, &sess.Frames, &sess.Emergencies); err != nil {
			return nil, err
		}
		if ended.Valid {
			sess.EndedAt = &ended.Time
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// Transitions returns a session's status history in order.
func (s *Store) Transitions(ctx context.Context, sessionID string) ([]Transition, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, at, from_status, to_status, ear, mar, inactive_seconds
		 FROM transitions WHERE session_id = ? ORDER BY at, id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list transitions: %w", err)
	}
	defer rows.Close()

	var transitions []Transition
	for rows.Next() {
		var t Transition
		var from, to string
		if err := rows.Scan(&t.SessionID, &t.At, &from, &to, &t.EAR, &t.MAR, &t.InactiveSeconds); err != nil {
			return nil, err
		}
		t.From, t.To = status.Status(from), status.Status(to)
		transitions = append(transitions, t)
	}
	return transitions, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

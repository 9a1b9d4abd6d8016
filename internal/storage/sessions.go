package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeFormat is fixed width so stored timestamps sort lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Session sources.
const (
	SourceApply    = "apply"
	SourceScramble = "scramble"
	SourceSolve    = "solve"
	SourcePlay     = "play"
)

// Session represents a recorded cube session in the database.
type Session struct {
	SessionID     string
	StartedAt     time.Time
	EndedAt       *time.Time
	Source        string
	ScrambleText  *string
	FinalFacelets *string
	Solved        bool
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(source, scramble string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, source, scramble_text)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(timeFormat), source, scramblePtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Finish stores the final cube state of a session.
func (r *SessionRepository) Finish(sessionID, facelets string, solved bool) error {
	result, err := r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, final_facelets = ?, solved = ?
		WHERE session_id = ?
	`, time.Now().UTC().Format(timeFormat), facelets, solved, sessionID)
	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s not found", sessionID)
	}
	return nil
}

// Get retrieves a session by ID. It returns nil if no session matches.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, source, scramble_text, final_facelets, solved
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, source, scramble_text, final_facelets, solved
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	err := row.Scan(
		&s.SessionID, &startedAtStr, &endedAtStr, &s.Source,
		&s.ScrambleText, &s.FinalFacelets, &s.Solved,
	)
	if err != nil {
		return nil, err
	}

	s.StartedAt, err = time.Parse(timeFormat, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start time: %w", err)
	}
	if endedAtStr.Valid {
		endedAt, err := time.Parse(timeFormat, endedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end time: %w", err)
		}
		s.EndedAt = &endedAt
	}

	return &s, nil
}

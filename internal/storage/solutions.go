package storage

import (
	"fmt"
	"time"
)

// Solution outcomes.
const (
	StatusSolved     = "solved"
	StatusNoSolution = "no_solution"
	StatusRejected   = "rejected"
	StatusError      = "error"
)

// SolutionRecord is one solver invocation.
type SolutionRecord struct {
	SolutionID   int64
	SessionID    string
	Facelets     string
	SolutionText *string
	Status       string
	Message      *string
	CreatedAt    time.Time
}

// SolutionRepository stores solver results.
type SolutionRepository struct {
	db *DB
}

// NewSolutionRepository creates a new solution repository.
func NewSolutionRepository(db *DB) *SolutionRepository {
	return &SolutionRepository{db: db}
}

// Create records a solver outcome and returns its ID.
func (r *SolutionRepository) Create(sessionID, facelets, solution, status, message string) (int64, error) {
	var solutionPtr, messagePtr *string
	if solution != "" {
		solutionPtr = &solution
	}
	if message != "" {
		messagePtr = &message
	}

	result, err := r.db.Exec(`
		INSERT INTO solutions (session_id, facelets, solution_text, status, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sessionID, facelets, solutionPtr, status, messagePtr, time.Now().UTC().Format(timeFormat))
	if err != nil {
		return 0, fmt.Errorf("failed to create solution: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get solution ID: %w", err)
	}
	return id, nil
}

// GetBySession returns a session's solver results, oldest first.
func (r *SolutionRepository) GetBySession(sessionID string) ([]SolutionRecord, error) {
	rows, err := r.db.Query(`
		SELECT solution_id, session_id, facelets, solution_text, status, message, created_at
		FROM solutions
		WHERE session_id = ?
		ORDER BY solution_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get solutions: %w", err)
	}
	defer rows.Close()

	var out []SolutionRecord
	for rows.Next() {
		var s SolutionRecord
		var createdAt string
		if err := rows.Scan(&s.SolutionID, &s.SessionID, &s.Facelets, &s.SolutionText, &s.Status, &s.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan solution: %w", err)
		}
		s.CreatedAt, err = time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created time: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}

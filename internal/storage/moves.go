package storage

import (
	"database/sql"
	"fmt"

	rubik "github.com/SeamusWaldron/rubik_engine"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Face      string
	Turn      int
	Notation  string
}

// Move converts the record back into a cube move.
func (m MoveRecord) Move() (rubik.Move, error) {
	return rubik.ParseMove(m.Notation)
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// CreateBatch creates multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(sessionID string, moves []rubik.Move, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, face, turn, notation)
				VALUES (?, ?, ?, ?, ?)
			`, sessionID, startIndex+i, move.Face.String(), int(move.Turn), move.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, face, turn, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Face, &m.Turn, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Replay rebuilds a session's cube from its stored moves.
func (r *MoveRepository) Replay(sessionID string) (*rubik.Cube, error) {
	records, err := r.GetBySession(sessionID)
	if err != nil {
		return nil, err
	}

	cube := rubik.NewCube()
	for _, rec := range records {
		m, err := rec.Move()
		if err != nil {
			return nil, fmt.Errorf("move %d %q: %w", rec.MoveIndex, rec.Notation, err)
		}
		cube.Apply(m)
	}
	return cube, nil
}

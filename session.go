package rubik

import (
	"context"
	"fmt"
	"strings"
)

// Event is the notification emitted after each applied move. It also
// serves as the confirmation returned by Step.
type Event struct {
	Index    int    // Moves applied since the last reset, including this one
	Move     Move   // The move just applied
	Solved   bool   // Whether the cube is solved after the move
	Phase    Phase  // Layer-by-layer milestone after the move
	Facelets string // Canonical serialization after the move
}

// Session owns a cube and notifies observers as moves are applied.
//
// A Session performs no locking. Callers that read from one goroutine and
// apply moves from another must serialize access themselves, or route
// moves through a single goroutine with Step.
type Session struct {
	cube      *Cube
	history   []Move
	applied   int
	cfg       *config
	scrambler *Scrambler
}

// NewSession creates a session starting from a solved cube.
func NewSession(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	scrambler := cfg.scrambler
	if scrambler == nil {
		scrambler = NewSeededScrambler(0)
	}

	return &Session{
		cube:      NewCube(),
		cfg:       cfg,
		scrambler: scrambler,
	}
}

// Reset returns the cube to solved and clears the history.
func (s *Session) Reset() {
	s.cube.Reset()
	s.history = nil
	s.applied = 0
}

// Step applies a single move and returns the resulting event. Animation
// drivers send one Step per frame and wait for its confirmation before
// pacing the next. A move naming an invalid face is rejected with
// ErrUnrecognizedFace and leaves the session untouched.
func (s *Session) Step(m Move) (Event, error) {
	if err := s.cube.ApplyMove(m); err != nil {
		return Event{}, err
	}
	s.applied++
	if s.cfg.moveHistory {
		s.history = append(s.history, m)
	}

	ev := Event{
		Index:    s.applied,
		Move:     m,
		Solved:   s.cube.IsSolved(),
		Phase:    s.cube.Phase(),
		Facelets: s.cube.Facelets(),
	}
	for _, fn := range s.cfg.observers {
		fn(ev)
	}
	return ev, nil
}

// Apply applies moves one at a time, notifying observers after each.
// Moves naming an invalid face are dropped.
func (s *Session) Apply(moves ...Move) {
	for _, m := range moves {
		s.Step(m)
	}
}

// ApplyNotation parses and applies a move sequence. Tokens with an
// unrecognized face are skipped and reported; the rest still run.
func (s *Session) ApplyNotation(seq string) error {
	moves, err := ParseMoves(seq)
	s.Apply(moves...)
	return err
}

// Scramble generates a scramble, applies it and returns it.
func (s *Session) Scramble() []Move {
	moves := s.scrambler.Next()
	s.Apply(moves...)
	return moves
}

// History returns the moves applied since the last reset. It is empty
// when history tracking is disabled.
func (s *Session) History() []Move {
	out := make([]Move, len(s.history))
	copy(out, s.history)
	return out
}

// MoveCount returns how many moves were applied since the last reset.
func (s *Session) MoveCount() int {
	return s.applied
}

// Cube returns a snapshot of the session's cube.
func (s *Session) Cube() *Cube {
	return s.cube.Clone()
}

// IsSolved returns true if the cube is solved.
func (s *Session) IsSolved() bool {
	return s.cube.IsSolved()
}

// Facelets returns the canonical serialization of the cube.
func (s *Session) Facelets() string {
	return s.cube.Facelets()
}

// CubeString returns a string representation of the cube.
func (s *Session) CubeString() string {
	return s.cube.String()
}

// Solve asks solver for a sequence that solves the current cube. The cube
// is not modified. A solved cube yields no moves without calling the
// solver. Solver failures are returned unchanged.
func (s *Session) Solve(ctx context.Context, solver Solver) ([]Move, error) {
	if s.cube.IsSolved() {
		return nil, nil
	}
	if solver == nil {
		return nil, ErrSolverNotConfigured
	}

	out, err := solver.Solve(ctx, s.cube.Facelets())
	if err != nil {
		return nil, err
	}

	moves, err := ParseMoves(out)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable solution %q: %w", ErrSolverRejected, strings.TrimSpace(out), err)
	}
	return moves, nil
}

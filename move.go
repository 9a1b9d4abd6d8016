package rubik

import (
	"errors"
	"fmt"
	"strings"
)

// Turn is the number of clockwise quarter turns a move performs.
type Turn int

const (
	CW     Turn = 1 // Clockwise (90 degrees)
	Double Turn = 2 // Half turn (180 degrees)
	CCW    Turn = 3 // Counter-clockwise (90 degrees), three clockwise quarters
)

// Quarters returns how many clockwise quarter turns t performs, in [0, 3].
func (t Turn) Quarters() int {
	return ((int(t) % 4) + 4) % 4
}

// Suffix returns the notation modifier for t.
func (t Turn) Suffix() string {
	switch t.Quarters() {
	case 2:
		return "2"
	case 3:
		return "'"
	default:
		return ""
	}
}

// Move is a face plus a turn count. Moves are descriptors: they are
// applied to a cube and discarded.
type Move struct {
	Face Face // Which face to turn
	Turn Turn // How many clockwise quarter turns
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return m.Face.String() + m.Turn.Suffix()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	inv.Turn = Turn((4 - m.Turn.Quarters()) % 4)
	return inv
}

// TokenError reports a move token that could not be interpreted.
type TokenError struct {
	Token    string // Token as written
	Position int    // Zero-based index among the sequence's tokens
	Err      error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %d %q: %v", e.Position, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// ParseMove parses a single move token.
//
// The first character selects the face and must be one of U, D, L, R, F,
// B. An optional second character sets the turn: ' for counter-clockwise,
// 2 for a half turn. Any other second character is read as a plain
// clockwise quarter turn, and characters after the second are ignored.
func ParseMove(token string) (Move, error) {
	if len(token) == 0 {
		return Move{}, ErrEmptyToken
	}

	face, ok := ParseFace(token[0])
	if !ok {
		return Move{}, ErrUnrecognizedFace
	}

	turn := CW
	if len(token) > 1 {
		switch token[1] {
		case '\'':
			turn = CCW
		case '2':
			turn = Double
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U2 L' D"
//
// Every valid move is returned in order. Tokens with an unrecognized face
// are skipped and reported together as a joined error of *TokenError.
func ParseMoves(seq string) ([]Move, error) {
	tokens := strings.Fields(seq)
	moves := make([]Move, 0, len(tokens))

	var errs []error
	for i, token := range tokens {
		move, err := ParseMove(token)
		if err != nil {
			errs = append(errs, &TokenError{Token: token, Position: i, Err: err})
			continue
		}
		moves = append(moves, move)
	}

	return moves, errors.Join(errs...)
}

// SkippedTokens extracts the token errors reported by ParseMoves or
// ApplyNotation.
func SkippedTokens(err error) []*TokenError {
	if err == nil {
		return nil
	}

	var out []*TokenError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, SkippedTokens(e)...)
		}
		return out
	}

	var te *TokenError
	if errors.As(err, &te) {
		out = append(out, te)
	}
	return out
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

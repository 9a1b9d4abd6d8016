package rubik

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		token string
		want  Move
	}{
		{"R", Move{Face: FaceR, Turn: CW}},
		{"U'", Move{Face: FaceU, Turn: CCW}},
		{"L2", Move{Face: FaceL, Turn: Double}},
		{"D", Move{Face: FaceD, Turn: CW}},
		{"F'", Move{Face: FaceF, Turn: CCW}},
		{"B2", Move{Face: FaceB, Turn: Double}},
		// Unknown modifiers fall back to a clockwise quarter turn
		{"R3", Move{Face: FaceR, Turn: CW}},
		{"Ux", Move{Face: FaceU, Turn: CW}},
		// Only the first two characters matter
		{"F2'", Move{Face: FaceF, Turn: Double}},
		{"B'2", Move{Face: FaceB, Turn: CCW}},
	}

	for _, tt := range tests {
		got, err := ParseMove(tt.token)
		if err != nil {
			t.Errorf("ParseMove(%q): unexpected error %v", tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestParseMove_UnrecognizedFace(t *testing.T) {
	for _, token := range []string{"X", "r", "M2", "x'", "2"} {
		if _, err := ParseMove(token); !errors.Is(err, ErrUnrecognizedFace) {
			t.Errorf("ParseMove(%q): expected ErrUnrecognizedFace, got %v", token, err)
		}
	}
	if _, err := ParseMove(""); !errors.Is(err, ErrEmptyToken) {
		t.Errorf("ParseMove(\"\"): expected ErrEmptyToken, got %v", err)
	}
}

func TestParseMoves_SkipsAndReports(t *testing.T) {
	moves, err := ParseMoves("R  X U2\tQ'\n L'")
	if got := FormatMoves(moves); got != "R U2 L'" {
		t.Errorf("moves = %q, want %q", got, "R U2 L'")
	}
	if !errors.Is(err, ErrUnrecognizedFace) {
		t.Fatalf("expected ErrUnrecognizedFace, got %v", err)
	}

	skipped := SkippedTokens(err)
	if len(skipped) != 2 {
		t.Fatalf("expected 2 skipped tokens, got %d", len(skipped))
	}
	if skipped[0].Token != "X" || skipped[0].Position != 1 {
		t.Errorf("first skipped = %+v", skipped[0])
	}
	if skipped[1].Token != "Q'" || skipped[1].Position != 3 {
		t.Errorf("second skipped = %+v", skipped[1])
	}
}

func TestParseMoves_EmptyAndWhitespace(t *testing.T) {
	for _, seq := range []string{"", "   ", "\n\t"} {
		moves, err := ParseMoves(seq)
		if err != nil || len(moves) != 0 {
			t.Errorf("ParseMoves(%q) = %v, %v", seq, moves, err)
		}
	}
}

func TestApplyNotation_ContinuesAfterBadToken(t *testing.T) {
	c := NewCube()
	err := c.ApplyNotation("R Z R'")
	if !errors.Is(err, ErrUnrecognizedFace) {
		t.Errorf("expected ErrUnrecognizedFace, got %v", err)
	}
	if !c.IsSolved() {
		t.Error("R and R' should still have been applied")
		t.Log(c.String())
	}
}

func TestMoveNotationAndInverse(t *testing.T) {
	tests := []struct {
		move     Move
		notation string
		inverse  string
	}{
		{R, "R", "R'"},
		{RPrime, "R'", "R"},
		{R2, "R2", "R2"},
		{UPrime, "U'", "U"},
	}
	for _, tt := range tests {
		if got := tt.move.Notation(); got != tt.notation {
			t.Errorf("Notation() = %q, want %q", got, tt.notation)
		}
		if got := tt.move.Inverse().Notation(); got != tt.inverse {
			t.Errorf("%s Inverse() = %q, want %q", tt.notation, got, tt.inverse)
		}
	}
}

func TestFormatMoves_RoundTrip(t *testing.T) {
	seq := "B' U' L F B2 R' F L' F' U' R2 L2 U R2 L2 U' F2 U D2"
	moves, err := ParseMoves(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatMoves(moves); got != seq {
		t.Errorf("FormatMoves = %q, want %q", got, seq)
	}
	if FormatMoves(nil) != "" {
		t.Error("FormatMoves(nil) should be empty")
	}
}

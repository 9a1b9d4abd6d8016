package rubik

import (
	"math/rand/v2"
	"strings"
	"testing"
)

const solvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func randomMoves(rng *rand.Rand, n int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = AllMoves[rng.IntN(len(AllMoves))]
	}
	return moves
}

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range AllMoves {
		c := NewCube()
		c.Apply(m)
		if c.IsSolved() {
			t.Errorf("Cube should not be solved after %s", m)
			t.Log(c.String())
		}
	}
}

func TestResetRestoresSolved(t *testing.T) {
	c := NewCube()
	c.Apply(TPerm...)
	c.Reset()
	if !c.IsSolved() {
		t.Error("Reset should restore the solved cube")
		t.Log(c.String())
	}
}

func TestFourQuarterTurns_ReturnToStart(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, face := range Faces {
		c := NewCube()
		c.Apply(randomMoves(rng, 20)...)
		start := c.Clone()

		m := Move{Face: face, Turn: CW}
		c.Apply(m, m, m, m)
		if !c.Equal(start) {
			t.Errorf("%v x 4 should return to the starting state", face)
			t.Log(c.String())
		}
	}
}

func TestInverseCancellation(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, face := range Faces {
		c := NewCube()
		c.Apply(randomMoves(rng, 20)...)
		start := c.Clone()

		cw := Move{Face: face, Turn: CW}
		ccw := Move{Face: face, Turn: CCW}
		half := Move{Face: face, Turn: Double}

		c.Apply(cw, ccw)
		if !c.Equal(start) {
			t.Errorf("%s %s should cancel", cw, ccw)
		}
		c.Apply(ccw, cw)
		if !c.Equal(start) {
			t.Errorf("%s %s should cancel", ccw, cw)
		}
		c.Apply(half, half)
		if !c.Equal(start) {
			t.Errorf("%s %s should cancel", half, half)
		}
	}
}

func TestTurnCountConsistency(t *testing.T) {
	for _, face := range Faces {
		cw := Move{Face: face, Turn: CW}

		half := NewCube()
		half.Apply(Move{Face: face, Turn: Double})
		twice := NewCube()
		twice.Apply(cw, cw)
		if !half.Equal(twice) {
			t.Errorf("%s2 should equal %s %s", face, face, face)
		}

		prime := NewCube()
		prime.Apply(Move{Face: face, Turn: CCW})
		thrice := NewCube()
		thrice.Apply(cw, cw, cw)
		if !prime.Equal(thrice) {
			t.Errorf("%s' should equal %s %s %s", face, face, face, face)
		}
	}
}

func TestColorCountInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	c := NewCube()
	for round := 0; round < 50; round++ {
		c.Apply(randomMoves(rng, rng.IntN(40))...)
		counts := c.ColorCounts()
		if len(counts) != 6 {
			t.Fatalf("round %d: expected 6 colors, got %v", round, counts)
		}
		for color, n := range counts {
			if n != 9 {
				t.Fatalf("round %d: color %s appears %d times", round, color, n)
			}
		}
	}
}

func TestCentersNeverMove(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	c := NewCube()
	c.Apply(randomMoves(rng, 100)...)
	for _, f := range Faces {
		if c.At(f, 1, 1) != HomeColor(f) {
			t.Errorf("center of %s moved: %s", f, c.At(f, 1, 1))
		}
	}
}

func TestUThenUPrime_MatchesSolvedCellForCell(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("U U'"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Grids() != NewCube().Grids() {
		t.Error("U U' should leave every facelet unchanged")
		t.Log(c.String())
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.Apply(SexyMove...)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestTPermTwice_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	c.Apply(TPerm...)
	if c.IsSolved() {
		t.Error("T-perm should change the cube")
	}
	c.Apply(TPerm...)
	if !c.IsSolved() {
		t.Error("T-perm x 2 should return to solved")
		t.Log(c.String())
	}
}

func TestInvertMoves_UndoesSequence(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	moves := randomMoves(rng, 30)
	c := NewCube()
	c.Apply(moves...)
	c.Apply(InvertMoves(moves)...)
	if !c.IsSolved() {
		t.Error("a sequence followed by its inverse should be the identity")
	}
}

func TestFacelets_Solved(t *testing.T) {
	got := NewCube().Facelets()
	if got != solvedFacelets {
		t.Errorf("solved facelets = %s, want %s", got, solvedFacelets)
	}
	for i, f := range Faces {
		group := got[i*9 : i*9+9]
		if group != strings.Repeat(f.String(), 9) {
			t.Errorf("face group %d = %s, want nine %s", i, group, f)
		}
	}
}

func TestFacelets_SingleTurns(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{R, "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB"},
		{U, "UUUUUUUUUBBBRRRRRRRRRFFFFFFDDDDDDDDDFFFLLLLLLLLLBBBBBB"},
		{F, "UUUUUULLLURRURRURRFFFFFFFFFRRRDDDDDDLLDLLDLLDBBBBBBBBB"},
		{D, "UUUUUUUUURRRRRRFFFFFFFFFLLLDDDDDDDDDLLLLLLBBBBBBBBBRRR"},
		{L, "BUUBUUBUURRRRRRRRRUFFUFFUFFFDDFDDFDDLLLLLLLLLBBDBBDBBD"},
		{B, "RRRUUUUUURRDRRDRRDFFFFFFFFFDDDDDDLLLULLULLULLBBBBBBBBB"},
	}

	for _, tt := range tests {
		c := NewCube()
		c.Apply(tt.move)
		if got := c.Facelets(); got != tt.want {
			t.Errorf("%s: facelets = %s, want %s", tt.move, got, tt.want)
			t.Log(c.String())
		}
	}
}

func TestParseFacelets_RoundTrip(t *testing.T) {
	c := NewCube()
	c.Apply(TPerm...)
	c.Apply(D, L2, BPrime)

	parsed, err := ParseFacelets(c.Facelets())
	if err != nil {
		t.Fatalf("ParseFacelets: %v", err)
	}
	if !parsed.Equal(c) {
		t.Error("parsed cube should equal the original")
		t.Log(parsed.String())
	}
}

func TestParseFacelets_Invalid(t *testing.T) {
	if _, err := ParseFacelets("UUU"); err == nil {
		t.Error("short string should fail")
	}
	bad := strings.Replace(solvedFacelets, "R", "X", 1)
	if _, err := ParseFacelets(bad); err == nil {
		t.Error("unknown letter should fail")
	}
}

func TestString_SolvedNet(t *testing.T) {
	s := NewCube().String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d:\n%s", len(lines), s)
	}
	if lines[0] != "      W W W " {
		t.Errorf("top line = %q", lines[0])
	}
	if lines[3] != "O O O G G G R R R B B B " {
		t.Errorf("middle line = %q", lines[3])
	}
	if lines[8] != "      Y Y Y " {
		t.Errorf("bottom line = %q", lines[8])
	}
}

func TestApplyMove_InvalidFace(t *testing.T) {
	c := NewCube()
	if err := c.ApplyMove(Move{Face: Face(9), Turn: CW}); err != ErrUnrecognizedFace {
		t.Errorf("expected ErrUnrecognizedFace, got %v", err)
	}
	if !c.IsSolved() {
		t.Error("invalid move should not change the cube")
	}
}

func TestFacelets_Superflip(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "UBULURUFURURFRBRDRFUFLFRFDFDFDLDRDBDLULBLFLDLBUBRBLBDB"
	if got := c.Facelets(); got != want {
		t.Errorf("superflip facelets = %s, want %s", got, want)
		t.Log(c.String())
	}
}

func TestDebug(t *testing.T) {
	c := NewCube()
	if got := c.Debug(); got != "Solved: true Facelets: "+solvedFacelets {
		t.Errorf("Debug() = %q", got)
	}
}

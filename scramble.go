package rubik

import (
	"math/rand/v2"
	"time"
)

const (
	// MinScrambleMoves is the shortest scramble Next produces.
	MinScrambleMoves = 10
	// MaxScrambleMoves is the longest scramble Next produces.
	MaxScrambleMoves = 15
)

var scrambleTurns = [3]Turn{CW, CCW, Double}

// Scrambler generates random scramble sequences.
//
// The only constraint is that a face never follows itself, so no two
// consecutive moves collapse into one. Opposite faces may still appear
// back to back (R L R is possible).
type Scrambler struct {
	rng *rand.Rand
}

// NewScrambler creates a scrambler drawing from src. Use a fixed source
// for reproducible scrambles.
func NewScrambler(src rand.Source) *Scrambler {
	return &Scrambler{rng: rand.New(src)}
}

// NewSeededScrambler creates a scrambler from a PCG source seeded with
// seed. A zero seed uses the current time.
func NewSeededScrambler(seed uint64) *Scrambler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewScrambler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Next returns a scramble of MinScrambleMoves to MaxScrambleMoves moves,
// the length chosen uniformly.
func (s *Scrambler) Next() []Move {
	n := MinScrambleMoves + s.rng.IntN(MaxScrambleMoves-MinScrambleMoves+1)
	moves := make([]Move, 0, n)

	last := Face(-1)
	for len(moves) < n {
		face := Faces[s.rng.IntN(len(Faces))]
		if face == last {
			continue
		}
		last = face
		moves = append(moves, Move{Face: face, Turn: scrambleTurns[s.rng.IntN(len(scrambleTurns))]})
	}

	return moves
}

// Scramble returns a time-seeded random scramble.
func Scramble() []Move {
	return NewSeededScrambler(0).Next()
}

package rubik

import "context"

// Solver finds a move sequence that solves a cube.
//
// facelets is the 54-character canonical serialization. A successful
// result uses the same move grammar ParseMoves accepts. Implementations
// return an error wrapping ErrNoSolution when the search gives up, and
// ErrSolverRejected when the facelets do not describe a solvable cube.
type Solver interface {
	Solve(ctx context.Context, facelets string) (string, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, facelets string) (string, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, facelets string) (string, error) {
	return f(ctx, facelets)
}

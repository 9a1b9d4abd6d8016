package rubik

import "errors"

// Sentinel errors for the rubik package.
var (
	// Notation errors
	ErrUnrecognizedFace = errors.New("rubik: unrecognized face")
	ErrEmptyToken       = errors.New("rubik: empty move token")

	// State errors
	ErrInvalidFacelets = errors.New("rubik: invalid facelet string")

	// Solver errors
	ErrNoSolution          = errors.New("rubik: no solution found")
	ErrSolverRejected      = errors.New("rubik: solver rejected cube state")
	ErrSolverNotConfigured = errors.New("rubik: no solver configured")
)

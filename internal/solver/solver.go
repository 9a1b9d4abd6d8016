// Package solver provides rubik.Solver adapters: an external two-phase
// solving program and a fixed lookup table.
package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	rubik "github.com/SeamusWaldron/rubik_engine"
	"github.com/SeamusWaldron/rubik_engine/internal/logger"
)

// Default search limits.
const (
	DefaultMaxDepth = 21
	DefaultTimeout  = 10 * time.Second
)

// errorCodes describes the two-phase solver's numbered failures.
var errorCodes = map[int]string{
	1: "there is not exactly one facelet of each color",
	2: "not all 12 edges exist exactly once",
	3: "flip error: one edge has to be flipped",
	4: "not all corners exist exactly once",
	5: "twist error: one corner has to be twisted",
	6: "parity error: two corners or two edges have to be exchanged",
	7: "no solution exists for the given maximum depth",
	8: "timeout, no solution within the given time",
}

// Command runs an external solver once per request. The program receives
// Args, then the facelets, the maximum depth and the timeout in seconds,
// and prints either a move sequence or "Error N" on stdout.
type Command struct {
	Path     string
	Args     []string
	MaxDepth int
	Timeout  time.Duration
}

// Solve implements rubik.Solver.
func (c *Command) Solve(ctx context.Context, facelets string) (string, error) {
	if c.Path == "" {
		return "", rubik.ErrSolverNotConfigured
	}

	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	// Leave the program a moment past its own limit to report Error 8
	ctx, cancel := context.WithTimeout(ctx, timeout+time.Second)
	defer cancel()

	args := append([]string{}, c.Args...)
	args = append(args, facelets, strconv.Itoa(maxDepth), strconv.Itoa(int(timeout.Seconds())))

	logger.WithFields(logger.Fields{
		"command":   c.Path,
		"max_depth": maxDepth,
		"timeout":   timeout,
	}).Debug("running solver")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	start := time.Now()
	err := cmd.Run()
	logger.Debug("solver finished in %s", time.Since(start))

	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("%w: solver timed out after %s", rubik.ErrNoSolution, timeout)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("failed to run solver: %w", err)
		}
		// Some solvers report the error code and exit non-zero
		if code, ok := parseErrorCode(stdout.String()); ok {
			return "", codeError(code)
		}
		return "", fmt.Errorf("solver failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	out := strings.TrimSpace(stdout.String())
	if code, ok := parseErrorCode(out); ok {
		return "", codeError(code)
	}
	return out, nil
}

// parseErrorCode recognizes "Error N" output.
func parseErrorCode(out string) (int, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(out), "Error")
	if !ok {
		return 0, false
	}
	code, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return code, true
}

// codeError maps a solver error code to the rubik sentinel errors.
func codeError(code int) error {
	desc, ok := errorCodes[code]
	if !ok {
		desc = "unknown error"
	}
	if code == 7 || code == 8 {
		return fmt.Errorf("%w: %s (Error %d)", rubik.ErrNoSolution, desc, code)
	}
	return fmt.Errorf("%w: %s (Error %d)", rubik.ErrSolverRejected, desc, code)
}

// Static answers from a fixed table keyed by facelets. Unknown states
// yield rubik.ErrNoSolution.
type Static map[string]string

// Solve implements rubik.Solver.
func (s Static) Solve(ctx context.Context, facelets string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, ok := s[facelets]
	if !ok {
		return "", rubik.ErrNoSolution
	}
	return out, nil
}

// FromMoves builds a Static table entry for the cube reached by applying
// moves to a solved cube; its answer is the inverse sequence.
func (s Static) FromMoves(moves []rubik.Move) {
	c := rubik.NewCube()
	c.Apply(moves...)
	s[c.Facelets()] = rubik.FormatMoves(rubik.InvertMoves(moves))
}

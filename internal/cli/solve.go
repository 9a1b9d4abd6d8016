package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	rubik "github.com/SeamusWaldron/rubik_engine"
	"github.com/SeamusWaldron/rubik_engine/internal/logger"
	"github.com/SeamusWaldron/rubik_engine/internal/storage"
)

var solveCmd = &cobra.Command{
	Use:   "solve <moves>",
	Short: "Solve the cube reached by a move sequence",
	Long: `Apply a move sequence to a solved cube, then ask the configured external
solver for a sequence that returns it to solved.

The solver program is set with solver.command in the config file. It
receives the 54-character facelet string, the maximum depth and the timeout
in seconds as its final arguments, and prints a move sequence or "Error N".

The returned solution is verified by applying it to the cube.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	session := rubik.NewSession()
	reportSkipped(session.ApplyNotation(joinMoves(args)))
	facelets := session.Facelets()

	printCube(out, session.Cube())
	fmt.Fprintln(out)

	s, err := newSolver()
	if err != nil {
		return err
	}

	logger.WithFields(logger.Fields{"facelets": facelets}).Debug("solving")
	moves, solveErr := session.Solve(cmd.Context(), s)

	status, message := storage.StatusSolved, ""
	switch {
	case solveErr == nil:
		solved := session.Cube()
		solved.Apply(moves...)
		if !solved.IsSolved() {
			status = storage.StatusRejected
			solveErr = fmt.Errorf("%w: solution %q does not solve the cube", rubik.ErrSolverRejected, rubik.FormatMoves(moves))
			message = solveErr.Error()
			break
		}
		if len(moves) == 0 {
			fmt.Fprintln(out, "Already solved")
		} else {
			fmt.Fprintf(out, "Solution: %s (%d moves)\n", rubik.FormatMoves(moves), len(moves))
		}
	case errors.Is(solveErr, rubik.ErrNoSolution):
		status, message = storage.StatusNoSolution, solveErr.Error()
		fmt.Fprintln(out, "no solution found")
	case errors.Is(solveErr, rubik.ErrSolverRejected):
		status, message = storage.StatusRejected, solveErr.Error()
	default:
		status, message = storage.StatusError, solveErr.Error()
	}

	if err := recordSolve(out, session, moves, status, message); err != nil {
		return err
	}

	if errors.Is(solveErr, rubik.ErrNoSolution) {
		return nil
	}
	return solveErr
}

// recordSolve stores the session and the solver outcome.
func recordSolve(w io.Writer, session *rubik.Session, moves []rubik.Move, status, message string) error {
	if noRecord {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := recordSession(db, storage.SourceSolve, "", session)
	if err != nil {
		return err
	}

	_, err = storage.NewSolutionRepository(db).Create(id, session.Facelets(), rubik.FormatMoves(moves), status, message)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Session:  %s\n", id)
	return nil
}

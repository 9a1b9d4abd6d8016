package cli

import (
	"fmt"
	"io"
	"strings"

	rubik "github.com/SeamusWaldron/rubik_engine"
	"github.com/SeamusWaldron/rubik_engine/internal/logger"
	"github.com/SeamusWaldron/rubik_engine/internal/render"
	"github.com/SeamusWaldron/rubik_engine/internal/solver"
	"github.com/SeamusWaldron/rubik_engine/internal/storage"
)

func openDB() (*storage.DB, error) {
	path, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger.Debug("opened database %s", path)
	return db, nil
}

// newSolver builds the external solver from the configuration.
func newSolver() (*solver.Command, error) {
	timeout, err := cfg.SolverTimeout()
	if err != nil {
		return nil, err
	}
	return &solver.Command{
		Path:     cfg.Solver.Command,
		Args:     cfg.Solver.Args,
		MaxDepth: cfg.Solver.MaxDepth,
		Timeout:  timeout,
	}, nil
}

// joinMoves accepts moves as one quoted argument or several.
func joinMoves(args []string) string {
	return strings.Join(args, " ")
}

// reportSkipped logs every token the interpreter skipped.
func reportSkipped(err error) {
	for _, te := range rubik.SkippedTokens(err) {
		logger.WithFields(logger.Fields{
			"token":    te.Token,
			"position": te.Position,
		}).Warn("skipped unrecognized move")
	}
}

// printCube writes the net and state summary.
func printCube(w io.Writer, c *rubik.Cube) {
	logger.Debug("cube state: %s", c.Debug())
	if plain {
		fmt.Fprint(w, render.Plain(c))
	} else {
		fmt.Fprint(w, render.Net(c))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Facelets: %s\n", c.Facelets())
	fmt.Fprintf(w, "Solved:   %v\n", c.IsSolved())
	fmt.Fprintf(w, "Phase:    %s\n", c.Phase().DisplayName())
}

// recordSession stores a session with its moves and final state. It
// returns an empty ID when recording is disabled.
func recordSession(db *storage.DB, source, scramble string, s *rubik.Session) (string, error) {
	sessions := storage.NewSessionRepository(db)

	id, err := sessions.Create(source, scramble)
	if err != nil {
		return "", err
	}
	if err := storage.NewMoveRepository(db).CreateBatch(id, s.History(), 0); err != nil {
		return "", err
	}
	if err := sessions.Finish(id, s.Facelets(), s.IsSolved()); err != nil {
		return "", err
	}

	logger.WithFields(logger.Fields{
		"session": id,
		"source":  source,
		"moves":   s.MoveCount(),
	}).Debug("recorded session")
	return id, nil
}

// record opens the database and stores the session unless recording is
// disabled.
func record(w io.Writer, source, scramble string, s *rubik.Session) error {
	if noRecord {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := recordSession(db, source, scramble, s)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Session:  %s\n", id)
	return nil
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik_engine/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded sessions",
	Long:  `Display the most recent recorded sessions.`,
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show and replay a recorded session",
	Long: `Display a recorded session's moves and solver results, then replay the
stored moves on a solved cube and check the result against the recorded
final state.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of sessions to show")
	historyCmd.AddCommand(historyShowCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet")
		return nil
	}

	moveRepo := storage.NewMoveRepository(db)

	fmt.Fprintf(out, "Recent sessions (showing %d):\n\n", len(sessions))
	fmt.Fprintf(out, "%-36s  %-19s  %-8s  %-5s  %s\n", "ID", "Started", "Source", "Moves", "Solved")
	fmt.Fprintln(out, "------------------------------------  -------------------  --------  -----  ------")

	for _, s := range sessions {
		moves, err := moveRepo.GetBySession(s.SessionID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-36s  %-19s  %-8s  %-5d  %v\n",
			s.SessionID,
			s.StartedAt.Local().Format("2006-01-02 15:04:05"),
			s.Source,
			len(moves),
			s.Solved,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := storage.NewSessionRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("session %s not found", args[0])
	}

	moveRepo := storage.NewMoveRepository(db)
	records, err := moveRepo.GetBySession(s.SessionID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Session:  %s\n", s.SessionID)
	fmt.Fprintf(out, "Started:  %s\n", s.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Source:   %s\n", s.Source)
	if s.ScrambleText != nil {
		fmt.Fprintf(out, "Scramble: %s\n", *s.ScrambleText)
	}

	notations := make([]string, len(records))
	for i, r := range records {
		notations[i] = r.Notation
	}
	fmt.Fprintf(out, "Moves:    %d\n", len(records))
	if len(records) > 0 {
		fmt.Fprintf(out, "          %s\n", joinMoves(notations))
	}

	solutions, err := storage.NewSolutionRepository(db).GetBySession(s.SessionID)
	if err != nil {
		return err
	}
	printSolutions(out, solutions)

	cube, err := moveRepo.Replay(s.SessionID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	printCube(out, cube)

	if s.FinalFacelets == nil {
		fmt.Fprintln(out, "Replay:   session not finished")
		return nil
	}
	if cube.Facelets() != *s.FinalFacelets {
		fmt.Fprintln(out, "Replay:   MISMATCH")
		return fmt.Errorf("replayed state %s does not match recorded %s", cube.Facelets(), *s.FinalFacelets)
	}
	fmt.Fprintln(out, "Replay:   verified")
	return nil
}

func printSolutions(w io.Writer, solutions []storage.SolutionRecord) {
	for _, sol := range solutions {
		line := sol.Status
		if sol.SolutionText != nil {
			line += ": " + *sol.SolutionText
		}
		if sol.Message != nil {
			line += " (" + *sol.Message + ")"
		}
		fmt.Fprintf(w, "Solver:   %s\n", line)
	}
}

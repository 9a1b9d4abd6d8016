package cli

import (
	"github.com/spf13/cobra"

	rubik "github.com/SeamusWaldron/rubik_engine"
	"github.com/SeamusWaldron/rubik_engine/internal/storage"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a whitespace-separated move sequence to a solved cube and print the
result.

Moves use standard notation: a face letter (U, D, L, R, F, B), optionally
followed by ' (counter-clockwise) or 2 (half turn). Unrecognized moves are
skipped with a warning and the rest of the sequence still runs.

Example:
  rubik apply "R U R' U'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	session := rubik.NewSession()
	err := session.ApplyNotation(joinMoves(args))
	reportSkipped(err)

	printCube(out, session.Cube())
	return record(out, storage.SourceApply, "", session)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	rubik "github.com/SeamusWaldron/rubik_engine"
	"github.com/SeamusWaldron/rubik_engine/internal/storage"
)

var (
	scrambleSeed  uint64
	scrambleApply bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble of 10 to 15 moves. The same face never appears
twice in a row.

Use --seed (or scramble.seed in the config file) for reproducible scrambles
and --apply to print the scrambled cube.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (default: scramble.seed, or the clock)")
	scrambleCmd.Flags().BoolVar(&scrambleApply, "apply", false, "Apply the scramble and print the cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	seed := scrambleSeed
	if seed == 0 {
		seed = cfg.Scramble.Seed
	}

	session := rubik.NewSession(rubik.WithScrambler(rubik.NewSeededScrambler(seed)))
	moves := session.Scramble()
	notation := rubik.FormatMoves(moves)

	fmt.Fprintln(out, notation)
	if !scrambleApply {
		return nil
	}

	fmt.Fprintln(out)
	printCube(out, session.Cube())
	return record(out, storage.SourceScramble, notation, session)
}

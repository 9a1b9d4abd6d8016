// Package cli implements the command-line interface for rubik.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik_engine/internal/config"
	"github.com/SeamusWaldron/rubik_engine/internal/logger"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
	noRecord   bool
	plain      bool

	// cfg is loaded before every command runs.
	cfg *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubik",
	Short: "Rubik's Cube engine",
	Long: `rubik - A command-line Rubik's Cube engine.

Apply move sequences in standard notation, generate scrambles, animate
sequences move by move, and solve cubes with an external two-phase solver.
Sessions are recorded to a local SQLite database and can be replayed.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.rubik/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubik/rubik.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noRecord, "no-record", false, "Do not record sessions to the database")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Print the cube net as letters without colors")
}

// setup configures logging and loads the configuration.
func setup(cmd *cobra.Command, args []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	cfg, err = config.Load(path)
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	logger.Debug("loaded config from %s", path)
	return nil
}

// getConfigPath returns the config path from flag or default.
func getConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

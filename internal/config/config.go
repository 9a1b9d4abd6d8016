// Package config loads the rubik CLI configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk configuration.
type Config struct {
	DBPath   string         `toml:"db_path"`
	Solver   SolverConfig   `toml:"solver"`
	Play     PlayConfig     `toml:"play"`
	Scramble ScrambleConfig `toml:"scramble"`
}

// SolverConfig describes the external solving program.
type SolverConfig struct {
	// Command is the executable; empty disables solving.
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	// MaxDepth bounds the solution length the solver searches for.
	MaxDepth int `toml:"max_depth"`
	// Timeout is a duration string such as "10s".
	Timeout string `toml:"timeout"`
}

// PlayConfig controls move animation.
type PlayConfig struct {
	// Delay between animated moves, a duration string.
	Delay string `toml:"delay"`
}

// ScrambleConfig controls scramble generation.
type ScrambleConfig struct {
	// Seed makes scrambles reproducible; 0 seeds from the clock.
	Seed uint64 `toml:"seed"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			MaxDepth: 21,
			Timeout:  "10s",
		},
		Play: PlayConfig{
			Delay: "300ms",
		},
	}
}

// DefaultDir returns the configuration directory, ~/.rubik.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".rubik"), nil
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration at path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks durations and bounds.
func (c *Config) Validate() error {
	if c.Solver.MaxDepth <= 0 {
		return fmt.Errorf("solver.max_depth must be positive, got %d", c.Solver.MaxDepth)
	}
	if _, err := c.SolverTimeout(); err != nil {
		return err
	}
	if _, err := c.PlayDelay(); err != nil {
		return err
	}
	return nil
}

// SolverTimeout parses Solver.Timeout.
func (c *Config) SolverTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Solver.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid solver.timeout %q: %w", c.Solver.Timeout, err)
	}
	return d, nil
}

// PlayDelay parses Play.Delay.
func (c *Config) PlayDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Play.Delay)
	if err != nil {
		return 0, fmt.Errorf("invalid play.delay %q: %w", c.Play.Delay, err)
	}
	return d, nil
}

// ResolveDBPath returns DBPath, or the default database location inside
// the configuration directory.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rubik.db"), nil
}

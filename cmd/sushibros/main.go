// sushibros is a terminal edition of Sushi Bros, a top-down scrolling arcade game.
//
// Usage:
//
//	sushibros play           - Play (default when no command is given)
//	sushibros levels         - List the levels and their bosses
//	sushibros scores         - Show the high-score table
//	sushibros serve          - Start SSH server for remote play
//	sushibros list           - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.sushibros/scores.db)
//	--log-level <level>   - Write a log file at this level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sushi-bros/internal/games/sushi"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sushibros",
	Short: "Sushi Bros - throw sushi, swing the pole, beat the boss",
	Long: `Sushi Bros is a top-down scrolling arcade game for the terminal.
Guide the sushi chef up the beach, knock out crabs, seagulls and fishermen,
and defeat the boss waiting at the end of each level.

Available commands:
  play     - Start a run (default)
  levels   - Show the level list
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - Show registered games

Examples:
  sushibros
  sushibros play --difficulty hard
  sushibros play --level 2 --seed 42
  sushibros scores
  sushibros serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sushibros/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level for ~/.sushibros/sushibros.log (empty = no log)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
}

// fileLogger opens the log file when --log-level is set. The interactive
// TUI owns the terminal, so logs never go to stderr while playing.
func fileLogger() (*log.Logger, io.Closer, error) {
	if flagLogLevel == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".sushibros")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "sushibros.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "sushibros",
		Level:           level,
	})
	return logger, f, nil
}

// levelNames lists level names in order for tables.
func levelNames() []string {
	names := make([]string, len(sushi.Levels))
	for i, l := range sushi.Levels {
		names[i] = l.Name
	}
	return names
}

// withFileLogger runs fn with the file logger and closes the log file
// on every path out of fn.
func withFileLogger(fn func(*log.Logger) error) error {
	logger, f, err := fileLogger()
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(logger)
}

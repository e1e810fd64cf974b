package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sushi-bros/internal/games/sushi"
	"github.com/vovakirdan/sushi-bros/internal/platform/tui"
	"github.com/vovakirdan/sushi-bros/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs with the level reached and the date.

On a terminal this opens an interactive table (tab filters by level).
When output is piped, or with --plain, a text table is printed instead.

Examples:
  sushibros scores
  sushibros scores --plain --limit 5
  sushibros scores --plain --all
  sushibros scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a text table even on a terminal")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Print every recorded run in plain mode")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs and the high score")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := showScores(os.Stdout, store); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showScores(out *os.File, store *storage.Store) error {
	if flagScoresClear {
		return clearScores(out, store)
	}

	fd := int(out.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, sushi.GameID, "Sushi Bros", levelNames(), width, height)
	}
	return printScores(out, store, flagScoresLimit, flagScoresAll)
}

func clearScores(w io.Writer, store *storage.Store) error {
	if err := store.ClearScores(sushi.GameID); err != nil {
		return err
	}
	fmt.Fprintln(w, "Scores cleared.")
	return nil
}

// printScores writes the plain-text table. With all set, limit is ignored.
func printScores(w io.Writer, store *storage.Store, limit int, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(sushi.GameID)
	} else {
		scores, err = store.TopScores(sushi.GameID, limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - Sushi Bros")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'sushibros play' to set the first high score!")
		return nil
	}

	names := levelNames()
	fmt.Fprintf(w, "  %-4s  %12s  %-14s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %12s  %-14s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		level := fmt.Sprintf("Level %d", entry.Level+1)
		if entry.Level >= 0 && entry.Level < len(names) {
			level = names[entry.Level]
		}
		fmt.Fprintf(w, "  %-4d  %12s  %-14s  %s\n",
			i+1, tui.FormatScore(entry.Score), level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %s\n", tui.FormatScore(store.HighScore(sushi.GameID)))
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fishgrab/internal/platform/tui"
	"github.com/vovakirdan/fishgrab/internal/storage"
)

var (
	flagLimit    int
	flagPlain    bool
	flagScoresOf string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished runs",
	Long: `Display the best recorded runs: most fish first, then fewest moves,
then fastest time.

On a terminal the scores open in an interactive table; use --plain (or pipe
the output) for a text listing.

Examples:
  fishgrab scores
  fishgrab scores --plain --limit 5
  fishgrab scores --player alice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text table instead of the interactive view")
	scoresCmd.Flags().StringVar(&flagScoresOf, "player", "", "Only list runs by this player")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fail("opening runs database: %v", err)
	}
	defer store.Close()

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, flagScoresOf, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	if err := printScores(cmd.OutOrStdout(), store, flagScoresOf, flagLimit); err != nil {
		fail("%v", err)
	}
}

// scoreSource is the subset of the store the text listing reads.
type scoreSource interface {
	TopRuns(limit int) ([]storage.Run, error)
	PlayerRuns(player string, limit int) ([]storage.Run, error)
	BestRun() (*storage.Run, error)
	GetStats() (*storage.Stats, error)
}

func printScores(w io.Writer, store scoreSource, player string, limit int) error {
	var (
		runs []storage.Run
		err  error
	)
	if player != "" {
		runs, err = store.PlayerRuns(player, limit)
	} else {
		runs, err = store.TopRuns(limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintln(w, "Best Runs - Fish Grab")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'fishgrab play' and grab every fish to set the first record!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-4s  %-5s  %-7s  %s\n", "Rank", "Player", "Fish", "Moves", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-4s  %-5s  %-7s  %s\n", "----", "------", "----", "-----", "----", "----")
	for i, r := range runs {
		name := r.Player
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-12s  %-4d  %-5d  %-7s  %s\n",
			i+1, name, r.Score, r.Moves, tui.FormatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	best, err := store.BestRun()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("retrieving best run: %w", err)
	}
	if best != nil {
		fmt.Fprintf(w, "Best: %d fish in %d moves (%s)\n", best.Score, best.Moves, tui.FormatDuration(best.Duration))
	}
	if stats, err := store.GetStats(); err == nil {
		fmt.Fprintf(w, "Runs: %d by %d players, %.1f moves on average\n", stats.Runs, stats.Players, stats.AvgMoves)
	}
	return nil
}

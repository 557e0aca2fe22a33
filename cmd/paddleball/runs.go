package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/paddleball/internal/games/paddleball"
	"github.com/vovakirdan/paddleball/internal/platform/tui"
	"github.com/vovakirdan/paddleball/internal/registry"
	"github.com/vovakirdan/paddleball/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
	flagRecent bool
	flagClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [variant]",
	Short: "Show the run history",
	Long: `Display the best runs of a variant by paddle hits, newest first on ties.

Examples:
  paddleball runs
  paddleball runs basic --limit 20
  paddleball runs --recent
  paddleball runs --browse
  paddleball runs bounded --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the history in an interactive table")
	runsCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs of every variant")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the variant")
}

func runRuns(_ *cobra.Command, args []string) error {
	v, err := resolveVariant(args)
	if err != nil {
		return err
	}
	gameID := paddleball.GameID(v)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared the history of %s.\n", gameID)
		return nil

	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunRuns(store, width, height, gameID)

	case flagRecent:
		runs, err := store.RecentRuns(flagLimit)
		if err != nil {
			return err
		}
		fmt.Println("Recent runs")
		fmt.Println()
		printRuns(runs, true)
		return nil
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		return err
	}

	title := gameID
	if g, err := registry.Create(gameID); err == nil {
		title = g.Title()
	}
	fmt.Printf("Best runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'paddleball play %s' to record the first run!\n", v)
		return nil
	}
	printRuns(runs, false)

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if st, ok := stats[gameID]; ok {
		fmt.Println()
		fmt.Printf("Best: %d hits  Runs: %d  Avg: %.1f hits  Ticks: %d\n",
			st.BestHits, st.Runs, st.AvgHits, st.TotalTicks)
	}
	return nil
}

func printRuns(runs []storage.Run, withGame bool) {
	if withGame {
		fmt.Printf("  %-4s  %-20s  %-5s  %-7s  %-7s  %s\n", "Rank", "Game", "Hits", "Bounces", "Ticks", "Date")
		fmt.Printf("  %-4s  %-20s  %-5s  %-7s  %-7s  %s\n", "----", "----", "----", "-------", "-----", "----")
	} else {
		fmt.Printf("  %-4s  %-5s  %-7s  %-7s  %s\n", "Rank", "Hits", "Bounces", "Ticks", "Date")
		fmt.Printf("  %-4s  %-5s  %-7s  %-7s  %s\n", "----", "----", "-------", "-----", "----")
	}

	for i, r := range runs {
		date := r.CreatedAt.Format("2006-01-02 15:04")
		if withGame {
			fmt.Printf("  %-4d  %-20s  %-5d  %-7d  %-7d  %s\n", i+1, r.GameID, r.Hits, r.Bounces, r.Ticks, date)
		} else {
			fmt.Printf("  %-4d  %-5d  %-7d  %-7d  %s\n", i+1, r.Hits, r.Bounces, r.Ticks, date)
		}
	}
}

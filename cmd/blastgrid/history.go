package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blastgrid/internal/config"
	"github.com/vovakirdan/blastgrid/internal/platform/tui"
	"github.com/vovakirdan/blastgrid/internal/storage"
)

var (
	flagHistoryInput string
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	Long: `Display the most recent detonation runs, newest first.

Examples:
  blastgrid history
  blastgrid history --input maps/level1.txt --limit 5
  blastgrid history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryInput, "input", "", "Only show runs for this input path")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 0, "Number of runs to show (default: history.recent_limit)")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

// mustOpenHistory opens the history database or exits.
func mustOpenHistory(cfg config.Config) *storage.Store {
	if !cfg.History.Enabled {
		fmt.Fprintln(os.Stderr, "Error: run history is disabled (history.enabled: false)")
		os.Exit(1)
	}
	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	store := mustOpenHistory(cfg)
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	limit := flagHistoryLimit
	if limit <= 0 {
		limit = cfg.History.RecentLimit
	}

	var (
		runs []storage.RunRecord
		err  error
	)
	if flagHistoryInput != "" {
		runs, err = store.RunsByInput(flagHistoryInput, limit)
	} else {
		runs, err = store.RecentRuns(limit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Println(tui.HistoryTable(runs, terminalWidth(100), cfg.Render.Color && isTerminal(os.Stdout)))
}

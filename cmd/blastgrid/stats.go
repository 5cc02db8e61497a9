package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blastgrid/internal/platform/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run statistics",
	Long:  `Display totals over all recorded detonation runs.`,
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	store := mustOpenHistory(cfg)
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run statistics")
	fmt.Println()
	fmt.Println(tui.StatsView(stats, resolveTheme(cfg, logger)))
}

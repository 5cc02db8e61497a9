// blastgrid simulates bomb detonations on text grids.
//
// Usage:
//
//	blastgrid detonate <input> <outdir> [x y]  - Detonate a bomb and write the result
//	blastgrid render <input>                   - Print a grid file
//	blastgrid pick <input> <outdir>            - Choose the bomb interactively
//	blastgrid history                          - Show recent runs
//	blastgrid stats                            - Show run statistics
//	blastgrid formats                          - List supported grid formats
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.blastgrid, ./configs)
//	--db <path>         - Run history database (overrides history.db_path)
//	--log-level <level> - debug, info, warn, error (overrides log.level)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blastgrid/internal/blast/levels"
	"github.com/vovakirdan/blastgrid/internal/blast/runner"
	"github.com/vovakirdan/blastgrid/internal/config"
	"github.com/vovakirdan/blastgrid/internal/platform/tui"
	"github.com/vovakirdan/blastgrid/internal/storage"
)

var (
	// Global flags
	flagConfig   string
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
	Use:   "blastgrid",
	Short: "Blastgrid - simulate bomb chain reactions on a grid",
	Long: `Blastgrid reads a grid of walls, rocks, enemies, bombs and detours,
detonates one bomb, follows the chain reaction and writes the resulting grid.

Available commands:
  detonate - Detonate a bomb and write the result to <outdir>/<input>
  render   - Print a grid file
  pick     - Choose the bomb to detonate interactively
  history  - Show recent runs
  stats    - Show run statistics
  formats  - List supported grid formats

Examples:
  blastgrid detonate maps/level1.txt out 0 2
  blastgrid render maps/level1.txt
  blastgrid pick maps/level1.txt out
  blastgrid history --input maps/level1.txt`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(detonateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(formatsCmd)
}

// loadConfig loads the config file and applies flag overrides.
// Exits on an unreadable or invalid config.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.History.Enabled = true
		cfg.History.DBPath = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates the stderr logger used by all commands.
func newLogger(cfg config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "blastgrid",
		Level:           cfg.LogLevel(),
	})
}

// openHistory opens the run history database. A failure is logged and
// commands continue without history.
func openHistory(cfg config.Config, logger *log.Logger) *storage.Store {
	if !cfg.History.Enabled {
		return nil
	}
	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.History.DBPath, "err", err)
		return nil
	}
	return store
}

// newRunner builds a runner that records into the history database when it
// is enabled. release closes the database; call it before os.Exit.
func newRunner(cfg config.Config, loader *levels.Loader, logger *log.Logger) (r *runner.Runner, release func()) {
	store := openHistory(cfg, logger)
	if store == nil {
		return runner.New(loader, nil, logger), func() {}
	}
	return runner.New(loader, store, logger), func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close history database", "path", cfg.History.DBPath, "err", err)
		}
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the stdout width, or fallback if unknown.
func terminalWidth(fallback int) int {
	if !isTerminal(os.Stdout) {
		return fallback
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// resolveTheme picks the grid theme for stdout.
func resolveTheme(cfg config.Config, logger *log.Logger) tui.Theme {
	if !cfg.Render.Color || !isTerminal(os.Stdout) {
		theme := tui.PlainTheme()
		theme.CellWidth = cfg.Render.CellWidth
		return theme
	}

	theme, ok := tui.ThemeByName(cfg.Render.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Render.Theme)
	}
	theme.CellWidth = cfg.Render.CellWidth
	return theme
}

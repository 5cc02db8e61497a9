package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blastgrid/internal/blast/core"
	"github.com/vovakirdan/blastgrid/internal/blast/levels"
	"github.com/vovakirdan/blastgrid/internal/platform/tui"
)

var flagRenderPlain bool

var renderCmd = &cobra.Command{
	Use:   "render <input>",
	Short: "Print a grid file",
	Long: `Print a grid file with styled cells: detours as arrows, empty cells as
"__". Output is plain text when stdout is not a terminal, when render.color
is false, or with --plain.

Examples:
  blastgrid render maps/level1.txt
  blastgrid render maps/level2.yaml --plain`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&flagRenderPlain, "plain", false, "Disable styling")
}

func runRender(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	lvl, err := levels.NewLoader(cfg.Output.DirPerm, cfg.Output.FilePerm).LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	g := lvl.Grid

	if width := terminalWidth(0); width > 0 && g.W*cfg.Render.CellWidth > width {
		logger.Warn("grid is wider than the terminal", "columns", g.W*cfg.Render.CellWidth, "width", width)
	}

	theme := resolveTheme(cfg, logger)
	if flagRenderPlain {
		fmt.Println(tui.RenderPlain(g, cfg.Render.CellWidth))
	} else {
		fmt.Println(tui.RenderGrid(g, theme, lvl.Target))
	}

	fmt.Println()
	fmt.Printf("%s (%s) %dx%d\n", lvl.Name, lvl.Format, g.W, g.H)
	fmt.Printf("  bombs:   %d\n", len(g.Bombs()))
	fmt.Printf("  enemies: %d (total health %d)\n", g.Count(core.KindEnemy), g.EnemyHealth())
	if lvl.Target != nil {
		fmt.Printf("  target:  %s\n", *lvl.Target)
	}
}

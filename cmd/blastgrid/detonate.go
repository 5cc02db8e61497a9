package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blastgrid/internal/blast/levels"
	"github.com/vovakirdan/blastgrid/internal/blast/runner"
	"github.com/vovakirdan/blastgrid/internal/platform/tui"
)

var flagPreview bool

var detonateCmd = &cobra.Command{
	Use:   "detonate <input> <outdir> [x y]",
	Short: "Detonate a bomb and write the resulting grid",
	Long: `Detonate the bomb at (x, y) in the input grid and write the grid after
the chain reaction to <outdir>/<input>. The output directory is created if
needed. On failure the error message is written to the same file instead.

Coordinates are zero-based: x is the column, y the row. They may be omitted
for YAML grids that define a target.

Examples:
  blastgrid detonate maps/level1.txt out 0 2
  blastgrid detonate maps/level2.yaml out
  blastgrid detonate maps/level1.txt out 0 2 --preview`,
	Args: cobra.RangeArgs(2, 4),
	Run:  runDetonate,
}

func init() {
	detonateCmd.Flags().BoolVar(&flagPreview, "preview", false, "Print the grid before and after the detonation")
}

func runDetonate(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	loader := levels.NewLoader(cfg.Output.DirPerm, cfg.Output.FilePerm)

	r, release := newRunner(cfg, loader, logger)

	out := r.Run(runner.Request{
		Input:  args[0],
		OutDir: args[1],
		Coords: args[2:],
	})
	release()

	if out.OK() && flagPreview {
		theme := resolveTheme(cfg, logger)
		fmt.Println(tui.RenderComparison(out.Level.Grid, out.Turn.Grid, theme))
		fmt.Println()
		fmt.Println(tui.RenderSummary(out.Turn, theme))
	}

	switch {
	case out.WriteErr != nil:
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out.OutputPath, out.WriteErr)
		os.Exit(1)
	case out.Err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", out.Err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blastgrid/internal/blast/levels"
	"github.com/vovakirdan/blastgrid/internal/blast/runner"
	"github.com/vovakirdan/blastgrid/internal/platform/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick <input> <outdir>",
	Short: "Choose the bomb to detonate interactively",
	Long: `Open the grid in an interactive picker. Move the cursor to a bomb and
press Enter to detonate it; the grid before and after the chain reaction is
shown side by side. Press Enter again to write the result to <outdir>/<input>,
or r to pick another bomb.

Controls:
  Arrows/hjkl  - Move cursor
  Tab/S-Tab    - Jump to next/previous bomb
  Enter        - Detonate, then save
  R/Esc        - Back to picking
  Q/Ctrl+C     - Quit without saving`,
	Args: cobra.ExactArgs(2),
	Run:  runPick,
}

func runPick(cmd *cobra.Command, args []string) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "Error: pick needs an interactive terminal; use 'blastgrid detonate' instead")
		os.Exit(1)
	}

	cfg := loadConfig()
	logger := newLogger(cfg)
	input, outDir := args[0], args[1]

	loader := levels.NewLoader(cfg.Output.DirPerm, cfg.Output.FilePerm)
	lvl, err := loader.LoadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme := resolveTheme(cfg, logger)
	res, err := tui.RunPicker(lvl.Name, lvl.Grid, lvl.Target, theme)
	if errors.Is(err, tui.ErrNoBombs) {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", input, err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
		os.Exit(1)
	}
	if !res.Accepted {
		fmt.Println("Nothing written.")
		return
	}

	r, release := newRunner(cfg, loader, logger)

	out := r.Complete(runner.Outcome{
		Input:      input,
		OutputPath: levels.OutputPath(outDir, input),
		Level:      lvl,
		Target:     res.Target,
		Turn:       res.Turn,
	})
	release()
	if out.WriteErr != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out.OutputPath, out.WriteErr)
		os.Exit(1)
	}

	fmt.Printf("Detonated %s, result written to %s\n", res.Target, out.OutputPath)
	fmt.Println(tui.RenderSummary(res.Turn, theme))
}

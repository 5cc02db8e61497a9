package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blastgrid/internal/registry"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported grid formats",
	Long:  `Shows the grid file formats and the extensions routed to each.`,
	Run:   runFormats,
}

func runFormats(cmd *cobra.Command, args []string) {
	formats := registry.List()

	if len(formats) == 0 {
		fmt.Println("No formats available.")
		return
	}

	fmt.Println("Supported formats:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range formats {
		if len(f.Name) > maxNameLen {
			maxNameLen = len(f.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Extensions")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "----------")

	for _, f := range formats {
		exts := make([]string, len(f.Extensions))
		for i, ext := range f.Extensions {
			if ext == "" {
				ext = "(none)"
			}
			exts[i] = ext
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, f.Name, strings.Join(exts, " "))
	}
}

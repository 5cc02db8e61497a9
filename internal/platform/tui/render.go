// Package tui renders grids with lipgloss and hosts the Bubble Tea target picker.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blastgrid/internal/blast/core"
)

// detourArrows maps detour directions to their display glyphs.
var detourArrows = map[core.Dir]string{
	core.DirUp:    "↑",
	core.DirDown:  "↓",
	core.DirLeft:  "←",
	core.DirRight: "→",
}

// Glyph returns the display form of an item: "__" for empty cells and an
// arrow for detours. Other items use their token.
func Glyph(it core.Item) string {
	switch it.Kind {
	case core.KindEmpty:
		return "__"
	case core.KindDetour:
		return detourArrows[it.Direction()]
	}
	return it.String()
}

// padCell right-aligns a glyph in a cell of the given width.
func padCell(glyph string, width int) string {
	return fmt.Sprintf("%*s", width, glyph)
}

// RenderGrid converts a grid to a styled string for display.
// If cursor is non-nil, that cell is drawn with the cursor style.
func RenderGrid(g *core.Grid, theme Theme, cursor *core.Coord) string {
	width := theme.CellWidth
	if width <= 0 {
		width = 3
	}

	var sb strings.Builder
	sb.Grow(g.W*g.H*width*2 + g.H)

	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.W; x++ {
			c := core.C(x, y)
			it := g.At(c)
			style := theme.CellStyle(it)
			if cursor != nil && *cursor == c {
				style = theme.Cursor.Inherit(style)
			}
			sb.WriteString(style.Render(padCell(Glyph(it), width)))
		}
	}
	return sb.String()
}

// RenderPlain renders the grid without styling: one row per line, each cell
// right-aligned in cellWidth columns.
func RenderPlain(g *core.Grid, cellWidth int) string {
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.W; x++ {
			sb.WriteString(padCell(Glyph(g.At(core.C(x, y))), cellWidth))
		}
	}
	return sb.String()
}

// RenderComparison places the grid before and after a turn side by side.
func RenderComparison(before, after *core.Grid, theme Theme) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		theme.Label.Render("before"),
		RenderGrid(before, theme, nil),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		theme.Label.Render("after"),
		RenderGrid(after, theme, nil),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, theme.Divider.Render("   "), right)
}

// RenderSummary describes a turn result in one line.
func RenderSummary(r core.TurnResult, theme Theme) string {
	parts := []string{
		theme.Label.Render("detonations ") + theme.Value.Render(fmt.Sprint(r.Detonations())),
		theme.Label.Render("hits ") + theme.Value.Render(fmt.Sprint(r.Hits())),
		theme.Label.Render("kills ") + theme.Value.Render(fmt.Sprint(r.Kills())),
	}
	return strings.Join(parts, theme.Divider.Render(" | "))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blastgrid/internal/storage"
)

// History table layout constants
const (
	historyMinWidth  = 60 // Below this the path column is not widened
	historyPathWidth = 24 // Default width of the input path column
	historyMaxPath   = 48
)

// HistoryTable renders recorded runs as a static table.
func HistoryTable(runs []storage.RunRecord, width int, color bool) string {
	if len(runs) == 0 {
		return "No runs recorded yet."
	}

	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Input", Width: historyPathWidth},
		{Title: "Target", Width: 8},
		{Title: "Size", Width: 7},
		{Title: "Result", Width: 20},
		{Title: "Chain", Width: 5},
		{Title: "Hits", Width: 4},
		{Title: "Kills", Width: 5},
	}

	// Give spare width to the input path
	if width > historyMinWidth {
		fixed := 0
		for _, c := range columns {
			fixed += c.Width + 2 // Cell padding
		}
		fixed -= columns[1].Width
		if pathWidth := width - fixed; pathWidth > historyPathWidth {
			columns[1].Width = min(pathWidth, historyMaxPath)
		}
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := r.Status
		if r.ErrorCode != "" {
			result = r.ErrorCode
		}
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			truncatePath(r.InputPath, columns[1].Width),
			fmt.Sprintf("(%d,%d)", r.TargetX, r.TargetY),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			result,
			fmt.Sprint(r.Detonations),
			fmt.Sprint(r.Hits),
			fmt.Sprint(r.Kills),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // Header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No selection in a static table
	s.Selected = lipgloss.NewStyle()
	if !color {
		s.Header = s.Header.UnsetBorderForeground().UnsetBold()
	}
	t.SetStyles(s)

	return t.View()
}

// truncatePath keeps the tail of a path that does not fit in width.
func truncatePath(path string, width int) string {
	r := []rune(path)
	if len(r) <= width || width < 4 {
		return path
	}
	return "..." + string(r[len(r)-width+3:])
}

// StatsView renders aggregated run statistics as aligned label/value lines.
func StatsView(stats *storage.RunStats, theme Theme) string {
	lines := [][2]string{
		{"runs", fmt.Sprint(stats.TotalRuns)},
		{"failed", fmt.Sprint(stats.FailedRuns)},
		{"detonations", fmt.Sprint(stats.TotalDetonations)},
		{"hits", fmt.Sprint(stats.TotalHits)},
		{"kills", fmt.Sprint(stats.TotalKills)},
		{"longest chain", fmt.Sprint(stats.MaxChain)},
	}
	last := "never"
	if !stats.LastRun.IsZero() {
		last = stats.LastRun.Format("2006-01-02 15:04:05")
	}
	lines = append(lines, [2]string{"last run", last})

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Label.Render(fmt.Sprintf("%-14s", l[0])))
		b.WriteString(theme.Value.Render(l[1]))
	}
	return b.String()
}

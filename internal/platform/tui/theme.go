package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blastgrid/internal/blast/core"
)

// Theme contains all configurable visual styles for grid rendering.
type Theme struct {
	// Grid cell styles
	EmptyCell    lipgloss.Style
	WallCell     lipgloss.Style
	RockCell     lipgloss.Style
	EnemyCell    [core.MaxEnemyHealth + 1]lipgloss.Style // Indexed by health
	BombCell     lipgloss.Style
	PiercingCell lipgloss.Style
	DetourCell   lipgloss.Style
	Cursor       lipgloss.Style

	// HUD styles
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
	Divider lipgloss.Style

	// CellWidth is the number of columns each cell occupies.
	CellWidth int
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		EmptyCell: lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		WallCell:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		RockCell:  lipgloss.NewStyle().Foreground(lipgloss.Color("137")), // Brown
		EnemyCell: [core.MaxEnemyHealth + 1]lipgloss.Style{
			lipgloss.NewStyle(),
			lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // Orange, one hit left
			lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Full health
		},
		BombCell:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Bright yellow
		PiercingCell: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true), // Magenta
		DetourCell:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),             // Bright cyan
		Cursor:       lipgloss.NewStyle().Reverse(true),

		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		CellWidth: 3,
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.RockCell = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	theme.EnemyCell[1] = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.EnemyCell[2] = lipgloss.NewStyle().Foreground(lipgloss.Color("253"))
	theme.EnemyCell[3] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.BombCell = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.PiercingCell = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.DetourCell = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Error = lipgloss.NewStyle().Bold(true)
	return theme
}

// PlainTheme returns a theme without any styling, for output that is not
// a terminal.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		EmptyCell:    plain,
		WallCell:     plain,
		RockCell:     plain,
		EnemyCell:    [core.MaxEnemyHealth + 1]lipgloss.Style{plain, plain, plain, plain},
		BombCell:     plain,
		PiercingCell: plain,
		DetourCell:   plain,
		Cursor:       plain,
		Title:        plain,
		Label:        plain,
		Value:        plain,
		Error:        plain,
		Help:         plain,
		Divider:      plain,
		CellWidth:    3,
	}
}

// ThemeByName returns a named theme. Known names are "default" and "mono".
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return MonochromeTheme(), true
	}
	return DefaultTheme(), false
}

// CellStyle returns the style used for an item.
func (t Theme) CellStyle(it core.Item) lipgloss.Style {
	switch it.Kind {
	case core.KindWall:
		return t.WallCell
	case core.KindRock:
		return t.RockCell
	case core.KindEnemy:
		if h := it.Health(); h >= 0 && h < len(t.EnemyCell) {
			return t.EnemyCell[h]
		}
		return t.EnemyCell[len(t.EnemyCell)-1]
	case core.KindBomb:
		return t.BombCell
	case core.KindPiercingBomb:
		return t.PiercingCell
	case core.KindDetour:
		return t.DetourCell
	}
	return t.EmptyCell
}

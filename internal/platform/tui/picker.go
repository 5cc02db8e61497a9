package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blastgrid/internal/blast/core"
)

// pickerPhase is the current screen of the picker.
type pickerPhase int

const (
	phasePicking pickerPhase = iota
	phaseResult
)

// PickResult is the outcome of a picker session.
type PickResult struct {
	Target   core.Coord
	Turn     core.TurnResult
	Accepted bool // False if the user quit without saving
}

// PickerModel is the Bubble Tea model for choosing a detonation target.
// The source grid is never modified; each detonation runs on a copy.
type PickerModel struct {
	name     string
	grid     *core.Grid
	bombs    []core.Coord
	cursor   core.Coord
	phase    pickerPhase
	turn     core.TurnResult
	err      error
	accepted bool
	quitting bool
	theme    Theme
	keys     PickerKeyMap
	help     help.Model
	width    int
	height   int
}

// NewPickerModel creates a picker for grid. The cursor starts on start if
// it is in bounds, otherwise on the first bomb.
func NewPickerModel(name string, grid *core.Grid, start *core.Coord, theme Theme) PickerModel {
	m := PickerModel{
		name:  name,
		grid:  grid,
		bombs: grid.Bombs(),
		theme: theme,
		keys:  DefaultPickerKeyMap(),
		help:  help.New(),
	}

	switch {
	case start != nil && grid.InBounds(*start):
		m.cursor = *start
	case len(m.bombs) > 0:
		m.cursor = m.bombs[0]
	}
	return m
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.phase == phaseResult {
		switch {
		case key.Matches(msg, m.keys.Accept):
			m.accepted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.phase = phasePicking
			m.turn = core.TurnResult{}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.move(1, 0)
	case key.Matches(msg, m.keys.NextBomb):
		m.cycleBomb(1)
	case key.Matches(msg, m.keys.PrevBomb):
		m.cycleBomb(-1)
	case key.Matches(msg, m.keys.Detonate):
		m.detonate()
	}
	return m, nil
}

// move shifts the cursor, staying inside the grid.
func (m *PickerModel) move(dx, dy int) {
	next := m.cursor.Add(dx, dy)
	if m.grid.InBounds(next) {
		m.cursor = next
		m.err = nil
	}
}

// cycleBomb jumps to the next or previous bomb in row-major order.
func (m *PickerModel) cycleBomb(step int) {
	if len(m.bombs) == 0 {
		return
	}
	idx := -1
	for i, b := range m.bombs {
		if b == m.cursor {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = len(m.bombs) - 1
	default:
		idx = (idx + step + len(m.bombs)) % len(m.bombs)
	}
	m.cursor = m.bombs[idx]
	m.err = nil
}

// detonate runs one turn on a copy of the grid at the cursor.
func (m *PickerModel) detonate() {
	turn, err := core.ExecuteTurn(m.grid.Clone(), m.cursor)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.turn = turn
	m.phase = phaseResult
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.accepted {
		return ""
	}

	var b strings.Builder

	title := "DETONATE"
	if m.name != "" {
		title = fmt.Sprintf("DETONATE - %s", m.name)
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n\n")

	switch m.phase {
	case phasePicking:
		b.WriteString(RenderGrid(m.grid, m.theme, &m.cursor))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Label.Render("target "))
		b.WriteString(m.theme.Value.Render(fmt.Sprintf("%s %s", m.cursor, m.grid.At(m.cursor).Kind)))
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(m.theme.Error.Render(m.err.Error()))
		}
	case phaseResult:
		b.WriteString(RenderComparison(m.grid, m.turn.Grid, m.theme))
		b.WriteString("\n\n")
		b.WriteString(RenderSummary(m.turn, m.theme))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// Cursor returns the current cursor position.
func (m PickerModel) Cursor() core.Coord {
	return m.cursor
}

// Err returns the error from the last rejected detonation, if any.
func (m PickerModel) Err() error {
	return m.err
}

// Result returns the session outcome.
func (m PickerModel) Result() PickResult {
	return PickResult{
		Target:   m.cursor,
		Turn:     m.turn,
		Accepted: m.accepted,
	}
}

// ErrNoBombs is returned by RunPicker for a grid with nothing to detonate.
var ErrNoBombs = errors.New("grid has no bombs")

// RunPicker runs the target picker screen.
func RunPicker(name string, grid *core.Grid, start *core.Coord, theme Theme) (PickResult, error) {
	if len(grid.Bombs()) == 0 {
		return PickResult{}, ErrNoBombs
	}

	model := NewPickerModel(name, grid, start, theme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PickResult{}, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return PickResult{}, nil
	}

	return m.Result(), nil
}

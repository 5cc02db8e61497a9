package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// PickerKeyMap defines the key bindings for the target picker.
type PickerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextBomb key.Binding
	PrevBomb key.Binding
	Detonate key.Binding
	Accept   key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextBomb, k.Detonate, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextBomb, k.PrevBomb},
		{k.Detonate, k.Accept, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("right/l", "move right"),
		),
		NextBomb: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next bomb"),
		),
		PrevBomb: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev bomb"),
		),
		Detonate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "detonate"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter/y", "save result"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "esc"),
			key.WithHelp("r", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the widget's keyboard shortcuts.
// Every key outside this map is typed into the input.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Theme key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Up/Down share help text (displayed as a single entry)
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↑/↓", "move"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// footerBindings lists the bindings shown in the help footer, in order.
func (k KeyMap) footerBindings() []key.Binding {
	return []key.Binding{k.Up, k.Enter, k.Theme, k.Quit}
}

// navigationKey maps a matched binding to the navigator key it stands for.
func (k KeyMap) navigationKey(msg tea.KeyMsg) (Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return KeyUp, true
	case key.Matches(msg, k.Down):
		return KeyDown, true
	case key.Matches(msg, k.Enter):
		return KeyEnter, true
	}
	return KeyOther, false
}

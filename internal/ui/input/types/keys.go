package types

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the bindings shared by every field
type KeyMap struct {
	Down    key.Binding
	Up      key.Binding
	Accept  key.Binding
	Dismiss key.Binding
	Next    key.Binding
	Toggle  key.Binding
}

// DefaultKeyMap returns the default field bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "next suggestion"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "previous suggestion"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close list"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
	}
}

// Navigation maps msg onto a navigation key. Toggle is not a navigation key:
// in a text field a space is text.
func (k KeyMap) Navigation(msg tea.KeyMsg) (Key, bool) {
	switch {
	case key.Matches(msg, k.Down):
		return KeyArrowDown, true
	case key.Matches(msg, k.Up):
		return KeyArrowUp, true
	case key.Matches(msg, k.Accept):
		return KeyEnter, true
	case key.Matches(msg, k.Dismiss):
		return KeyEscape, true
	case key.Matches(msg, k.Next):
		return KeyTab, true
	}
	return KeyNone, false
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Accept, k.Dismiss}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up},
		{k.Accept, k.Dismiss, k.Next, k.Toggle},
	}
}

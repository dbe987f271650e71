package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"fieldkit/internal/ui/input/types"
)

// formKeys are handled by the form before the focused field sees a key
type formKeys struct {
	Next key.Binding
	Prev key.Binding
	Help key.Binding
	Quit key.Binding

	field types.KeyMap
}

func newFormKeys(field types.KeyMap) formKeys {
	return formKeys{
		Next: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		field: field,
	}
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.field.Down, k.field.Accept, k.Help, k.Quit}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Prev, k.Help, k.Quit}}, k.field.FullHelp()...)
}

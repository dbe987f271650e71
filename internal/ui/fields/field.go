// Package fields holds the simple form fields that sit next to the
// autocomplete field: text field, single select, multi select and toggle.
package fields

import (
	tea "github.com/charmbracelet/bubbletea"

	"fieldkit/internal/ui/autocomplete"
)

// Field is what a form needs from any field
type Field interface {
	ID() string
	Label() string
	Value() string
	Focus() tea.Cmd
	Blur() tea.Cmd
	Focused() bool
	Update(msg tea.Msg) tea.Cmd
	View() string
}

var (
	_ Field = (*autocomplete.Model)(nil)
	_ Field = (*TextField)(nil)
	_ Field = (*SingleSelect)(nil)
	_ Field = (*MultiSelect)(nil)
	_ Field = (*Toggle)(nil)
)

package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for fields and the demo form
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Placeholder  lipgloss.Style
	Dim          lipgloss.Style
	Disabled     lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Trace        lipgloss.Style

	// dropdown rows
	Option            lipgloss.Style
	OptionHighlighted lipgloss.Style
	OptionSelected    lipgloss.Style
	OptionDetail      lipgloss.Style
	OptionLoading     lipgloss.Style
	OptionEmpty       lipgloss.Style
	Scroll            lipgloss.Style

	// select and toggle markers
	Check       lipgloss.Style
	ToggleOn    lipgloss.Style
	ToggleOff   lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Disabled:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Trace: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),

		Option:            lipgloss.NewStyle().PaddingLeft(2),
		OptionHighlighted: lipgloss.NewStyle().PaddingLeft(2).Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")).Bold(true),
		OptionSelected:    lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("78")), // green
		OptionDetail:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		OptionLoading:     lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("241")).Italic(true),
		OptionEmpty:       lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("241")).Italic(true),
		Scroll:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),

		Check:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		ToggleOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		ToggleOff:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}

// LabelStyle picks the label style for the focus state
func (s *Styles) LabelStyle(focused bool) lipgloss.Style {
	if focused {
		return s.LabelFocused
	}
	return s.Label
}

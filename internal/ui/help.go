package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys formKeys
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys formKeys) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(b key.Binding) string {
		h := b.Help()
		return fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc))
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("fieldkit Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Form"))
	help.WriteString("\n")
	help.WriteString(line(r.keys.Next))
	help.WriteString(line(r.keys.Prev))
	help.WriteString(line(r.keys.Help))
	help.WriteString(line(r.keys.Quit))
	help.WriteString("\n")

	fk := r.keys.field
	help.WriteString(sectionStyle.Render("Autocomplete"))
	help.WriteString("\n")
	help.WriteString(line(fk.Down))
	help.WriteString(line(fk.Up))
	help.WriteString(line(fk.Accept))
	help.WriteString(line(fk.Dismiss))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render("click"), descStyle.Render("select a suggestion")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Select & Toggle"))
	help.WriteString("\n")
	help.WriteString(line(fk.Toggle))
	help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(fk.Accept.Help().Key), descStyle.Render("choose / flip")))
	help.WriteString("\n")

	hintStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(hintStyle.Render("  Package search: start a query with ! to simulate a registry outage"))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// give ov time to exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

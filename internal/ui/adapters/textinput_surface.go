package adapters

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fieldkit/internal/domain"
	"fieldkit/internal/ui/views"
)

// TextInputSurface is the terminal surface: a bubbles textinput line with the
// dropdown rendered directly below it, one row per option record.
type TextInputSurface struct {
	input    textinput.Model
	open     bool
	records  []domain.OptionRecord
	disabled bool
	styles   *views.Styles
	width    int

	// screen position of the input line, set by the parent layout
	originX int
	originY int
}

// NewTextInputSurface creates a surface width cells wide
func NewTextInputSurface(styles *views.Styles, width int) *TextInputSurface {
	if styles == nil {
		styles = views.NewStyles()
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PlaceholderStyle = styles.Placeholder
	s := &TextInputSurface{input: ti, styles: styles}
	s.SetWidth(width)
	return s
}

// SetWidth resizes the input line and dropdown
func (s *TextInputSurface) SetWidth(width int) {
	if width < 8 {
		width = 8
	}
	s.width = width
	s.input.Width = width - len(s.input.Prompt) - 1
}

// SetOrigin records where the input line was drawn, for mouse hit-testing
func (s *TextInputSurface) SetOrigin(x, y int) {
	s.originX = x
	s.originY = y
}

func (s *TextInputSurface) Value() string {
	return s.input.Value()
}

func (s *TextInputSurface) SetValue(text string) {
	s.input.SetValue(text)
	s.input.CursorEnd()
}

func (s *TextInputSurface) SetOpen(open bool) {
	s.open = open
}

// Open reports the dropdown flag last pushed
func (s *TextInputSurface) Open() bool {
	return s.open
}

func (s *TextInputSurface) SetOptions(records []domain.OptionRecord) {
	s.records = append(s.records[:0], records...)
}

func (s *TextInputSurface) SetDisabled(disabled bool) {
	s.disabled = disabled
	if disabled {
		s.input.Blur()
	}
}

func (s *TextInputSurface) SetPlaceholder(text string) {
	s.input.Placeholder = text
}

func (s *TextInputSurface) Focus() tea.Cmd {
	if s.disabled {
		return nil
	}
	return s.input.Focus()
}

func (s *TextInputSurface) Blur() {
	s.input.Blur()
}

// Focused reports whether the input line has the cursor
func (s *TextInputSurface) Focused() bool {
	return s.input.Focused()
}

func (s *TextInputSurface) Update(msg tea.Msg) tea.Cmd {
	if s.disabled {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *TextInputSurface) RowAt(x, y int) (int, bool) {
	if !s.open || x < s.originX || x >= s.originX+s.width {
		return 0, false
	}
	row := y - s.originY - 1
	if row < 0 || row >= len(s.records) {
		return 0, false
	}
	rec := s.records[row]
	if rec.Kind != domain.RecordOption || rec.Disabled {
		return 0, false
	}
	return row, true
}

// Height returns the number of lines View renders
func (s *TextInputSurface) Height() int {
	if !s.open {
		return 1
	}
	return 1 + len(s.records)
}

// View renders the input line and, when open, the dropdown rows
func (s *TextInputSurface) View() string {
	line := s.input.View()
	if s.disabled {
		line = s.styles.Disabled.Render(s.input.Prompt + s.input.Value())
	}
	if !s.open || len(s.records) == 0 {
		return line
	}
	rows := views.RenderDropdown(s.records, s.width, s.styles)
	return line + "\n" + strings.Join(rows, "\n")
}

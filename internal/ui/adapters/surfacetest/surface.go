// Package surfacetest provides an in-memory Surface for field tests.
package surfacetest

import (
	tea "github.com/charmbracelet/bubbletea"

	"fieldkit/internal/domain"
)

// Surface records everything pushed to it. Key messages with runes append
// them to the value and backspace removes the last rune, which is enough
// editing for tests. Row i of the dropdown is at screen row i+1, column 0.
type Surface struct {
	Text        string
	IsOpen      bool
	Records     []domain.OptionRecord
	Disabled    bool
	Placeholder string
	Focused     bool

	ValuePushes int
	OpenPushes  []bool
	Updates     []tea.Msg
}

// New returns an empty fake surface
func New() *Surface {
	return &Surface{}
}

func (s *Surface) Value() string { return s.Text }

func (s *Surface) SetValue(text string) {
	s.ValuePushes++
	s.Text = text
}

func (s *Surface) SetOpen(open bool) {
	s.IsOpen = open
	s.OpenPushes = append(s.OpenPushes, open)
}

func (s *Surface) SetOptions(records []domain.OptionRecord) {
	s.Records = append([]domain.OptionRecord(nil), records...)
}

func (s *Surface) SetDisabled(disabled bool) { s.Disabled = disabled }

func (s *Surface) SetPlaceholder(text string) { s.Placeholder = text }

func (s *Surface) Focus() tea.Cmd {
	s.Focused = true
	return nil
}

func (s *Surface) Blur() { s.Focused = false }

func (s *Surface) Update(msg tea.Msg) tea.Cmd {
	s.Updates = append(s.Updates, msg)
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.Type {
	case tea.KeyRunes, tea.KeySpace:
		s.Text += string(key.Runes)
	case tea.KeyBackspace:
		if r := []rune(s.Text); len(r) > 0 {
			s.Text = string(r[:len(r)-1])
		}
	}
	return nil
}

func (s *Surface) RowAt(x, y int) (int, bool) {
	row := y - 1
	if !s.IsOpen || x < 0 || row < 0 || row >= len(s.Records) {
		return 0, false
	}
	if s.Records[row].Kind != domain.RecordOption {
		return 0, false
	}
	return row, true
}

// Labels returns the labels of the option rows currently pushed
func (s *Surface) Labels() []string {
	var out []string
	for _, r := range s.Records {
		if r.Kind == domain.RecordOption {
			out = append(out, r.Label)
		}
	}
	return out
}

// Highlighted returns the index of the highlighted row or -1
func (s *Surface) Highlighted() int {
	for i, r := range s.Records {
		if r.Highlighted {
			return i
		}
	}
	return -1
}

// Type builds the key message for typing text
func Type(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

// Click builds a left mouse press on dropdown row
func Click(row int) tea.MouseMsg {
	return tea.MouseMsg{X: 0, Y: row + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

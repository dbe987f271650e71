package fields

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"fieldkit/internal/domain"
	"fieldkit/internal/ui/views"
)

// MultiSelect picks any number of options. Values are reported in option order.
type MultiSelect struct {
	id       string
	props    SelectProps
	list     *optionList
	selected map[string]bool
	focused  bool
	styles   *views.Styles
	onChange func(values []string, msg tea.Msg)
}

// NewMultiSelect creates a multi select with values preselected
func NewMultiSelect(props SelectProps, values []string, onChange func(values []string, msg tea.Msg)) *MultiSelect {
	props = props.normalize()
	m := &MultiSelect{
		id:       uuid.NewString(),
		props:    props,
		list:     newOptionList(props.Options, props.Sort, props.Height),
		selected: make(map[string]bool),
		styles:   views.NewStyles(),
		onChange: onChange,
	}
	m.SetValues(values)
	return m
}

func (m *MultiSelect) ID() string    { return m.id }
func (m *MultiSelect) Label() string { return m.props.Label }
func (m *MultiSelect) Focused() bool { return m.focused }

// Values returns the selected values in option order
func (m *MultiSelect) Values() []string {
	var out []string
	for _, o := range m.list.options {
		if m.selected[o.Value] {
			out = append(out, o.Value)
		}
	}
	return out
}

// Value joins the selected values with commas
func (m *MultiSelect) Value() string {
	return strings.Join(m.Values(), ",")
}

// SetValues replaces the selection without firing callbacks. Unknown values are ignored.
func (m *MultiSelect) SetValues(values []string) {
	m.selected = make(map[string]bool, len(values))
	for _, v := range values {
		for _, o := range m.list.options {
			if o.Value == v {
				m.selected[v] = true
			}
		}
	}
}

func (m *MultiSelect) Focus() tea.Cmd {
	if m.props.Disabled {
		return nil
	}
	if !m.focused && m.props.OnFocus != nil {
		m.props.OnFocus(nil)
	}
	m.focused = true
	if m.list.cursor() < 0 {
		m.list.move(1)
	}
	return nil
}

func (m *MultiSelect) Blur() tea.Cmd {
	if m.focused && m.props.OnBlur != nil {
		m.props.OnBlur(nil)
	}
	m.focused = false
	return nil
}

func (m *MultiSelect) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || m.props.Disabled {
		return nil
	}
	switch {
	case key.Matches(km, m.props.Keys.Down):
		m.list.move(1)
	case key.Matches(km, m.props.Keys.Up):
		m.list.move(-1)
	case key.Matches(km, m.props.Keys.Toggle), key.Matches(km, m.props.Keys.Accept):
		if o, ok := m.list.current(); ok {
			if m.selected[o.Value] {
				delete(m.selected, o.Value)
			} else {
				m.selected[o.Value] = true
			}
			if m.onChange != nil {
				m.onChange(m.Values(), msg)
			}
		}
	}
	return nil
}

func (m *MultiSelect) View() string {
	label := m.styles.LabelStyle(m.focused).Render(m.props.Label)
	if !m.focused {
		var labels []string
		for _, v := range m.Values() {
			labels = append(labels, m.list.label(v))
		}
		summary := strings.Join(labels, ", ")
		if summary == "" {
			summary = m.styles.Dim.Render("none")
		}
		return lipgloss.JoinVertical(lipgloss.Left, label, "  "+summary)
	}

	records := m.list.records(func(o domain.Option) bool { return m.selected[o.Value] }, true)
	for i := range records {
		mark := "[ ] "
		if records[i].Selected {
			mark = "[x] "
		}
		records[i].Label = mark + records[i].Label
	}
	start, end := m.list.nav.Window()
	rows := views.RenderWindow(records, start, end, m.props.Width, m.styles)
	return lipgloss.JoinVertical(lipgloss.Left, label, strings.Join(rows, "\n"))
}

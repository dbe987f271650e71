package fields

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"fieldkit/internal/domain"
	"fieldkit/internal/ui/input/types"
	"fieldkit/internal/ui/logic"
	"fieldkit/internal/ui/views"
)

// SelectProps configures the select fields
type SelectProps struct {
	Label    string
	Options  []domain.Option
	Disabled bool
	Sort     logic.SortMode
	Height   int // visible rows, 5 when zero
	Width    int
	Keys     types.KeyMap

	OnFocus func(msg tea.Msg)
	OnBlur  func(msg tea.Msg)
}

func (p SelectProps) normalize() SelectProps {
	if !p.Keys.Accept.Enabled() {
		p.Keys = types.DefaultKeyMap()
	}
	if p.Width <= 0 {
		p.Width = 30
	}
	return p
}

// SingleSelect picks one option from a fixed list
type SingleSelect struct {
	id       string
	props    SelectProps
	list     *optionList
	value    string
	focused  bool
	styles   *views.Styles
	onChange func(value string, msg tea.Msg)
}

// NewSingleSelect creates a single select with value preselected
func NewSingleSelect(props SelectProps, value string, onChange func(value string, msg tea.Msg)) *SingleSelect {
	props = props.normalize()
	s := &SingleSelect{
		id:       uuid.NewString(),
		props:    props,
		list:     newOptionList(props.Options, props.Sort, props.Height),
		value:    value,
		styles:   views.NewStyles(),
		onChange: onChange,
	}
	s.list.moveTo(value)
	return s
}

func (s *SingleSelect) ID() string    { return s.id }
func (s *SingleSelect) Label() string { return s.props.Label }
func (s *SingleSelect) Value() string { return s.value }
func (s *SingleSelect) Focused() bool { return s.focused }

// SetValue selects value without firing callbacks
func (s *SingleSelect) SetValue(value string) {
	s.value = value
	s.list.moveTo(value)
}

func (s *SingleSelect) Focus() tea.Cmd {
	if s.props.Disabled {
		return nil
	}
	if !s.focused && s.props.OnFocus != nil {
		s.props.OnFocus(nil)
	}
	s.focused = true
	if s.list.cursor() < 0 {
		s.list.move(1)
	}
	return nil
}

func (s *SingleSelect) Blur() tea.Cmd {
	if s.focused && s.props.OnBlur != nil {
		s.props.OnBlur(nil)
	}
	s.focused = false
	return nil
}

func (s *SingleSelect) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused || s.props.Disabled {
		return nil
	}
	switch {
	case key.Matches(km, s.props.Keys.Down):
		s.list.move(1)
	case key.Matches(km, s.props.Keys.Up):
		s.list.move(-1)
	case key.Matches(km, s.props.Keys.Accept), key.Matches(km, s.props.Keys.Toggle):
		if o, ok := s.list.current(); ok {
			s.value = o.Value
			if s.onChange != nil {
				s.onChange(o.Value, msg)
			}
		}
	}
	return nil
}

func (s *SingleSelect) View() string {
	label := s.styles.LabelStyle(s.focused).Render(s.props.Label)
	if !s.focused {
		return lipgloss.JoinVertical(lipgloss.Left, label, "  "+s.list.label(s.value))
	}
	records := s.list.records(func(o domain.Option) bool { return o.Value == s.value }, true)
	start, end := s.list.nav.Window()
	rows := views.RenderWindow(records, start, end, s.props.Width, s.styles)
	return lipgloss.JoinVertical(lipgloss.Left, label, strings.Join(rows, "\n"))
}

package fields

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"fieldkit/internal/ui/input/types"
	"fieldkit/internal/ui/views"
)

// ToggleProps configures a Toggle
type ToggleProps struct {
	Label    string
	Checked  bool
	Disabled bool
	Keys     types.KeyMap

	OnChange func(checked bool, msg tea.Msg)
}

// Toggle is an on/off switch
type Toggle struct {
	id      string
	props   ToggleProps
	checked bool
	focused bool
	styles  *views.Styles
}

func NewToggle(props ToggleProps) *Toggle {
	if !props.Keys.Accept.Enabled() {
		props.Keys = types.DefaultKeyMap()
	}
	return &Toggle{
		id:      uuid.NewString(),
		props:   props,
		checked: props.Checked,
		styles:  views.NewStyles(),
	}
}

func (t *Toggle) ID() string        { return t.id }
func (t *Toggle) Label() string     { return t.props.Label }
func (t *Toggle) Checked() bool     { return t.checked }
func (t *Toggle) Value() string     { return strconv.FormatBool(t.checked) }
func (t *Toggle) Focused() bool     { return t.focused }
func (t *Toggle) SetChecked(c bool) { t.checked = c }

func (t *Toggle) Focus() tea.Cmd {
	if !t.props.Disabled {
		t.focused = true
	}
	return nil
}

func (t *Toggle) Blur() tea.Cmd {
	t.focused = false
	return nil
}

func (t *Toggle) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused || t.props.Disabled {
		return nil
	}
	if key.Matches(km, t.props.Keys.Toggle) || key.Matches(km, t.props.Keys.Accept) {
		t.checked = !t.checked
		if t.props.OnChange != nil {
			t.props.OnChange(t.checked, msg)
		}
	}
	return nil
}

func (t *Toggle) View() string {
	state := t.styles.ToggleOff.Render("( ) off")
	if t.checked {
		state = t.styles.ToggleOn.Render("(•) on")
	}
	if t.props.Disabled {
		state = t.styles.Disabled.Render(state)
	}
	return t.styles.LabelStyle(t.focused).Render(t.props.Label) + "  " + state
}

package fields

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"fieldkit/internal/ui/adapters"
	"fieldkit/internal/ui/input/types"
	"fieldkit/internal/ui/views"
)

// TextFieldProps configures a TextField
type TextFieldProps struct {
	Label       string
	Placeholder string
	Value       string
	Disabled    bool
	Keys        types.KeyMap

	OnInput  func(text string, msg tea.Msg)
	OnChange func(value string, msg tea.Msg)
	OnFocus  func(msg tea.Msg)
	OnBlur   func(msg tea.Msg)
}

// TextField is a plain text input bound to a surface the same way the
// autocomplete field is, without suggestions.
type TextField struct {
	id        string
	props     TextFieldProps
	text      string
	committed string
	focused   bool
	binding   *adapters.Binding
	styles    *views.Styles
}

// NewTextField creates an unmounted text field
func NewTextField(props TextFieldProps) *TextField {
	if !props.Keys.Accept.Enabled() {
		props.Keys = types.DefaultKeyMap()
	}
	return &TextField{
		id:        uuid.NewString(),
		props:     props,
		text:      props.Value,
		committed: props.Value,
		binding:   adapters.NewBinding(props.Keys),
		styles:    views.NewStyles(),
	}
}

// Mount attaches s and pushes the current state onto it
func (f *TextField) Mount(s adapters.Surface) {
	f.binding.Mount(s)
	f.binding.PushPlaceholder(f.props.Placeholder)
	f.binding.PushDisabled(f.props.Disabled)
	f.binding.PushValue(f.text)
	f.binding.PushOpen(false)
}

func (f *TextField) ID() string     { return f.id }
func (f *TextField) Label() string  { return f.props.Label }
func (f *TextField) Value() string  { return f.text }
func (f *TextField) Focused() bool  { return f.focused }
func (f *TextField) Disabled() bool { return f.props.Disabled }

// SetValue updates the text and the surface; no callbacks fire
func (f *TextField) SetValue(text string) {
	f.text = text
	f.committed = text
	f.binding.PushValue(text)
}

// SetDisabled enables or disables the field
func (f *TextField) SetDisabled(disabled bool) {
	f.props.Disabled = disabled
	f.binding.PushDisabled(disabled)
}

func (f *TextField) Focus() tea.Cmd {
	if f.props.Disabled {
		return nil
	}
	cmd := f.binding.Focus()
	f.handleFocus(nil)
	return cmd
}

func (f *TextField) Blur() tea.Cmd {
	f.binding.Blur()
	f.handleBlur(nil)
	return nil
}

func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	events, cmd := f.binding.Relay(msg)
	if f.props.Disabled {
		return cmd
	}
	for _, ev := range events {
		switch ev := ev.(type) {
		case types.InputEvent:
			f.text = ev.Text
			if f.props.OnInput != nil {
				f.props.OnInput(ev.Text, ev.Native)
			}
		case types.KeyDownEvent:
			if ev.Key == types.KeyEnter {
				f.commit(ev.Native)
			}
		case types.FocusEvent:
			f.handleFocus(ev.Native)
		case types.BlurEvent:
			f.handleBlur(ev.Native)
		}
	}
	return cmd
}

func (f *TextField) handleFocus(native tea.Msg) {
	if !f.focused && f.props.OnFocus != nil {
		f.props.OnFocus(native)
	}
	f.focused = true
}

// leaving the field commits edited text like a native change event
func (f *TextField) handleBlur(native tea.Msg) {
	if f.focused {
		if f.props.OnBlur != nil {
			f.props.OnBlur(native)
		}
		if f.text != f.committed {
			f.commit(native)
		}
	}
	f.focused = false
}

func (f *TextField) commit(native tea.Msg) {
	f.committed = f.text
	if f.props.OnChange != nil {
		f.props.OnChange(f.text, native)
	}
}

func (f *TextField) View() string {
	viewer, ok := f.binding.Surface().(interface{ View() string })
	if !ok {
		return ""
	}
	if f.props.Label == "" {
		return viewer.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, f.styles.LabelStyle(f.focused).Render(f.props.Label), viewer.View())
}

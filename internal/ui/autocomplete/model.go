// Package autocomplete implements the autocomplete field: a suggestion engine
// and dropdown controller driving a host surface it does not own.
package autocomplete

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"fieldkit/internal/domain"
	"fieldkit/internal/logger"
	"fieldkit/internal/ui/adapters"
	"fieldkit/internal/ui/input/types"
	"fieldkit/internal/ui/logic"
	"fieldkit/internal/ui/services/debounce"
	"fieldkit/internal/ui/services/source"
	"fieldkit/internal/ui/views"
)

// Model is one autocomplete field. It is used through a pointer: scheduled
// actions read the live model when they fire.
type Model struct {
	id     string
	props  Props
	state  QueryState
	status Status

	focused   bool
	unmounted bool

	// seq identifies the current query; results carrying another seq are stale
	seq int

	index    *logic.Index // static sources only
	binding  *adapters.Binding
	debounce *debounce.Scheduler
	blur     *debounce.Scheduler
	logger   *log.Logger
	styles   *views.Styles
}

// New creates an unmounted field from props
func New(props Props) *Model {
	props = props.normalize()
	id := uuid.NewString()

	l := props.Logger
	if l == nil {
		l = logger.Discard()
	}

	m := &Model{
		id:       id,
		props:    props,
		state:    QueryState{InputText: props.Value, CommittedValue: props.Value, HighlightedIndex: -1},
		binding:  adapters.NewBinding(props.Keys),
		debounce: debounce.New(id + "/debounce"),
		blur:     debounce.New(id + "/blur"),
		logger:   l.With("field", fieldName(props, id)),
		styles:   views.NewStyles(),
	}
	if cands, ok := source.Candidates(props.Source); ok {
		valid := validOnly(cands)
		if dropped := len(cands) - len(valid); dropped > 0 {
			m.logger.Debug("dropped candidates without a value", "count", dropped)
		}
		m.index = logic.NewIndex(valid)
	}
	return m
}

func fieldName(p Props, id string) string {
	if p.Label != "" {
		return p.Label
	}
	return id[:8]
}

func validOnly(cands []domain.Candidate) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Valid() {
			out = append(out, c)
		}
	}
	return out
}

// WithTick replaces the timer used for debounce and blur grace, for tests
func (m *Model) WithTick(tick debounce.TickFunc) *Model {
	m.debounce.WithTick(tick)
	m.blur.WithTick(tick)
	return m
}

// WithStyles sets the styles used by View
func (m *Model) WithStyles(styles *views.Styles) *Model {
	if styles != nil {
		m.styles = styles
	}
	return m
}

// Mount attaches a surface and pushes the full current state onto it
func (m *Model) Mount(s adapters.Surface) tea.Cmd {
	m.binding.Mount(s)
	m.binding.PushPlaceholder(m.props.Placeholder)
	m.binding.PushDisabled(m.props.Disabled)
	m.binding.PushValue(m.state.InputText)
	m.sync()
	if m.focused {
		return m.binding.Focus()
	}
	return nil
}

// Surface returns the mounted surface or nil
func (m *Model) Surface() adapters.Surface {
	return m.binding.Surface()
}

// ID returns the field instance id carried by its messages
func (m *Model) ID() string {
	return m.id
}

// Label returns the configured label
func (m *Model) Label() string {
	return m.props.Label
}

// Keys returns the key map the field reacts to
func (m *Model) Keys() types.KeyMap {
	return m.props.Keys
}

// State returns a copy of the query state
func (m *Model) State() QueryState {
	s := m.state
	s.Candidates = domain.CloneCandidates(m.state.Candidates)
	return s
}

// Status returns the dropdown render state
func (m *Model) Status() Status {
	return m.status
}

// Open reports whether the dropdown is visible
func (m *Model) Open() bool {
	return m.state.IsOpen
}

// Focused reports whether the field has focus
func (m *Model) Focused() bool {
	return m.focused
}

// Disabled reports whether input is ignored
func (m *Model) Disabled() bool {
	return m.props.Disabled
}

// Text returns the current input text
func (m *Model) Text() string {
	return m.state.InputText
}

// Value returns the committed value
func (m *Model) Value() string {
	return m.state.CommittedValue
}

// SetValue sets input text and committed value together and closes the dropdown.
// No callbacks fire.
func (m *Model) SetValue(text string) {
	m.state.InputText = text
	m.state.CommittedValue = text
	m.binding.PushValue(text)
	m.close()
}

// SetDisabled enables or disables the field; disabling closes the dropdown
func (m *Model) SetDisabled(disabled bool) {
	m.props.Disabled = disabled
	m.binding.PushDisabled(disabled)
	if disabled {
		m.blur.Cancel()
		m.close()
	}
}

// Focus focuses the surface and the field
func (m *Model) Focus() tea.Cmd {
	if m.unmounted || m.props.Disabled {
		return nil
	}
	cmd := m.binding.Focus()
	return tea.Batch(cmd, m.handleFocus(nil))
}

// Blur removes focus; the dropdown closes after the blur grace delay
func (m *Model) Blur() tea.Cmd {
	if m.unmounted {
		return nil
	}
	m.binding.Blur()
	return m.handleBlur(nil)
}

// Close discards the field: timers are cancelled, in-flight results are
// ignored and the surface is released.
func (m *Model) Close() {
	m.debounce.Cancel()
	m.blur.Cancel()
	m.seq++
	m.state = QueryState{HighlightedIndex: -1}
	m.status = Closed
	m.focused = false
	m.binding.PushOpen(false)
	m.binding.PushOptions(nil)
	m.binding.Unmount()
	m.unmounted = true
}

// View renders the label and the surface when it can render itself
func (m *Model) View() string {
	viewer, ok := m.binding.Surface().(interface{ View() string })
	if !ok {
		return ""
	}
	if m.props.Label == "" {
		return viewer.View()
	}
	label := m.styles.LabelStyle(m.focused).Render(m.props.Label)
	return lipgloss.JoinVertical(lipgloss.Left, label, viewer.View())
}

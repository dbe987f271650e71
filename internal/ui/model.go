package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"fieldkit/internal/config"
	"fieldkit/internal/domain"
	"fieldkit/internal/eventbus"
	"fieldkit/internal/logger"
	"fieldkit/internal/ui/adapters"
	"fieldkit/internal/ui/autocomplete"
	"fieldkit/internal/ui/fields"
	"fieldkit/internal/ui/input/types"
	"fieldkit/internal/ui/logic"
	"fieldkit/internal/ui/services/source"
	"fieldkit/internal/ui/views"
)

const (
	maxTraceLines = 12
	surfaceWidth  = 48
)

// traced lists the field events the trace panel shows
var traced = []eventbus.EventType{
	eventbus.EventInputChanged,
	eventbus.EventValueChanged,
	eventbus.EventCandidateSelected,
	eventbus.EventValuesChanged,
	eventbus.EventToggled,
	eventbus.EventFocusChanged,
	eventbus.EventFetchFailed,
}

// Model is the demo form
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *log.Logger
	styles *views.Styles

	name      *fields.TextField
	language  *autocomplete.Model
	pkg       *autocomplete.Model
	framework *fields.SingleSelect
	tools     *fields.MultiSelect
	notify    *fields.Toggle

	fields   []fields.Field
	surfaces map[string]*adapters.TextInputSurface // by field id
	focus    int
	initCmds []tea.Cmd

	// UI-specific state
	width       int
	height      int
	help        help.Model
	keys        formKeys
	trace       []string
	status      string
	inPagerMode bool // tracks if we're currently in pager mode

	helpOps *HelpOps
	program *tea.Program
}

// NewModel creates the demo form. bus may be nil, in which case field
// notifications go nowhere.
func NewModel(bus eventbus.EventBus, cfg *config.Config, data *DemoData, lg *log.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if lg == nil {
		lg = logger.Discard()
	}
	keys := types.DefaultKeyMap()
	m := &Model{
		bus:      bus,
		config:   cfg,
		logger:   lg,
		styles:   views.NewStyles(),
		surfaces: make(map[string]*adapters.TextInputSurface),
		help:     help.New(),
		keys:     newFormKeys(keys),
	}

	m.name = fields.NewTextField(fields.TextFieldProps{
		Label:       "Name",
		Placeholder: "your name",
		Keys:        keys,
		OnInput:     func(text string, _ tea.Msg) { m.publish(eventbus.InputChangedEvent{Field: "Name", Text: text}) },
		OnChange:    func(value string, _ tea.Msg) { m.publish(eventbus.ValueChangedEvent{Field: "Name", Value: value}) },
		OnFocus:     func(tea.Msg) { m.publish(eventbus.FocusChangedEvent{Field: "Name", Focused: true}) },
		OnBlur:      func(tea.Msg) { m.publish(eventbus.FocusChangedEvent{Field: "Name", Focused: false}) },
	})
	m.name.Mount(m.newSurface(m.name.ID()))

	langProps := m.autocompleteProps("Language", keys)
	langProps.Placeholder = "favourite language"
	langProps.Source = source.Static(data.Languages)
	langProps.Combobox = false
	m.language = autocomplete.New(langProps).WithStyles(m.styles)
	m.initCmds = append(m.initCmds, m.language.Mount(m.newSurface(m.language.ID())))

	pkgProps := m.autocompleteProps("Package", keys)
	pkgProps.Placeholder = "search packages"
	latency := time.Duration(cfg.Demo.PackageLatencyMs) * time.Millisecond
	pkgProps.Source = PackageSource(data.Packages, latency, cfg.Demo.CacheSize)
	m.pkg = autocomplete.New(pkgProps).WithStyles(m.styles)
	m.initCmds = append(m.initCmds, m.pkg.Mount(m.newSurface(m.pkg.ID())))

	m.framework = fields.NewSingleSelect(fields.SelectProps{
		Label:   "UI framework",
		Options: data.Frameworks,
		Sort:    cfg.SortMode(),
		Keys:    keys,
		OnFocus: func(tea.Msg) { m.publish(eventbus.FocusChangedEvent{Field: "UI framework", Focused: true}) },
		OnBlur:  func(tea.Msg) { m.publish(eventbus.FocusChangedEvent{Field: "UI framework", Focused: false}) },
	}, "bubbletea", func(value string, _ tea.Msg) {
		m.publish(eventbus.ValueChangedEvent{Field: "UI framework", Value: value})
	})

	m.tools = fields.NewMultiSelect(fields.SelectProps{
		Label:   "Tools",
		Options: data.Tools,
		Sort:    cfg.SortMode(),
		Keys:    keys,
		OnFocus: func(tea.Msg) { m.publish(eventbus.FocusChangedEvent{Field: "Tools", Focused: true}) },
		OnBlur:  func(tea.Msg) { m.publish(eventbus.FocusChangedEvent{Field: "Tools", Focused: false}) },
	}, []string{"gopls"}, func(values []string, _ tea.Msg) {
		m.publish(eventbus.ValuesChangedEvent{Field: "Tools", Values: values})
	})

	m.notify = fields.NewToggle(fields.ToggleProps{
		Label: "Notify me",
		Keys:  keys,
		OnChange: func(checked bool, _ tea.Msg) {
			m.publish(eventbus.ToggledEvent{Field: "Notify me", Checked: checked})
		},
	})

	m.fields = []fields.Field{m.name, m.language, m.pkg, m.framework, m.tools, m.notify}
	m.resize()
	m.layout()
	return m
}

// autocompleteProps starts from the configured defaults and routes every
// callback onto the bus
func (m *Model) autocompleteProps(label string, keys types.KeyMap) autocomplete.Props {
	p := m.config.AutocompleteProps()
	p.Label = label
	p.Keys = keys
	p.Logger = m.logger
	p.OnInput = func(text string, _ tea.Msg) { m.publish(eventbus.InputChangedEvent{Field: label, Text: text}) }
	p.OnChange = func(value string, _ tea.Msg) { m.publish(eventbus.ValueChangedEvent{Field: label, Value: value}) }
	p.OnSelect = func(c domain.Candidate) { m.publish(eventbus.CandidateSelectedEvent{Field: label, Candidate: c}) }
	p.OnFocus = func(tea.Msg) { m.publish(eventbus.FocusChangedEvent{Field: label, Focused: true}) }
	p.OnBlur = func(tea.Msg) { m.publish(eventbus.FocusChangedEvent{Field: label, Focused: false}) }
	p.OnError = func(err error) { m.publish(eventbus.FetchFailedEvent{Field: label, Err: err}) }
	return p
}

func (m *Model) newSurface(id string) *adapters.TextInputSurface {
	s := adapters.NewTextInputSurface(m.styles, surfaceWidth)
	m.surfaces[id] = s
	return s
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// Forward subscribes to every field event and hands it to send as an
// EventMsg, normally tea.Program.Send. The returned func unsubscribes.
func (m *Model) Forward(send func(tea.Msg)) func() {
	if m.bus == nil {
		return func() {}
	}
	unsubs := make([]func(), 0, len(traced))
	for _, t := range traced {
		unsubs = append(unsubs, m.bus.Subscribe(t, func(e eventbus.DomainEvent) {
			send(EventMsg{Event: e})
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Close releases the autocomplete fields
func (m *Model) Close() {
	m.language.Close()
	m.pkg.Close()
}

// Focused returns the field that has focus
func (m *Model) Focused() fields.Field {
	return m.fields[m.focus]
}

// Trace returns the event lines shown in the trace panel, oldest first
func (m *Model) Trace() []string {
	return append([]string(nil), m.trace...)
}

// Init mounts the surfaces and focuses the first field
func (m *Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{}, m.initCmds...)
	m.initCmds = nil
	cmds = append(cmds, m.fields[m.focus].Focus())
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.FocusMsg, tea.BlurMsg:
		cmd = m.fields[m.focus].Update(msg)

	case EventMsg:
		cmd = m.appendTrace(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed", "err", msg.err)
			cmd = m.setStatus(fmt.Sprintf("help unavailable: %v", msg.err))
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case clearStatusMsg:
		m.status = ""

	default:
		// mouse presses, debounce ticks and fetch results find their own field
		cmd = m.broadcast(msg)
	}

	m.layout()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		return m.fetchHelpPager(NewHelpRenderer(m.keys).RenderHelpContent())
	case key.Matches(msg, m.keys.Next):
		// an open dropdown closes on tab before focus moves on
		cmd := m.fields[m.focus].Update(msg)
		return tea.Batch(cmd, m.moveFocus(1))
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}
	return m.fields[m.focus].Update(msg)
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	blur := m.fields[m.focus].Blur()
	m.focus = logic.Cycle(m.focus, len(m.fields), delta)
	return tea.Batch(blur, m.fields[m.focus].Focus())
}

func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.fields))
	for _, f := range m.fields {
		cmds = append(cmds, f.Update(msg))
	}
	return tea.Batch(cmds...)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.helpOps == nil {
		return m.setStatus("help pager needs a running program")
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) appendTrace(e eventbus.DomainEvent) tea.Cmd {
	m.trace = append(m.trace, formatEvent(e))
	if len(m.trace) > maxTraceLines {
		m.trace = m.trace[len(m.trace)-maxTraceLines:]
	}
	if failed, ok := e.(eventbus.FetchFailedEvent); ok {
		return m.setStatus(fmt.Sprintf("%s: %v", failed.Field, failed.Err))
	}
	return nil
}

func formatEvent(e eventbus.DomainEvent) string {
	switch e := e.(type) {
	case eventbus.InputChangedEvent:
		return fmt.Sprintf("%s input %q", e.Field, e.Text)
	case eventbus.ValueChangedEvent:
		return fmt.Sprintf("%s change %q", e.Field, e.Value)
	case eventbus.CandidateSelectedEvent:
		return fmt.Sprintf("%s select %s", e.Field, e.Candidate.DisplayLabel())
	case eventbus.ValuesChangedEvent:
		return fmt.Sprintf("%s values [%s]", e.Field, strings.Join(e.Values, ", "))
	case eventbus.ToggledEvent:
		return fmt.Sprintf("%s toggled %t", e.Field, e.Checked)
	case eventbus.FocusChangedEvent:
		if e.Focused {
			return e.Field + " focus"
		}
		return e.Field + " blur"
	case eventbus.FetchFailedEvent:
		return fmt.Sprintf("%s fetch failed", e.Field)
	}
	return string(e.Type())
}

func (m *Model) resize() {
	w := surfaceWidth
	if m.width > 0 && m.width-6 < w {
		w = m.width - 6
	}
	for _, s := range m.surfaces {
		s.SetWidth(w)
	}
}

// layout records where every surface's input line lands on screen, so
// mouse presses can be mapped onto dropdown rows. It mirrors View.
func (m *Model) layout() {
	x := m.styles.Main.GetPaddingLeft()
	y := m.styles.Main.GetPaddingTop() + lipgloss.Height(m.title())
	for _, f := range m.fields {
		if s, ok := m.surfaces[f.ID()]; ok {
			offset := 0
			if f.Label() != "" {
				offset = 1
			}
			s.SetOrigin(x, y+offset)
		}
		y += lipgloss.Height(f.View()) + 1
	}
}

func (m *Model) title() string {
	return m.styles.Title.Render("fieldkit")
}

// View renders the form
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	rendered := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		rendered = append(rendered, f.View())
	}
	form := lipgloss.JoinVertical(lipgloss.Left, m.title(), strings.Join(rendered, "\n\n"))

	trace := m.renderTrace()
	var body string
	if m.width >= 100 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, form, "   ", trace)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, form, "", trace)
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.styles.StatusError.Render(m.status) + "\n" + footer
	}
	return m.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, body, "", footer))
}

func (m *Model) renderTrace() string {
	lines := m.trace
	if len(lines) == 0 {
		lines = []string{m.styles.Dim.Render("no events yet")}
	}
	header := m.styles.Label.Render("Events")
	return m.styles.Trace.Render(lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n")))
}

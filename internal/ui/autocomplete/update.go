package autocomplete

import (
	"context"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"fieldkit/internal/domain"
	"fieldkit/internal/ui/input/types"
	"fieldkit/internal/ui/logic"
	"fieldkit/internal/ui/services/debounce"
	"fieldkit/internal/ui/services/source"
)

// Update handles timer and fetch messages addressed to this field and relays
// everything else through the host binding.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.unmounted {
		return nil
	}

	switch msg := msg.(type) {
	case debounce.FireMsg:
		if cmd, ok := m.debounce.Handle(msg); ok {
			return cmd
		}
		cmd, _ := m.blur.Handle(msg)
		return cmd
	case ResultsMsg:
		if msg.ID == m.id {
			m.handleResults(msg)
		}
		return nil
	}

	events, cmd := m.binding.Relay(msg)
	cmds := []tea.Cmd{cmd}
	for _, ev := range events {
		cmds = append(cmds, m.HandleEvent(ev))
	}
	return tea.Batch(cmds...)
}

// HandleEvent applies one abstract event to the state machine
func (m *Model) HandleEvent(ev types.Event) tea.Cmd {
	if m.unmounted || m.props.Disabled {
		return nil
	}

	switch ev := ev.(type) {
	case types.InputEvent:
		return m.handleInput(ev)
	case types.KeyDownEvent:
		return m.handleKey(ev)
	case types.PointerSelectEvent:
		m.handlePointer(ev)
	case types.FocusEvent:
		return m.handleFocus(ev.Native)
	case types.BlurEvent:
		return m.handleBlur(ev.Native)
	}
	return nil
}

func (m *Model) handleInput(ev types.InputEvent) tea.Cmd {
	m.state.InputText = ev.Text
	if m.props.OnInput != nil {
		m.props.OnInput(ev.Text, ev.Native)
	}
	return m.refresh()
}

func (m *Model) handleKey(ev types.KeyDownEvent) tea.Cmd {
	switch ev.Key {
	case types.KeyArrowDown:
		if !m.state.IsOpen {
			if m.focused {
				return m.refresh()
			}
			return nil
		}
		m.moveHighlight(1)
	case types.KeyArrowUp:
		if m.state.IsOpen {
			m.moveHighlight(-1)
		}
	case types.KeyEnter:
		m.handleEnter(ev.Native)
	case types.KeyEscape:
		if m.state.IsOpen {
			m.close()
		}
	case types.KeyTab:
		m.close()
	}
	return nil
}

func (m *Model) moveHighlight(delta int) {
	if len(m.state.Candidates) == 0 {
		return
	}
	m.state.HighlightedIndex = logic.Cycle(m.state.HighlightedIndex, len(m.state.Candidates), delta)
	m.sync()
}

func (m *Model) handleEnter(native tea.Msg) {
	if c, ok := m.state.Highlighted(); ok && m.state.IsOpen {
		m.commit(c, native)
		return
	}
	if m.props.Combobox {
		m.commitText(m.state.InputText, native)
		return
	}
	if c, ok := m.exactMatch(m.state.InputText); ok {
		m.commit(c, native)
		return
	}
	m.close()
}

// exactMatch finds a candidate whose label or value equals text, ignoring case
func (m *Model) exactMatch(text string) (domain.Candidate, bool) {
	if text == "" {
		return domain.Candidate{}, false
	}
	pool := m.state.Candidates
	if m.index != nil {
		pool = m.index.Candidates()
	}
	folded := logic.Fold(text)
	for _, c := range pool {
		if logic.Fold(c.Value) == folded || logic.Fold(c.DisplayLabel()) == folded {
			return c, true
		}
	}
	return domain.Candidate{}, false
}

func (m *Model) handlePointer(ev types.PointerSelectEvent) {
	if !m.state.IsOpen || ev.Index < 0 || ev.Index >= len(m.state.Candidates) {
		return
	}
	m.state.HighlightedIndex = ev.Index
	m.commit(m.state.Candidates[ev.Index], ev.Native)
}

func (m *Model) handleFocus(native tea.Msg) tea.Cmd {
	// a blur followed by focus inside the grace period keeps the dropdown
	m.blur.Cancel()
	wasFocused := m.focused
	m.focused = true
	if m.props.OnFocus != nil && !wasFocused {
		m.props.OnFocus(native)
	}
	return nil
}

func (m *Model) handleBlur(native tea.Msg) tea.Cmd {
	wasFocused := m.focused
	m.focused = false
	if m.props.OnBlur != nil && wasFocused {
		m.props.OnBlur(native)
	}
	if !m.state.IsOpen {
		return nil
	}
	return m.blur.Schedule(m.props.blurGrace(), func() tea.Cmd {
		if !m.focused {
			m.close()
		}
		return nil
	})
}

func (m *Model) commit(c domain.Candidate, native tea.Msg) {
	m.state.CommittedValue = c.Value
	m.state.InputText = c.Value
	m.binding.PushValue(c.Value)
	m.close()
	m.logger.Debug("candidate selected", "value", c.Value)

	if m.props.OnSelect != nil {
		m.props.OnSelect(c)
	}
	if m.props.OnChange != nil {
		m.props.OnChange(c.Value, native)
	}
}

func (m *Model) commitText(text string, native tea.Msg) {
	m.state.CommittedValue = text
	m.close()
	if m.props.OnChange != nil {
		m.props.OnChange(text, native)
	}
}

// refresh recomputes candidates for the current text. Static sources are
// matched synchronously; function sources show a loading row and fetch after
// the debounce delay.
func (m *Model) refresh() tea.Cmd {
	m.seq++
	m.debounce.Cancel()

	text := m.state.InputText
	if !m.focused || utf8.RuneCountInString(text) < m.props.MinCharsToShow || m.props.Source == nil {
		m.close()
		return nil
	}

	if m.index != nil {
		m.apply(m.index.Match(text, m.props.Filter, m.props.MaxSuggestions))
		return nil
	}

	m.state.Candidates = nil
	m.state.HighlightedIndex = -1
	m.state.IsLoading = true
	m.state.IsOpen = true
	m.status = Loading
	m.sync()

	return m.debounce.Schedule(m.props.debounceDelay(), m.fetch)
}

// fetch reads the live state when the debounce fires
func (m *Model) fetch() tea.Cmd {
	id, seq, text, src := m.id, m.seq, m.state.InputText, m.props.Source
	return func() tea.Msg {
		cands, dropped, err := source.Resolve(context.Background(), src, text)
		return ResultsMsg{ID: id, Seq: seq, Text: text, Candidates: cands, Dropped: dropped, Err: err}
	}
}

func (m *Model) handleResults(msg ResultsMsg) {
	if msg.Seq != m.seq || msg.Text != m.state.InputText || m.status != Loading {
		m.logger.Debug("dropping stale candidates", "text", msg.Text, "current", m.state.InputText)
		return
	}
	if msg.Err != nil {
		m.logger.Warn("candidate fetch failed", "text", msg.Text, "err", msg.Err)
		if m.props.OnError != nil {
			m.props.OnError(msg.Err)
		}
		m.apply(nil)
		return
	}
	if msg.Dropped > 0 {
		m.logger.Debug("dropped candidates without a value", "count", msg.Dropped)
	}
	m.apply(logic.Truncate(msg.Candidates, m.props.MaxSuggestions))
}

// apply replaces the candidate list and opens the dropdown on it
func (m *Model) apply(cands []domain.Candidate) {
	m.state.Candidates = cands
	m.state.HighlightedIndex = -1
	m.state.IsLoading = false
	m.state.IsOpen = true
	if len(cands) == 0 {
		m.status = ShowingEmpty
	} else {
		m.status = ShowingResults
	}
	m.sync()
}

func (m *Model) close() {
	m.seq++
	m.debounce.Cancel()
	m.state.Candidates = nil
	m.state.HighlightedIndex = -1
	m.state.IsLoading = false
	m.state.IsOpen = false
	m.status = Closed
	m.sync()
}

// sync pushes open state and rows to the surface
func (m *Model) sync() {
	m.binding.PushOpen(m.state.IsOpen)
	m.binding.PushOptions(m.state.records(m.status))
}

package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldkit/internal/config"
	"fieldkit/internal/eventbus"
	"fieldkit/internal/logger"
	"fieldkit/internal/ui/autocomplete"
)

func newTestModel(t *testing.T, bus eventbus.EventBus) *Model {
	t.Helper()
	data, err := LoadDemoData()
	require.NoError(t, err)
	m := NewModel(bus, config.DefaultConfig(), data, logger.Discard())
	m.Init()
	return m
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLoadDemoData(t *testing.T) {
	data, err := LoadDemoData()
	require.NoError(t, err)

	assert.NotEmpty(t, data.Languages)
	assert.NotEmpty(t, data.Packages)
	assert.Equal(t, "go", data.Languages[0].Value)

	disabled := 0
	for _, o := range data.Frameworks {
		if o.Disabled {
			disabled++
		}
	}
	assert.Equal(t, 1, disabled)
}

func TestTabMovesFocus(t *testing.T) {
	m := newTestModel(t, nil)
	require.Equal(t, "Name", m.Focused().Label())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Language", m.Focused().Label())
	assert.True(t, m.language.Focused())

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "Notify me", m.Focused().Label(), "shift+tab wraps to the last field")
	assert.False(t, m.language.Focused())
}

func TestLanguageKeyboardSelection(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	typeText(m, "ja")
	require.Equal(t, autocomplete.ShowingResults, m.language.Status())
	state := m.language.State()
	require.Len(t, state.Candidates, 2)
	assert.Equal(t, "JavaScript", state.Candidates[0].Label)
	assert.Equal(t, "Java", state.Candidates[1].Label)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "javascript", m.language.Value())
	assert.False(t, m.language.Open())
}

func TestLanguageMouseSelection(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "ja")
	require.True(t, m.language.Open())

	// padding (1) + title with margin (2) + name field (2) + gap (1) + label (1)
	// puts the language input on line 7, its second suggestion on line 9
	m.Update(tea.MouseMsg{X: 4, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.Equal(t, "java", m.language.Value())
	assert.False(t, m.language.Open())
}

func TestTabClosesOpenDropdown(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, "go")
	require.True(t, m.language.Open())

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.language.Open())
	assert.Equal(t, "Package", m.Focused().Label())
}

func TestForwardFeedsTrace(t *testing.T) {
	bus := eventbus.New(logger.Discard())
	defer bus.Close()

	data, err := LoadDemoData()
	require.NoError(t, err)
	m := NewModel(bus, config.DefaultConfig(), data, logger.Discard())

	msgs := make(chan tea.Msg, 32)
	stop := m.Forward(func(msg tea.Msg) { msgs <- msg })
	defer stop()

	m.Init()
	typeText(m, "ok")

	want := []string{"Name focus", `Name input "o"`, `Name input "ok"`}
	for range want {
		select {
		case msg := <-msgs:
			m.Update(msg)
		case <-time.After(time.Second):
			t.Fatal("event not forwarded")
		}
	}
	assert.Equal(t, want, m.Trace())
	assert.Contains(t, m.View(), `Name input "ok"`)
}

func TestFetchFailureSetsStatus(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(EventMsg{Event: eventbus.FetchFailedEvent{Field: "Package", Err: errRegistryDown}})

	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "registry unavailable")

	m.Update(clearStatusMsg{})
	assert.NotContains(t, m.View(), "registry unavailable")
	assert.Equal(t, []string{"Package fetch failed"}, m.Trace())
}

func TestTraceIsBounded(t *testing.T) {
	m := newTestModel(t, nil)
	for i := 0; i < maxTraceLines+5; i++ {
		m.Update(EventMsg{Event: eventbus.ToggledEvent{Field: "Notify me", Checked: i%2 == 0}})
	}
	assert.Len(t, m.Trace(), maxTraceLines)
}

func TestHelpWithoutProgram(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	assert.Contains(t, m.View(), "help pager needs a running program")

	content := NewHelpRenderer(m.keys).RenderHelpContent()
	assert.Contains(t, content, "next suggestion")
	assert.Contains(t, content, "Autocomplete")
}

func TestPagerModeBlanksView(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())
	m.Update(resumeRenderingMsg{})
	assert.Contains(t, m.View(), "fieldkit")
}

func TestQuitClosesFields(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// closed fields ignore input
	m.language.Focus()
	m.language.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.False(t, m.language.Open())
}

func TestPackageSource(t *testing.T) {
	data, err := LoadDemoData()
	require.NoError(t, err)
	src := PackageSource(data.Packages, 0, 8)

	cands, err := src.Resolve(context.Background(), "lipgl")
	require.NoError(t, err)
	require.NotEmpty(t, cands)
	assert.Equal(t, "github.com/charmbracelet/lipgloss", cands[0].Value)

	_, err = src.Resolve(context.Background(), "!down")
	assert.True(t, errors.Is(err, errRegistryDown))
}

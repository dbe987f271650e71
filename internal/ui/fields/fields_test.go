package fields

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldkit/internal/domain"
	"fieldkit/internal/ui/adapters/surfacetest"
	"fieldkit/internal/ui/logic"
)

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
)

func frameworks() []domain.Option {
	return []domain.Option{
		{Value: "react", Label: "React"},
		{Value: "vue", Label: "Vue"},
		{Value: "legacy", Label: "Backbone", Disabled: true},
		{Value: "svelte", Label: "Svelte"},
	}
}

func TestTextFieldCallbacks(t *testing.T) {
	var inputs, changes []string
	f := NewTextField(TextFieldProps{
		Label:    "Name",
		OnInput:  func(text string, _ tea.Msg) { inputs = append(inputs, text) },
		OnChange: func(value string, _ tea.Msg) { changes = append(changes, value) },
	})
	s := surfacetest.New()
	f.Mount(s)
	f.Focus()

	f.Update(surfacetest.Type("a"))
	f.Update(surfacetest.Type("b"))
	assert.Equal(t, []string{"a", "ab"}, inputs)
	assert.Empty(t, changes)

	f.Update(keyEnter)
	assert.Equal(t, []string{"ab"}, changes)

	// blur without edits since the last commit does not fire again
	f.Blur()
	assert.Equal(t, []string{"ab"}, changes)

	f.Focus()
	f.Update(surfacetest.Type("c"))
	f.Blur()
	assert.Equal(t, []string{"ab", "abc"}, changes)
	assert.Equal(t, "abc", f.Value())
}

func TestTextFieldSetValueAndDisabled(t *testing.T) {
	f := NewTextField(TextFieldProps{Placeholder: "type here", Value: "init"})
	s := surfacetest.New()
	f.Mount(s)
	assert.Equal(t, "init", s.Text)
	assert.Equal(t, "type here", s.Placeholder)

	f.SetValue("next")
	assert.Equal(t, "next", s.Text)

	f.SetDisabled(true)
	assert.Nil(t, f.Focus())
	assert.False(t, f.Focused())
	assert.True(t, s.Disabled)
}

func TestSingleSelectSkipsDisabledAndWraps(t *testing.T) {
	var changes []string
	s := NewSingleSelect(SelectProps{Label: "Framework", Options: frameworks()}, "vue",
		func(v string, _ tea.Msg) { changes = append(changes, v) })
	s.Focus()

	require.Equal(t, 1, s.list.cursor())
	s.Update(keyDown)
	assert.Equal(t, 3, s.list.cursor(), "disabled option is skipped")

	s.Update(keyDown)
	assert.Equal(t, 0, s.list.cursor(), "wraps to the first option")

	s.Update(keyUp)
	s.Update(keyEnter)
	assert.Equal(t, []string{"svelte"}, changes)
	assert.Equal(t, "svelte", s.Value())
}

func TestSingleSelectIgnoresKeysWhenBlurred(t *testing.T) {
	changed := false
	s := NewSingleSelect(SelectProps{Options: frameworks()}, "", func(string, tea.Msg) { changed = true })

	s.Update(keyEnter)
	assert.False(t, changed)
	assert.Equal(t, "", s.Value())
}

func TestSingleSelectSorted(t *testing.T) {
	s := NewSingleSelect(SelectProps{Options: frameworks(), Sort: logic.SortByLabel}, "", nil)

	var labels []string
	for _, o := range s.list.options {
		labels = append(labels, o.Label)
	}
	assert.Equal(t, []string{"Backbone", "React", "Svelte", "Vue"}, labels)
}

func TestMultiSelectToggles(t *testing.T) {
	var reported [][]string
	m := NewMultiSelect(SelectProps{Label: "Tools", Options: frameworks()}, []string{"svelte", "unknown"},
		func(vs []string, _ tea.Msg) { reported = append(reported, vs) })
	assert.Equal(t, []string{"svelte"}, m.Values())

	m.Focus()
	m.Update(keySpace)
	m.Update(keyDown)
	m.Update(keySpace)

	assert.Equal(t, []string{"react", "vue", "svelte"}, m.Values(), "values follow option order")
	assert.Equal(t, "react,vue,svelte", m.Value())
	require.Len(t, reported, 2)

	m.Update(keySpace)
	assert.Equal(t, []string{"react", "svelte"}, m.Values())
	assert.Contains(t, m.View(), "[x]")
}

func TestToggle(t *testing.T) {
	var got []bool
	tg := NewToggle(ToggleProps{Label: "Notify", OnChange: func(c bool, _ tea.Msg) { got = append(got, c) }})

	tg.Update(keySpace)
	assert.Empty(t, got, "ignores keys without focus")

	tg.Focus()
	tg.Update(keySpace)
	tg.Update(keyEnter)
	assert.Equal(t, []bool{true, false}, got)
	assert.Equal(t, "false", tg.Value())
	assert.Contains(t, tg.View(), "off")
}

func TestToggleDisabled(t *testing.T) {
	tg := NewToggle(ToggleProps{Checked: true, Disabled: true})
	tg.Focus()
	tg.Update(keySpace)

	assert.True(t, tg.Checked())
	assert.False(t, tg.Focused())
}

package types

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNavigation(t *testing.T) {
	km := DefaultKeyMap()

	cases := []struct {
		msg  tea.KeyMsg
		want Key
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, KeyArrowDown},
		{tea.KeyMsg{Type: tea.KeyCtrlN}, KeyArrowDown},
		{tea.KeyMsg{Type: tea.KeyUp}, KeyArrowUp},
		{tea.KeyMsg{Type: tea.KeyEnter}, KeyEnter},
		{tea.KeyMsg{Type: tea.KeyEsc}, KeyEscape},
		{tea.KeyMsg{Type: tea.KeyTab}, KeyTab},
	}
	for _, tc := range cases {
		got, ok := km.Navigation(tc.msg)
		assert.True(t, ok, tc.msg.String())
		assert.Equal(t, tc.want, got, tc.msg.String())
	}

	_, ok := km.Navigation(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.False(t, ok, "letters are text, not navigation")
	_, ok = km.Navigation(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.False(t, ok, "space is text in a text field")
}

func TestEventsCarryOrigin(t *testing.T) {
	native := tea.KeyMsg{Type: tea.KeyEnter}
	var ev Event = KeyDownEvent{Key: KeyEnter, Native: native}

	assert.Equal(t, "keydown", ev.Type())
	assert.Equal(t, native, ev.Origin())
	assert.Equal(t, "Enter", KeyEnter.String())
}

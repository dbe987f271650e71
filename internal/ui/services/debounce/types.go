package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FireMsg is delivered when a scheduled delay expires. Owner identifies the
// scheduler and Tag the schedule call it belongs to.
type FireMsg struct {
	Owner string
	Tag   int
}

// Action is the work run when a delay expires. It should read live state
// rather than a snapshot taken at schedule time.
type Action func() tea.Cmd

// TickFunc arms a timer; tea.Tick in production
type TickFunc func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

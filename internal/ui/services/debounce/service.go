// Package debounce coalesces bursts of events into one delayed action.
// Timers are Bubble Tea ticks tagged with the schedule call that armed them;
// a tick whose tag is no longer current is ignored, which is how superseded
// actions are cancelled.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler owns at most one pending action
type Scheduler struct {
	owner   string
	tag     int
	pending bool
	action  Action
	tick    TickFunc
}

// New creates a scheduler whose messages carry owner
func New(owner string) *Scheduler {
	return &Scheduler{owner: owner, tick: tea.Tick}
}

// WithTick replaces the timer source, used by tests
func (s *Scheduler) WithTick(tick TickFunc) *Scheduler {
	if tick != nil {
		s.tick = tick
	}
	return s
}

// Owner returns the owner string carried by this scheduler's messages
func (s *Scheduler) Owner() string {
	return s.owner
}

// Schedule cancels any pending action and arms a new timer for action.
// A non-positive delay runs action right away and returns its command.
func (s *Scheduler) Schedule(delay time.Duration, action Action) tea.Cmd {
	s.Cancel()
	if delay <= 0 {
		if action == nil {
			return nil
		}
		return action()
	}

	s.pending = true
	s.action = action
	msg := FireMsg{Owner: s.owner, Tag: s.tag}
	return s.tick(delay, func(time.Time) tea.Msg {
		return msg
	})
}

// Cancel drops the pending action, if any
func (s *Scheduler) Cancel() {
	s.tag++
	s.pending = false
	s.action = nil
}

// Pending reports whether an action is armed
func (s *Scheduler) Pending() bool {
	return s.pending
}

// Handle runs the pending action when msg is its timer. The bool reports
// whether msg belonged to this scheduler at all; stale ticks are consumed
// without running anything.
func (s *Scheduler) Handle(msg FireMsg) (tea.Cmd, bool) {
	if msg.Owner != s.owner {
		return nil, false
	}
	if !s.pending || msg.Tag != s.tag {
		return nil, true
	}

	action := s.action
	s.pending = false
	s.action = nil
	if action == nil {
		return nil, true
	}
	return action(), true
}

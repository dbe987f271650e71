package types

import tea "github.com/charmbracelet/bubbletea"

// Key names a navigation key in surface-independent terms
type Key int

const (
	KeyNone Key = iota
	KeyArrowDown
	KeyArrowUp
	KeyEnter
	KeyEscape
	KeyTab
)

func (k Key) String() string {
	switch k {
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyTab:
		return "Tab"
	default:
		return "None"
	}
}

// Event is an abstract field event relayed from a surface.
// Native carries the originating Bubble Tea message for callbacks.
type Event interface {
	Type() string
	Origin() tea.Msg
}

// InputEvent reports that the surface text changed
type InputEvent struct {
	Text   string
	Native tea.Msg
}

func (e InputEvent) Type() string    { return "input" }
func (e InputEvent) Origin() tea.Msg { return e.Native }

// KeyDownEvent reports a navigation key
type KeyDownEvent struct {
	Key    Key
	Native tea.Msg
}

func (e KeyDownEvent) Type() string    { return "keydown" }
func (e KeyDownEvent) Origin() tea.Msg { return e.Native }

type FocusEvent struct {
	Native tea.Msg
}

func (e FocusEvent) Type() string    { return "focus" }
func (e FocusEvent) Origin() tea.Msg { return e.Native }

type BlurEvent struct {
	Native tea.Msg
}

func (e BlurEvent) Type() string    { return "blur" }
func (e BlurEvent) Origin() tea.Msg { return e.Native }

// PointerSelectEvent reports a click on the dropdown row at Index
type PointerSelectEvent struct {
	Index  int
	Native tea.Msg
}

func (e PointerSelectEvent) Type() string    { return "pointer_select" }
func (e PointerSelectEvent) Origin() tea.Msg { return e.Native }

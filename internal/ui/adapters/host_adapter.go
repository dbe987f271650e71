package adapters

import (
	tea "github.com/charmbracelet/bubbletea"

	"fieldkit/internal/domain"
	"fieldkit/internal/ui/input/types"
)

// Surface is the externally owned visual element a field drives: an input
// line plus a dropdown. Fields never draw it themselves.
type Surface interface {
	Value() string
	SetValue(text string)
	SetOpen(open bool)
	SetOptions(records []domain.OptionRecord)
	SetDisabled(disabled bool)
	SetPlaceholder(text string)
	Focus() tea.Cmd
	Blur()
	// Update hands a native message to the surface (editing, cursor blink)
	Update(msg tea.Msg) tea.Cmd
	// RowAt maps a screen cell to a rendered dropdown row
	RowAt(x, y int) (int, bool)
}

// Binding synchronizes field state onto at most one Surface and relays the
// surface's native messages back as abstract events. Every push is a no-op
// while nothing is mounted.
type Binding struct {
	surface Surface
	keys    types.KeyMap
}

// NewBinding creates an unmounted binding
func NewBinding(keys types.KeyMap) *Binding {
	return &Binding{keys: keys}
}

// Mount attaches s, replacing any previous surface
func (b *Binding) Mount(s Surface) {
	b.surface = s
}

// Unmount detaches the surface
func (b *Binding) Unmount() {
	b.surface = nil
}

// Mounted reports whether a surface is attached
func (b *Binding) Mounted() bool {
	return b.surface != nil
}

// Surface returns the mounted surface or nil
func (b *Binding) Surface() Surface {
	return b.surface
}

// Keys returns the key map used by Relay
func (b *Binding) Keys() types.KeyMap {
	return b.keys
}

func (b *Binding) PushValue(text string) {
	if b.surface == nil {
		return
	}
	if b.surface.Value() != text {
		b.surface.SetValue(text)
	}
}

func (b *Binding) PushOpen(open bool) {
	if b.surface != nil {
		b.surface.SetOpen(open)
	}
}

func (b *Binding) PushOptions(records []domain.OptionRecord) {
	if b.surface != nil {
		b.surface.SetOptions(records)
	}
}

func (b *Binding) PushDisabled(disabled bool) {
	if b.surface != nil {
		b.surface.SetDisabled(disabled)
	}
}

func (b *Binding) PushPlaceholder(text string) {
	if b.surface != nil {
		b.surface.SetPlaceholder(text)
	}
}

// Focus focuses the surface; the returned command starts its cursor
func (b *Binding) Focus() tea.Cmd {
	if b.surface == nil {
		return nil
	}
	return b.surface.Focus()
}

func (b *Binding) Blur() {
	if b.surface != nil {
		b.surface.Blur()
	}
}

// Relay translates a native message into abstract events. Keys that are not
// navigation keys go to the surface and yield an InputEvent when its text
// changed. Messages the binding does not understand are still forwarded so
// the surface can animate its cursor.
func (b *Binding) Relay(msg tea.Msg) ([]types.Event, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.FocusMsg:
		return []types.Event{types.FocusEvent{Native: msg}}, nil
	case tea.BlurMsg:
		return []types.Event{types.BlurEvent{Native: msg}}, nil
	case tea.KeyMsg:
		if k, ok := b.keys.Navigation(msg); ok {
			return []types.Event{types.KeyDownEvent{Key: k, Native: msg}}, nil
		}
		if b.surface == nil {
			return nil, nil
		}
		before := b.surface.Value()
		cmd := b.surface.Update(msg)
		if after := b.surface.Value(); after != before {
			return []types.Event{types.InputEvent{Text: after, Native: msg}}, cmd
		}
		return nil, cmd
	case tea.MouseMsg:
		if b.surface == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil, nil
		}
		if row, ok := b.surface.RowAt(msg.X, msg.Y); ok {
			return []types.Event{types.PointerSelectEvent{Index: row, Native: msg}}, nil
		}
		return nil, nil
	}

	if b.surface == nil {
		return nil, nil
	}
	return nil, b.surface.Update(msg)
}

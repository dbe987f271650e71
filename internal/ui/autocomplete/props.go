package autocomplete

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"fieldkit/internal/domain"
	"fieldkit/internal/ui/input/types"
	"fieldkit/internal/ui/logic"
	"fieldkit/internal/ui/services/source"
)

const (
	DefaultMaxSuggestions = 10
	DefaultMinCharsToShow = 1
	DefaultDebounceMs     = 300
	DefaultBlurGraceMs    = 150
)

// Props configures an autocomplete field
type Props struct {
	Placeholder string
	Label       string
	Value       string // initial value, also committed
	Disabled    bool
	Source      source.Source

	MaxSuggestions int
	MinCharsToShow int
	DebounceMs     int // 0 disables debouncing
	Filter         logic.Policy
	Combobox       bool // free text may be committed
	BlurGraceMs    int

	Keys   types.KeyMap
	Logger *log.Logger

	OnInput  func(text string, msg tea.Msg)
	OnChange func(value string, msg tea.Msg)
	OnSelect func(c domain.Candidate)
	OnFocus  func(msg tea.Msg)
	OnBlur   func(msg tea.Msg)
	OnError  func(err error)
}

// DefaultProps returns props with every documented default applied
func DefaultProps() Props {
	return Props{
		MaxSuggestions: DefaultMaxSuggestions,
		MinCharsToShow: DefaultMinCharsToShow,
		DebounceMs:     DefaultDebounceMs,
		Filter:         logic.PolicyContains,
		Combobox:       true,
		BlurGraceMs:    DefaultBlurGraceMs,
		Keys:           types.DefaultKeyMap(),
	}
}

// normalize replaces unusable values with defaults
func (p Props) normalize() Props {
	if p.MaxSuggestions <= 0 {
		p.MaxSuggestions = DefaultMaxSuggestions
	}
	if p.MinCharsToShow < 0 {
		p.MinCharsToShow = 0
	}
	if p.DebounceMs < 0 {
		p.DebounceMs = 0
	}
	if p.BlurGraceMs <= 0 {
		p.BlurGraceMs = DefaultBlurGraceMs
	}
	if p.Filter == "" {
		p.Filter = logic.PolicyContains
	}
	if !p.Keys.Accept.Enabled() {
		p.Keys = types.DefaultKeyMap()
	}
	return p
}

func (p Props) debounceDelay() time.Duration {
	return time.Duration(p.DebounceMs) * time.Millisecond
}

func (p Props) blurGrace() time.Duration {
	return time.Duration(p.BlurGraceMs) * time.Millisecond
}

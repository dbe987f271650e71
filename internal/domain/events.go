package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventInputChanged      EventType = "InputChanged"
	EventValueChanged      EventType = "ValueChanged"
	EventCandidateSelected EventType = "CandidateSelected"
	EventValuesChanged     EventType = "ValuesChanged"
	EventToggled           EventType = "Toggled"
	EventFocusChanged      EventType = "FocusChanged"
	EventFetchFailed       EventType = "FetchFailed"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// InputChangedEvent is emitted on every text-changing keystroke of a field
type InputChangedEvent struct {
	Field string
	Text  string
}

func (e InputChangedEvent) Type() EventType { return EventInputChanged }

// ValueChangedEvent is emitted when a field commits a value
type ValueChangedEvent struct {
	Field string
	Value string
}

func (e ValueChangedEvent) Type() EventType { return EventValueChanged }

// CandidateSelectedEvent is emitted when an autocomplete candidate is committed
type CandidateSelectedEvent struct {
	Field     string
	Candidate Candidate
}

func (e CandidateSelectedEvent) Type() EventType { return EventCandidateSelected }

// ValuesChangedEvent is emitted when a multi select changes its selection
type ValuesChangedEvent struct {
	Field  string
	Values []string
}

func (e ValuesChangedEvent) Type() EventType { return EventValuesChanged }

// ToggledEvent is emitted when a toggle flips
type ToggledEvent struct {
	Field   string
	Checked bool
}

func (e ToggledEvent) Type() EventType { return EventToggled }

// FocusChangedEvent is emitted when a field gains or loses focus
type FocusChangedEvent struct {
	Field   string
	Focused bool
}

func (e FocusChangedEvent) Type() EventType { return EventFocusChanged }

// FetchFailedEvent is emitted when a candidate source fails to resolve
type FetchFailedEvent struct {
	Field string
	Err   error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

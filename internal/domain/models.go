package domain

// Candidate represents one selectable suggestion
type Candidate struct {
	Value       string // unique key, committed on selection
	Label       string // display text
	Description string // optional detail shown after the label
}

// Valid reports whether the candidate satisfies the caller contract (non-empty value)
func (c Candidate) Valid() bool {
	return c.Value != ""
}

// Detail returns the secondary text shown next to the label.
// Falls back to the value when it differs from the label.
func (c Candidate) Detail() string {
	if c.Description != "" {
		return c.Description
	}
	if c.Value != c.DisplayLabel() {
		return c.Value
	}
	return ""
}

// DisplayLabel returns the label, or the value when the label is empty
func (c Candidate) DisplayLabel() string {
	if c.Label == "" {
		return c.Value
	}
	return c.Label
}

// Option represents a static choice of a select field
type Option struct {
	Value    string
	Label    string
	Disabled bool
}

// DisplayLabel returns the label, or the value when the label is empty
func (o Option) DisplayLabel() string {
	if o.Label == "" {
		return o.Value
	}
	return o.Label
}

// RecordKind distinguishes the mutually exclusive dropdown row kinds
type RecordKind int

const (
	RecordOption RecordKind = iota
	RecordLoading
	RecordEmpty
)

// OptionRecord is one renderable dropdown row pushed to a surface
type OptionRecord struct {
	Kind        RecordKind
	Value       string
	Label       string
	Description string
	Selected    bool // value equals the committed value
	Highlighted bool // keyboard/pointer highlight
	Disabled    bool
}

// CloneCandidates returns a copy that shares no backing array with the input
func CloneCandidates(in []Candidate) []Candidate {
	if len(in) == 0 {
		return nil
	}
	out := make([]Candidate, len(in))
	copy(out, in)
	return out
}

package autocomplete

import "fieldkit/internal/domain"

// Status is the dropdown render state; exactly one holds at a time
type Status int

const (
	Closed Status = iota
	Loading
	ShowingResults
	ShowingEmpty
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "Loading"
	case ShowingResults:
		return "ShowingResults"
	case ShowingEmpty:
		return "ShowingEmpty"
	default:
		return "Closed"
	}
}

// QueryState is the field's query and selection state
type QueryState struct {
	InputText        string
	Candidates       []domain.Candidate
	IsLoading        bool
	IsOpen           bool
	HighlightedIndex int // -1 = none
	CommittedValue   string
}

// Highlighted returns the highlighted candidate, if any
func (s QueryState) Highlighted() (domain.Candidate, bool) {
	if s.HighlightedIndex < 0 || s.HighlightedIndex >= len(s.Candidates) {
		return domain.Candidate{}, false
	}
	return s.Candidates[s.HighlightedIndex], true
}

// records turns the state into the rows a surface renders
func (s QueryState) records(status Status) []domain.OptionRecord {
	switch status {
	case Loading:
		return []domain.OptionRecord{{Kind: domain.RecordLoading}}
	case ShowingEmpty:
		return []domain.OptionRecord{{Kind: domain.RecordEmpty}}
	case ShowingResults:
		out := make([]domain.OptionRecord, len(s.Candidates))
		for i, c := range s.Candidates {
			out[i] = domain.OptionRecord{
				Kind:        domain.RecordOption,
				Value:       c.Value,
				Label:       c.DisplayLabel(),
				Description: c.Detail(),
				Selected:    c.Value == s.CommittedValue,
				Highlighted: i == s.HighlightedIndex,
			}
		}
		return out
	}
	return nil
}

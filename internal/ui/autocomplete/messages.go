package autocomplete

import "fieldkit/internal/domain"

// ResultsMsg carries a finished candidate fetch back into Update. ID, Seq and
// Text identify the request; a result that no longer matches is stale.
type ResultsMsg struct {
	ID         string
	Seq        int
	Text       string
	Candidates []domain.Candidate
	Dropped    int
	Err        error
}

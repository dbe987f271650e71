package source

import (
	"context"
	"errors"

	"fieldkit/internal/domain"
)

// ErrFetchFailed marks a candidate resolution that returned an error or panicked
var ErrFetchFailed = errors.New("candidate fetch failed")

// Source produces candidates for the current input text
type Source interface {
	Resolve(ctx context.Context, text string) ([]domain.Candidate, error)
}

// Static is a fixed candidate list. It ignores text; narrowing is left to the matcher.
type Static []domain.Candidate

// Resolve returns a copy of the full list
func (s Static) Resolve(context.Context, string) ([]domain.Candidate, error) {
	return domain.CloneCandidates(s), nil
}

// Func adapts a fetch function. The function is expected to filter by text itself.
type Func func(ctx context.Context, text string) ([]domain.Candidate, error)

// Resolve calls f
func (f Func) Resolve(ctx context.Context, text string) ([]domain.Candidate, error) {
	return f(ctx, text)
}

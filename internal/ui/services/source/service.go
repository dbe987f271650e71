// Package source normalizes static lists and fetch functions into one
// candidate-producing operation, plus decorators for fetch functions.
package source

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"fieldkit/internal/domain"
)

// DefaultCacheSize is used by Cached when size is not positive
const DefaultCacheSize = 128

// IsStatic reports whether src is a fixed list
func IsStatic(src Source) bool {
	switch src.(type) {
	case Static, *Static:
		return true
	}
	return false
}

// Candidates returns the list of a static source, or false for function sources
func Candidates(src Source) ([]domain.Candidate, bool) {
	switch s := src.(type) {
	case Static:
		return domain.CloneCandidates(s), true
	case *Static:
		if s == nil {
			return nil, true
		}
		return domain.CloneCandidates(*s), true
	}
	return nil, false
}

// Resolve is the catch boundary around a source. Errors and panics come back
// wrapped in ErrFetchFailed, and candidates without a value are dropped.
// The second return value is the number of dropped candidates.
func Resolve(ctx context.Context, src Source, text string) (cands []domain.Candidate, dropped int, err error) {
	if src == nil {
		return nil, 0, nil
	}
	defer func() {
		if r := recover(); r != nil {
			cands, dropped = nil, 0
			err = fmt.Errorf("%w: panic: %v", ErrFetchFailed, r)
		}
	}()

	got, err := src.Resolve(ctx, text)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	out := make([]domain.Candidate, 0, len(got))
	for _, c := range got {
		if !c.Valid() {
			dropped++
			continue
		}
		out = append(out, c)
	}
	return out, dropped, nil
}

type cached struct {
	src   Source
	cache *lru.Cache[string, []domain.Candidate]
}

// Cached remembers successful results per text in an LRU of the given size.
// Failed resolutions are not cached.
func Cached(src Source, size int) Source {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []domain.Candidate](size)
	if err != nil {
		// only reachable with a non-positive size
		panic(err)
	}
	return &cached{src: src, cache: cache}
}

func (c *cached) Resolve(ctx context.Context, text string) ([]domain.Candidate, error) {
	if hit, ok := c.cache.Get(text); ok {
		return domain.CloneCandidates(hit), nil
	}
	got, err := c.src.Resolve(ctx, text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(text, domain.CloneCandidates(got))
	return got, nil
}

type coalesced struct {
	src   Source
	group singleflight.Group
}

// Coalesced shares one underlying call between concurrent requests for the same text
func Coalesced(src Source) Source {
	return &coalesced{src: src}
}

func (c *coalesced) Resolve(ctx context.Context, text string) ([]domain.Candidate, error) {
	v, err, _ := c.group.Do(text, func() (interface{}, error) {
		return c.src.Resolve(ctx, text)
	})
	if err != nil {
		return nil, err
	}
	got, _ := v.([]domain.Candidate)
	return domain.CloneCandidates(got), nil
}

type delayed struct {
	src   Source
	delay time.Duration
}

// Delayed waits d before every resolution, returning early if ctx ends
func Delayed(src Source, d time.Duration) Source {
	return &delayed{src: src, delay: d}
}

func (d *delayed) Resolve(ctx context.Context, text string) ([]domain.Candidate, error) {
	if d.delay > 0 {
		timer := time.NewTimer(d.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return d.src.Resolve(ctx, text)
}

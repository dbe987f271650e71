package source

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldkit/internal/domain"
)

func TestStaticResolveReturnsCopy(t *testing.T) {
	list := Static{{Value: "go", Label: "Go"}, {Value: "rust", Label: "Rust"}}

	got, dropped, err := Resolve(context.Background(), list, "ignored")
	require.NoError(t, err)
	assert.Zero(t, dropped)
	require.Len(t, got, 2)

	got[0].Label = "changed"
	assert.Equal(t, "Go", list[0].Label)
	assert.True(t, IsStatic(list))
	assert.True(t, IsStatic(&list))
}

func TestFuncSourceIsNotStatic(t *testing.T) {
	src := Func(func(context.Context, string) ([]domain.Candidate, error) { return nil, nil })
	assert.False(t, IsStatic(src))

	_, ok := Candidates(src)
	assert.False(t, ok)
}

func TestResolvePassesText(t *testing.T) {
	var seen string
	src := Func(func(_ context.Context, text string) ([]domain.Candidate, error) {
		seen = text
		return []domain.Candidate{{Value: text}}, nil
	})

	got, _, err := Resolve(context.Background(), src, "re")
	require.NoError(t, err)
	assert.Equal(t, "re", seen)
	assert.Equal(t, "re", got[0].Value)
}

func TestResolveWrapsErrors(t *testing.T) {
	boom := errors.New("backend down")
	src := Func(func(context.Context, string) ([]domain.Candidate, error) { return nil, boom })

	got, _, err := Resolve(context.Background(), src, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestResolveRecoversPanics(t *testing.T) {
	src := Func(func(context.Context, string) ([]domain.Candidate, error) { panic("nil map") })

	got, _, err := Resolve(context.Background(), src, "x")
	require.ErrorIs(t, err, ErrFetchFailed)
	assert.Contains(t, err.Error(), "nil map")
	assert.Nil(t, got)
}

func TestResolveDropsMalformedCandidates(t *testing.T) {
	list := Static{{Value: "a"}, {Label: "no value"}, {Value: "b"}}

	got, dropped, err := Resolve(context.Background(), list, "")
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []domain.Candidate{{Value: "a"}, {Value: "b"}}, got)
}

func TestResolveNilSource(t *testing.T) {
	got, _, err := Resolve(context.Background(), nil, "x")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func countingSource(calls *int32, err error) Func {
	return func(_ context.Context, text string) ([]domain.Candidate, error) {
		atomic.AddInt32(calls, 1)
		if err != nil {
			return nil, err
		}
		return []domain.Candidate{{Value: text + "-1"}, {Value: text + "-2"}}, nil
	}
}

func TestCachedCallsUnderlyingOncePerText(t *testing.T) {
	var calls int32
	src := Cached(countingSource(&calls, nil), 4)

	for i := 0; i < 3; i++ {
		got, err := src.Resolve(context.Background(), "go")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	}
	_, err := src.Resolve(context.Background(), "rs")
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCachedSkipsFailures(t *testing.T) {
	var calls int32
	src := Cached(countingSource(&calls, errors.New("flaky")), 4)

	_, err := src.Resolve(context.Background(), "go")
	require.Error(t, err)
	_, err = src.Resolve(context.Background(), "go")
	require.Error(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCachedHitsAreCopies(t *testing.T) {
	var calls int32
	src := Cached(countingSource(&calls, nil), 4)

	first, err := src.Resolve(context.Background(), "go")
	require.NoError(t, err)
	first[0].Value = "mutated"

	second, err := src.Resolve(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, "go-1", second[0].Value)
}

func TestCoalescedSharesInFlightCall(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	src := Coalesced(Func(func(_ context.Context, text string) ([]domain.Candidate, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []domain.Candidate{{Value: text}}, nil
	}))

	var wg sync.WaitGroup
	results := make([][]domain.Candidate, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := src.Resolve(context.Background(), "go")
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, []domain.Candidate{{Value: "go"}}, r)
	}
}

func TestDelayedHonoursContext(t *testing.T) {
	var calls int32
	src := Delayed(countingSource(&calls, nil), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Resolve(ctx, "go")
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestDelayedWaits(t *testing.T) {
	var calls int32
	src := Delayed(countingSource(&calls, nil), 20*time.Millisecond)

	start := time.Now()
	got, err := src.Resolve(context.Background(), "go")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

package sharedstate

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGetMissingReturnsErrNotFound(t *testing.T) {
	store := NewLocal()
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalSetThenGetRoundTrips(t *testing.T) {
	store := NewLocal()
	ctx := context.Background()
	want := Session{Size: 3, Puzzle: []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, NumMoves: 2}

	require.NoError(t, store.Set(ctx, "board", want))
	got, err := store.Get(ctx, "board")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocalSwapAppliesFunctionAndPersists(t *testing.T) {
	store := NewLocal()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "board", Session{NumMoves: 1}))

	updated, err := store.Swap(ctx, "board", func(s Session) Session {
		s.NumMoves++
		return s
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.NumMoves)

	got, err := store.Get(ctx, "board")
	require.NoError(t, err)
	assert.Equal(t, 2, got.NumMoves)
}

func TestLocalSwapIsAtomicUnderConcurrentCallers(t *testing.T) {
	store := NewLocal()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "board", Session{NumMoves: 0}))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Swap(ctx, "board", func(s Session) Session {
				s.NumMoves++
				return s
			})
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, "board")
	require.NoError(t, err)
	assert.Equal(t, 100, got.NumMoves)
}

func TestLocalLockSerializesCallers(t *testing.T) {
	store := NewLocal()
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := store.Lock(ctx, "session-1", 0)
			require.NoError(t, err)
			defer unlock(ctx)
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

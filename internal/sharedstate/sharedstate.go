// Package sharedstate holds the puzzle session that the HTTP façade and the
// auto-solve driver both read and mutate: the current board, its size, the
// move counter and the running "is a solve in progress" flag. It is the Go
// counterpart of the Python original's module-level globals
// (original_source/app.py: puzzle_state, puzzle_size, is_solving, num_moves,
// thinking_time), generalized into an interface so a single process can run
// against either an in-memory store or a Redis-backed one shared across
// processes.
package sharedstate

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no session exists for a key.
var ErrNotFound = errors.New("sharedstate: session not found")

// Session is the puzzle state shared between the HTTP façade and the
// driver, keyed by session ID so one server can host more than one board.
type Session struct {
	Size         int     `json:"size"`
	Puzzle       []int   `json:"puzzle"`
	NumMoves     int     `json:"num_moves"`
	ThinkingTime float64 `json:"thinking_time"`
	Solving      bool    `json:"solving"`
}

// Store is the contract the HTTP façade and driver depend on. Implementations
// must make Swap atomic per key: the driver and a concurrent /api/move call
// race to update the same session, and lost updates would silently corrupt
// the board (§4.11).
type Store interface {
	Get(ctx context.Context, key string) (Session, error)
	Set(ctx context.Context, key string, s Session) error
	// Swap atomically applies fn to the current session and persists the
	// result, returning the updated session. fn must be pure and may be
	// invoked more than once under contention.
	Swap(ctx context.Context, key string, fn func(Session) Session) (Session, error)
	// Lock acquires a distributed mutual-exclusion lock on key, returning an
	// Unlock func. Local's Lock never fails; Redis's may, under contention
	// or backend unavailability.
	Lock(ctx context.Context, key string, ttl time.Duration) (unlock func(context.Context) error, err error)
}

// Package driver runs the auto-solve loop that repeatedly calls npuzzle.Solve
// against a shared session and streams each step back to subscribers. It
// repurposes the teacher's Stepper (pdrpinto-astar/stepper.go) — a
// step-by-step orchestrator sitting on top of a single search — into an
// orchestrator sitting on top of repeated, budgeted searches, matching
// original_source/app.py:run_solver's "solve a chunk, step through it, loop
// if partial" shape.
package driver

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdrpinto/npuzzle"
	"github.com/pdrpinto/npuzzle/internal/obslog"
	"github.com/pdrpinto/npuzzle/internal/sharedstate"
)

// Event is one emitted step of an auto-solve run, mirroring the fields the
// Python original sent over its "solver_update"/"solver_complete"
// Socket.IO events.
type Event struct {
	Puzzle       []int   `json:"puzzle"`
	Size         int     `json:"size"`
	Step         int     `json:"step"`
	TotalSteps   int     `json:"total_steps"`
	NumMoves     int     `json:"num_moves"`
	ThinkingTime float64 `json:"thinking_time"`
	Solved       bool    `json:"solved"`
	Message      string  `json:"message,omitempty"`
}

// Driver owns no session state itself; every read and write goes through a
// sharedstate.Store so more than one process can observe the run.
type Driver struct {
	store sharedstate.Store
	log   zerolog.Logger
}

// New returns a Driver reading and writing sessions through store.
func New(store sharedstate.Store) *Driver {
	return &Driver{store: store, log: obslog.For("driver")}
}

// Options configures one Run call.
type Options struct {
	MaxExpansions int
	BatchSize     int
	EnableUpdate  bool
	StepDelay     time.Duration
}

// Run drives session key until the puzzle is solved, the caller stops it
// (via ctx cancellation or by flipping Session.Solving to false through the
// store — the same cooperative stop original_source/app.py's is_solving
// flag implements), or a Solve call makes no progress (an unsolved path of
// length 1), whether or not EnableUpdate is set. Each emitted step is sent
// on events; Run closes events before returning.
func (d *Driver) Run(ctx context.Context, key string, opts Options, events chan<- Event) {
	defer close(events)

	for {
		session, err := d.store.Get(ctx, key)
		if err != nil {
			d.log.Error().Err(err).Str("key", key).Msg("auto-solve: load session")
			return
		}
		if !session.Solving {
			return
		}

		start := npuzzle.NewState(session.Puzzle)
		start1 := time.Now()
		path, solved := npuzzle.Solve(start, session.Size, opts.MaxExpansions, opts.BatchSize, opts.EnableUpdate)
		elapsed := time.Since(start1).Seconds()

		// A length-1, unsolved path means this call expanded its whole
		// budget without advancing past the start state at all. Stop
		// unconditionally: solveWithStore builds a fresh heuristicStore per
		// call (it does not persist across Solve calls, by design — see
		// SPEC_FULL.md §9), so re-running enableUpdate against the exact
		// same start state would repeat this identical no-progress result
		// forever instead of ever tightening anything.
		if len(path) <= 1 && !solved {
			d.stop(ctx, key)
			events <- Event{Message: "no progress possible (partial or unsolvable)"}
			return
		}

		for idx, state := range path {
			session, err := d.store.Get(ctx, key)
			if err != nil || !session.Solving {
				return
			}

			isLast := idx == len(path)-1
			updated, err := d.store.Swap(ctx, key, func(s sharedstate.Session) sharedstate.Session {
				s.Puzzle = state.Tiles(s.Size)
				s.NumMoves++
				s.ThinkingTime += elapsed / float64(len(path))
				if isLast && solved {
					s.Solving = false
				}
				return s
			})
			if err != nil {
				d.log.Error().Err(err).Str("key", key).Msg("auto-solve: persist step")
				return
			}

			events <- Event{
				Puzzle:       updated.Puzzle,
				Size:         updated.Size,
				Step:         idx,
				TotalSteps:   len(path),
				NumMoves:     updated.NumMoves,
				ThinkingTime: updated.ThinkingTime,
				Solved:       isLast && solved,
			}

			if isLast && solved {
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(opts.StepDelay):
			}
		}

		if solved {
			return
		}
	}
}

func (d *Driver) stop(ctx context.Context, key string) {
	_, err := d.store.Swap(ctx, key, func(s sharedstate.Session) sharedstate.Session {
		s.Solving = false
		return s
	})
	if err != nil {
		d.log.Error().Err(err).Str("key", key).Msg("auto-solve: stop")
	}
}

// Package npuzzle implements an A* search engine for the N×N sliding-tile
// puzzle, augmented with an online heuristic-repair rule ("father's rule")
// that tightens the admissible Manhattan-distance heuristic as the search
// discovers more of the state space.
//
// The package exposes a single entry point, Solve, which runs a bounded
// search from an initial board and returns either a full solution path or
// the best-by-heuristic partial path reached within the expansion budget.
// Callers that need anytime behaviour — solving puzzles whose full
// shortest-path search would exceed memory — invoke Solve repeatedly,
// feeding the tail of one call's partial path in as the next call's
// initial state.
package npuzzle

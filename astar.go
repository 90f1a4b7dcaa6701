package npuzzle

import "github.com/pdrpinto/npuzzle/internal/pathutil"

// Solve runs a budgeted A* search for the N×N sliding puzzle starting from
// initial, returning either a full solution path (solved=true) or the
// best-by-heuristic partial path discovered within maxExpansions
// (solved=false).
//
// batchSize and enableUpdate control the father's-rule updater (§4.5): when
// enableUpdate is true, the updater runs every batchSize expansions and
// tightens h on the states the search has seen so far, preserving
// admissibility. batchSize is ignored when enableUpdate is false.
//
// Solve owns all of its working state; nothing it builds outlives the
// call, and it performs no internal parallelism (see the concurrency
// notes in SPEC_FULL.md §5).
func Solve(initial State, n, maxExpansions, batchSize int, enableUpdate bool) (path []State, solved bool) {
	path, solved, _ = solveWithStore(initial, n, maxExpansions, batchSize, enableUpdate)
	return path, solved
}

// solveWithStore is Solve's actual implementation; it also returns the
// heuristic store so tests can inspect the final h-values without
// re-running the search (the public Solve discards it, per spec.md §3:
// heuristic memoization does not persist across solve calls).
func solveWithStore(initial State, n, maxExpansions, batchSize int, enableUpdate bool) (path []State, solved bool, store *heuristicStore) {
	if IsGoal(initial, n) {
		return []State{initial}, true, nil
	}

	store = newHeuristicStore(n)
	open := newOpenSet()
	closed := newClosedSet()

	g := map[State]int{initial: 0}
	parent := map[State]State{}
	lastF := map[State]int{}

	hInit := store.get(initial)
	lastF[initial] = hInit
	open.push(hInit, initial)

	bestH := hInit
	bestState := initial

	expansions := 0

	for {
		s, fPop, ok := open.pop()
		if !ok {
			return pathutil.Reconstruct(parent, bestState, initial), false, store
		}

		if f, known := lastF[s]; !known || f != fPop || closed.has(s) {
			continue
		}
		closed.mark(s)

		hCur := store.get(s)
		if hCur < bestH {
			bestH, bestState = hCur, s
		}

		if expansions >= maxExpansions {
			return pathutil.Reconstruct(parent, bestState, initial), false, store
		}
		expansions++

		if IsGoal(s, n) {
			return pathutil.Reconstruct(parent, s, initial), true, store
		}

		for _, nb := range Neighbours(s, n) {
			if !store.known(nb) {
				store.get(nb)
			}
			gNew := g[s] + 1
			if gOld, known := g[nb]; !known || gNew < gOld {
				g[nb] = gNew
				parent[nb] = s
				f := gNew + store.get(nb)
				lastF[nb] = f
				open.push(f, nb)
			}
		}

		if enableUpdate && expansions > 0 && expansions%batchSize == 0 {
			runFathersRule(n, store, closed)
			for _, discovered := range store.states() {
				gd, known := g[discovered]
				if !known {
					continue
				}
				want := gd + store.get(discovered)
				if lastF[discovered] != want {
					lastF[discovered] = want
					open.push(want, discovered)
				}
			}
		}
	}
}

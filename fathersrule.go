package npuzzle

import "math"

// runFathersRule propagates heuristic raises across every state the
// current solve call has discovered, to a fixed point. It is the batched
// form of fathersRuleOnce described in spec.md §4.5: seed a work queue
// with every discovered state, apply the single-state rule, and on any
// change enqueue the changed state's known neighbours for re-evaluation,
// until the queue drains.
//
// runFathersRule mutates store (heuristic raises) and closed (eviction of
// re-expandable states). It does not touch lastF: the caller's re-queue
// pass afterwards recomputes gd+store.get(s) for every discovered state
// and pushes a fresh heap entry wherever that now disagrees with the
// still-stale lastF, which is the only thing that gets a raised state
// back into the open set. If runFathersRule refreshed lastF itself, that
// comparison would always agree and every raised state would silently
// drop from the frontier.
func runFathersRule(n int, store *heuristicStore, closed *closedSet) {
	queue := store.states()
	queued := make(map[State]bool, len(queue))
	for _, s := range queue {
		queued[s] = true
	}

	for i := 0; i < len(queue); i++ {
		s := queue[i]
		queued[s] = false

		if !fathersRuleOnce(s, n, store) {
			continue
		}

		if closed.has(s) {
			closed.remove(s)
		}

		for _, nb := range Neighbours(s, n) {
			if store.known(nb) && !queued[nb] {
				queue = append(queue, nb)
				queued[nb] = true
			}
		}
	}
}

// fathersRuleOnce applies the single-state father's rule to s: if every
// neighbour's heuristic is at least h[s]+1, then h[s] may be safely raised
// to one more than the smallest neighbour heuristic without losing
// admissibility (every legal move changes the true distance to goal by
// exactly 1). Returns whether h[s] was strictly raised.
func fathersRuleOnce(s State, n int, store *heuristicStore) bool {
	// The goal's true distance is 0 whatever its neighbours' h-values, so
	// the rule never applies to it.
	if IsGoal(s, n) {
		return false
	}
	h := store.get(s)
	neighbours := Neighbours(s, n)

	minNeighbour := math.MaxInt
	allAboveH := true
	for _, nb := range neighbours {
		var nh int
		if store.known(nb) {
			nh = store.get(nb)
		} else {
			nh = manhattan(nb, n)
		}
		if nh < minNeighbour {
			minNeighbour = nh
		}
		if nh < h+1 {
			allAboveH = false
		}
	}

	if !allAboveH {
		return false
	}
	return store.raise(s, maxInt(h, minNeighbour+1))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

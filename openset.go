package npuzzle

import "container/heap"

// openEntry is a single heap entry: a candidate state at a given f-value.
// The open set may hold several stale entries for the same state; the
// consumer discards an entry on pop if it no longer matches the state's
// current lastF witness, per §4.3.
type openEntry struct {
	state State
	f     int
	index int
}

// openHeap is a container/heap.Interface min-heap keyed on f, adapted from
// the teacher's PriorityQueue. Unlike the teacher's generic queue this one
// does not support Fix-in-place: the search loop never decreases an
// entry's priority directly, it pushes a fresh entry and lets the stale
// one lapse, matching the lazy-invalidation design the spec calls for.
type openHeap []*openEntry

func (h openHeap) Len() int            { return len(h) }
func (h openHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *openHeap) Push(x any)         { e := x.(*openEntry); e.index = len(*h); *h = append(*h, e) }
func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// openSet is the A* frontier: a min-heap on f with push/pop. empty reports
// whether the heap holds no entries at all; stale entries count as entries.
type openSet struct {
	heap openHeap
}

func newOpenSet() *openSet {
	os := &openSet{}
	heap.Init(&os.heap)
	return os
}

func (os *openSet) push(f int, s State) {
	heap.Push(&os.heap, &openEntry{state: s, f: f})
}

// pop removes and returns the lowest-f entry, or ok=false if empty.
func (os *openSet) pop() (State, int, bool) {
	if os.heap.Len() == 0 {
		return "", 0, false
	}
	e := heap.Pop(&os.heap).(*openEntry)
	return e.state, e.f, true
}

func (os *openSet) empty() bool {
	return os.heap.Len() == 0
}

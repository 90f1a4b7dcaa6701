package npuzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveInitialAlreadyGoal(t *testing.T) {
	g := Goal(3)
	path, solved := Solve(g, 3, 1000, 10, false)
	require.True(t, solved)
	assert.Equal(t, []State{g}, path)
}

func TestSolveOneMoveFromGoal(t *testing.T) {
	initial := NewState([]int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	path, solved := Solve(initial, 3, 100, 10, false)
	require.True(t, solved)
	require.Len(t, path, 2)
	assert.Equal(t, Goal(3), path[len(path)-1])
}

func TestSolveThreeMovesFromGoal(t *testing.T) {
	initial := NewState([]int{1, 2, 3, 4, 6, 0, 7, 5, 8})
	path, solved := Solve(initial, 3, 5000, 10, false)
	require.True(t, solved)
	assert.Equal(t, Goal(3), path[len(path)-1])
	assert.Equal(t, 4, len(path)) // 3 slides => 4 states
}

func TestSolvePathBeginsWithInitialState(t *testing.T) {
	initial := NewState([]int{1, 2, 3, 4, 6, 0, 7, 5, 8})
	path, _ := Solve(initial, 3, 5000, 10, false)
	assert.Equal(t, initial, path[0])
}

func TestSolveConsecutivePairsDifferByOneSlide(t *testing.T) {
	initial := NewState([]int{1, 2, 3, 4, 6, 0, 7, 5, 8})
	path, solved := Solve(initial, 3, 5000, 10, false)
	require.True(t, solved)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1].Tiles(3), path[i].Tiles(3)
		diffs, blankInvolved := 0, false
		for k := range a {
			if a[k] != b[k] {
				diffs++
				if a[k] == 0 || b[k] == 0 {
					blankInvolved = true
				}
			}
		}
		assert.Equal(t, 2, diffs)
		assert.True(t, blankInvolved)
	}
}

func TestSolveBudgetOneExpandsAtMostOneState(t *testing.T) {
	initial := NewState([]int{1, 2, 3, 4, 6, 0, 7, 5, 8})
	path, solved := Solve(initial, 3, 1, 10, false)
	assert.LessOrEqual(t, len(path), 2)
	if solved {
		// only possible if initial or a neighbour was the goal
		assert.True(t, IsGoal(path[len(path)-1], 3))
	}
}

func TestSolvePartialReturnHasLowerOrEqualManhattan(t *testing.T) {
	initial := NewState([]int{
		15, 10, 0, 11,
		9, 5, 2, 1,
		3, 6, 7, 14,
		4, 13, 8, 12,
	})
	path, solved := Solve(initial, 4, 5000, 10, false)
	if !solved {
		last := path[len(path)-1]
		assert.LessOrEqual(t, manhattan(last, 4), manhattan(initial, 4))
	}
}

func TestSolveWithUpdateNeverLowersHeuristicAndStrengthensSome(t *testing.T) {
	initial := NewState([]int{
		15, 10, 0, 11,
		9, 5, 2, 1,
		3, 6, 7, 14,
		4, 13, 8, 12,
	})

	path, _, store := solveWithStore(initial, 4, 50000, 50, true)
	require.NotEmpty(t, path)
	require.NotNil(t, store)

	raisedAny := false
	for _, s := range store.states() {
		h := store.get(s)
		base := manhattan(s, 4)
		assert.GreaterOrEqual(t, h, base, "h must not drop below its Manhattan baseline: %v", s.Tiles(4))
		if h > base {
			raisedAny = true
		}
	}
	assert.True(t, raisedAny, "expected the updater to strengthen at least one state's heuristic")
}

func TestSolveNoProgressOnMinimalBudgetIsDetectable(t *testing.T) {
	initial := NewState([]int{
		15, 10, 0, 11,
		9, 5, 2, 1,
		3, 6, 7, 14,
		4, 13, 8, 12,
	})
	path, solved := Solve(initial, 4, 1, 10, false)
	assert.False(t, solved)
	assert.LessOrEqual(t, len(path), 2)
}

func TestSolveTwoByTwoReachableStatesSolveWithinSixMoves(t *testing.T) {
	goal := Goal(2)
	// BFS a handful of states reachable from the goal; any such state is
	// solvable by construction and the 2x2 puzzle's diameter is small.
	type frontierEntry struct {
		state State
		depth int
	}
	seen := map[State]bool{goal: true}
	queue := []frontierEntry{{goal, 0}}
	var reachable []frontierEntry
	for i := 0; i < len(queue) && len(reachable) < 8; i++ {
		cur := queue[i]
		reachable = append(reachable, cur)
		for _, nb := range Neighbours(cur.state, 2) {
			if !seen[nb] {
				seen[nb] = true
				queue = append(queue, frontierEntry{nb, cur.depth + 1})
			}
		}
	}

	for _, entry := range reachable {
		path, solved := Solve(entry.state, 2, 1000, 10, false)
		require.True(t, solved)
		assert.LessOrEqual(t, len(path)-1, 6, "state %v took more than 6 moves", entry.state.Tiles(2))
	}
}

func TestSolveGoalReturnsImmediatelyForAnyBudget(t *testing.T) {
	g := Goal(4)
	for _, k := range []int{0, 1, 100} {
		path, solved := Solve(g, 4, k, 1, k%2 == 0)
		require.True(t, solved)
		assert.Equal(t, []State{g}, path)
	}
}

package npuzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	tiles := []int{1, 2, 3, 4, 5, 6, 7, 8, 0}
	s := NewState(tiles)
	assert.Equal(t, tiles, s.Tiles(3))
}

func TestGoalIsSolvedBoard(t *testing.T) {
	g := Goal(3)
	require.True(t, IsGoal(g, 3))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, g.Tiles(3))
}

func TestNeighboursOrderAndCount(t *testing.T) {
	// blank in the center of a 3x3 board: all four directions are legal.
	center := NewState([]int{1, 2, 3, 4, 0, 6, 7, 8, 5})
	nbs := Neighbours(center, 3)
	require.Len(t, nbs, 4)

	// up: swap blank(idx 4) with idx 1
	assert.Equal(t, []int{1, 0, 3, 4, 2, 6, 7, 8, 5}, nbs[0].Tiles(3))
	// down: swap blank with idx 7
	assert.Equal(t, []int{1, 2, 3, 4, 8, 6, 7, 0, 5}, nbs[1].Tiles(3))
	// left: swap blank with idx 3
	assert.Equal(t, []int{1, 2, 3, 0, 4, 6, 7, 8, 5}, nbs[2].Tiles(3))
	// right: swap blank with idx 5
	assert.Equal(t, []int{1, 2, 3, 4, 6, 0, 7, 8, 5}, nbs[3].Tiles(3))
}

func TestNeighboursCornerHasTwo(t *testing.T) {
	corner := NewState([]int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	nbs := Neighbours(corner, 3)
	assert.Len(t, nbs, 2)
}

func TestNeighboursDifferInExactlyTwoPositions(t *testing.T) {
	start := NewState([]int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	for _, nb := range Neighbours(start, 3) {
		a, b := start.Tiles(3), nb.Tiles(3)
		diffs := 0
		blankInvolved := false
		for i := range a {
			if a[i] != b[i] {
				diffs++
				if a[i] == 0 || b[i] == 0 {
					blankInvolved = true
				}
			}
		}
		assert.Equal(t, 2, diffs)
		assert.True(t, blankInvolved)
	}
}

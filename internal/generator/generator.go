// Package generator ports the Python original's solvability check and
// random puzzle generator (original_source/app.py:is_solvable,
// generate_solvable_puzzle) to Go.
package generator

import "math/rand"

// IsSolvable reports whether a flattened N×N puzzle (0 denotes the blank)
// is solvable, using the classic inversion-count parity rule:
//
//   - N odd: solvable iff the inversion count is even.
//   - N even: solvable iff (blank's row from the bottom, 1-based, is even)
//     differs in parity from the inversion count — i.e. exactly one of the
//     two is odd.
func IsSolvable(puzzle []int, n int) bool {
	inversions := countInversions(puzzle)
	blankIndex := indexOf(puzzle, 0)
	blankRowFromTop := blankIndex / n
	blankRowFromBottom := n - blankRowFromTop

	if n%2 == 1 {
		return inversions%2 == 0
	}
	return (blankRowFromBottom%2 == 0) != (inversions%2 == 0)
}

func countInversions(puzzle []int) int {
	nonBlank := make([]int, 0, len(puzzle))
	for _, v := range puzzle {
		if v != 0 {
			nonBlank = append(nonBlank, v)
		}
	}
	inversions := 0
	for i := range nonBlank {
		for j := i + 1; j < len(nonBlank); j++ {
			if nonBlank[i] > nonBlank[j] {
				inversions++
			}
		}
	}
	return inversions
}

func indexOf(puzzle []int, v int) int {
	for i, x := range puzzle {
		if x == v {
			return i
		}
	}
	return -1
}

// GenerateSolvable returns a random solvable permutation of 0..n²-1 for an
// N×N board, shuffling with math/rand until IsSolvable accepts the result
// (mirrors the Python original's rejection-sampling loop).
func GenerateSolvable(n int, rng *rand.Rand) []int {
	puzzle := make([]int, n*n)
	for i := range puzzle {
		puzzle[i] = i
	}
	for {
		rng.Shuffle(len(puzzle), func(i, j int) {
			puzzle[i], puzzle[j] = puzzle[j], puzzle[i]
		})
		if IsSolvable(puzzle, n) {
			return append([]int(nil), puzzle...)
		}
	}
}

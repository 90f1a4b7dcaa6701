// Package pathutil reconstructs a path from a parent-link map, kept close
// to the teacher's internal.ReconstructPath: walk backwards from an end
// node to the node with no parent, then reverse.
package pathutil

// Reconstruct rebuilds a path from cameFrom, starting at current and
// walking parent links back to start. When the chain reaches start, the
// result begins with start; if current == start or current has no parent,
// the result is just [current]; if the chain ends before start, the result
// begins with the last state reached instead.
func Reconstruct[T comparable](cameFrom map[T]T, current, start T) []T {
	path := []T{current}
	for current != start {
		previous, exists := cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previous)
		current = previous
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

package hex

// MaxPathLength caps the number of steps FindPath will take
const MaxPathLength = 50

// FindPath walks from one hex toward another, one step at a time, always
// choosing the unblocked neighbor closest to the target.
//
// This is a local greedy walk, not a shortest path search: it never
// backtracks or revisits a hex and may detour around obstacles. Sidesteps
// that keep the same distance are allowed so the walk can slip around a
// single blocker. When every open neighbor is farther away than the current
// hex, or the path reaches MaxPathLength, the steps taken so far are
// returned. The starting hex is never part of the path.
func FindPath(from, to CubeCoord, isBlocked BlockedFunc) []CubeCoord {
	path := []CubeCoord{}
	if from == to {
		return path
	}
	if Distance(from, to) <= 1 {
		if isBlocked.blocked(to) {
			return path
		}
		return append(path, to)
	}

	visited := NewSet(from)
	current := from
	for current != to && len(path) < MaxPathLength {
		best, found := closestNeighbor(current, to, visited, isBlocked)
		if !found || Distance(best, to) > Distance(current, to) {
			break
		}
		path = append(path, best)
		visited.Add(best)
		current = best
	}

	return path
}

// IsComplete reports whether the path reaches to from from
func IsComplete(from, to CubeCoord, path []CubeCoord) bool {
	if from == to {
		return true
	}
	return len(path) > 0 && path[len(path)-1] == to
}

func closestNeighbor(current, to CubeCoord, visited Set, isBlocked BlockedFunc) (CubeCoord, bool) {
	var best CubeCoord
	bestDistance := -1
	for _, neighbor := range current.Neighbors() {
		if visited.Contains(neighbor) || isBlocked.blocked(neighbor) {
			continue
		}
		d := Distance(neighbor, to)
		if bestDistance < 0 || d < bestDistance {
			best = neighbor
			bestDistance = d
		}
	}
	return best, bestDistance >= 0
}

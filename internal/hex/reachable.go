package hex

// Reachable returns every hex reachable from start in at most maxSteps
// steps without entering a blocked hex.
//
// The start hex is always part of the result, even when it is itself
// blocked or maxSteps is zero. Blocked hexes are never expanded, but
// unblocked hexes behind them are still found through other routes.
func Reachable(start CubeCoord, maxSteps int, isBlocked BlockedFunc) Set {
	visited := NewSet(start)
	if maxSteps <= 0 {
		return visited
	}

	frontier := []CubeCoord{start}
	for step := 0; step < maxSteps && len(frontier) > 0; step++ {
		next := make([]CubeCoord, 0, len(frontier)*2)
		for _, current := range frontier {
			for _, neighbor := range current.Neighbors() {
				if visited.Contains(neighbor) || isBlocked.blocked(neighbor) {
					continue
				}
				visited.Add(neighbor)
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	return visited
}

// ReachableCount is the size of an unblocked reachable set for n steps
func ReachableCount(n int) int {
	if n <= 0 {
		return 1
	}
	return 1 + 3*n*(n+1)
}

// Package tsp — greedy Nearest-Neighbor tour construction.
//
// NearestNeighbor builds an initial visiting order: from the current node,
// among unvisited nodes pick the one with minimum distance in the current
// node's matrix row; mark it visited, advance, repeat until all n nodes are
// visited.
//
// Contracts:
//   - Deterministic: on ties the LOWEST index wins (first-occurrence argmin).
//     This tie-break is part of the contract — downstream tours depend on it.
//   - start is clamped: out-of-range values fall back to 0, never an error.
//   - n==0 yields an empty route; n==1 yields a single-element route.
//
// Complexity: O(n²) time, O(n) space.
package tsp

import "github.com/katalvlaran/tourplan/distmat"

// NearestNeighbor returns a permutation of 0..n-1 starting at the resolved
// start index.
func NearestNeighbor(D *distmat.Dense, start int) ([]int, error) {
	if D == nil {
		return nil, ErrNilMatrix
	}
	if D.Rows() != D.Cols() {
		return nil, ErrNonSquare
	}

	n := D.Rows()
	if n == 0 {
		return []int{}, nil
	}

	// Clamp: out-of-range start falls back to 0.
	if start < 0 || start >= n {
		start = 0
	}

	var (
		route   = make([]int, 0, n)
		visited = make([]bool, n)
		current = start
		row     []float64
		err     error
		step    int
		j       int
		next    int
		best    float64
	)

	route = append(route, start)
	visited[start] = true

	for step = 1; step < n; step++ {
		row, err = D.Row(current)
		if err != nil {
			return nil, err
		}

		// First-occurrence argmin over unvisited candidates: strict "<" keeps
		// the earliest (lowest-index) minimum.
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if next == -1 || row[j] < best {
				next = j
				best = row[j]
			}
		}

		route = append(route, next)
		visited[next] = true
		current = next
	}

	return route, nil
}

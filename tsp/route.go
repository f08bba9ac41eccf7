// Package tsp — route utilities operating purely on index sequences.
//
// Provided helpers:
//   - ValidRouteIndices: boolean permutation predicate over {0..n-1}.
//   - CopyRoute: independent shallow copy of a route slice.
//   - reverseSegmentInPlace: in-place segment reversal (2-opt core).
//
// Design:
//   - No logging, no panics on user input; the predicate reports rather
//     than raises — callers decide whether a false result is fatal.
//   - O(n) time for every helper; in-place mutation avoids allocations.
package tsp

// ValidRouteIndices reports whether route is an exact permutation of 0..n-1:
// length n, every index in range, no duplicates. It never errors and never
// panics; n == 0 with an empty route is a valid (empty) permutation.
//
// Complexity: O(n) time, O(n) space for the marker slice.
func ValidRouteIndices(route []int, n int) bool {
	if n < 0 || len(route) != n {
		return false
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = route[i]
		if v < 0 || v >= n {
			return false
		}
		if seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// CopyRoute returns an independent copy of the input route slice.
// A nil input yields nil.
//
// Complexity: O(n) time, O(n) space.
func CopyRoute(route []int) []int {
	if route == nil {
		return nil
	}
	out := make([]int, len(route))
	copy(out, route)

	return out
}

// reverseSegmentInPlace reverses the inclusive segment route[i..k] in place.
// This is the primitive applied on every accepted 2-opt move; the caller
// guarantees 0 <= i <= k < len(route).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegmentInPlace(route []int, i, k int) {
	for i < k {
		route[i], route[k] = route[k], route[i]
		i++
		k--
	}
}

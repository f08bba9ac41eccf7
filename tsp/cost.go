// Package tsp — length utilities shared by the constructor and optimizer.
//
// These helpers are intentionally minimal and side-effect free.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Stable summation: results rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity:
//   - O(n) time for a route of length n, O(1) extra space.
package tsp

import (
	"math"

	"github.com/katalvlaran/tourplan/distmat"
)

// roundScale controls final length stabilization precision (1e-9).
// Matrix entries are already rounded at build time; rounding the sums too
// keeps incremental and from-scratch computations in agreement.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// RouteLength sums D[route[i], route[i+1]] over consecutive pairs; when
// closed is true it adds the return edge D[route[last], route[0]].
//
// Contract:
//   - Routes shorter than 2 have length 0 by definition (no edges).
//   - Every index must lie in [0..n); violations map to ErrBadRoute.
//   - D must be non-nil and square.
//
// Complexity: O(len(route)).
func RouteLength(D *distmat.Dense, route []int, closed bool) (float64, error) {
	if D == nil {
		return 0, ErrNilMatrix
	}
	if D.Rows() != D.Cols() {
		return 0, ErrNonSquare
	}
	if len(route) < 2 {
		return 0, nil
	}

	var (
		n   = D.Rows()
		sum float64
		i   int
		u   int
		v   int
		w   float64
		err error
	)
	for i = 0; i+1 < len(route); i++ {
		u = route[i]
		v = route[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrBadRoute
		}
		w, err = D.At(u, v)
		if err != nil {
			return 0, ErrBadRoute
		}
		sum += w
	}

	if closed {
		u = route[len(route)-1]
		v = route[0]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrBadRoute
		}
		w, err = D.At(u, v)
		if err != nil {
			return 0, ErrBadRoute
		}
		sum += w
	}

	return round1e9(sum), nil
}

// EdgeLengths returns the n-1 consecutive leg lengths of an open route:
// out[i] = D[route[i], route[i+1]]. Routes shorter than 2 yield an empty
// slice.
//
// Complexity: O(len(route)) time and space.
func EdgeLengths(D *distmat.Dense, route []int) ([]float64, error) {
	if D == nil {
		return nil, ErrNilMatrix
	}
	if D.Rows() != D.Cols() {
		return nil, ErrNonSquare
	}
	if len(route) < 2 {
		return []float64{}, nil
	}

	var (
		n   = D.Rows()
		out = make([]float64, len(route)-1)
		i   int
		u   int
		v   int
		w   float64
		err error
	)
	for i = 0; i+1 < len(route); i++ {
		u = route[i]
		v = route[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, ErrBadRoute
		}
		w, err = D.At(u, v)
		if err != nil {
			return nil, ErrBadRoute
		}
		out[i] = w
	}

	return out, nil
}

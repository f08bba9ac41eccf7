// Package distmat - non-raising matrix sanity checks.
//
// Validate is a boolean predicate, not an error source: callers are expected
// to check a supplied matrix before trusting it and decide themselves
// whether a false result is fatal. It never panics and never allocates.
package distmat

import "math"

// DefaultTolerance is the absolute tolerance used for the diagonal,
// symmetry, and negativity checks when callers have no better value.
const DefaultTolerance = 1e-6

// Validate reports whether D is a sane distance matrix:
//   - non-nil and square,
//   - |D[i][i]| <= tol on the whole diagonal,
//   - |D[i][j] - D[j][i]| <= tol for every pair (symmetry within tolerance),
//   - no entry below -tol, no NaN anywhere.
//
// A 0×0 matrix is valid (the empty point set).
//
// Complexity: O(n²) time, O(1) space.
func Validate(D *Dense, tol float64) bool {
	if D == nil || D.r != D.c {
		return false
	}
	if tol < 0 {
		tol = 0
	}

	var (
		n        = D.r
		i, j     int
		aij, aji float64
		abs      float64
	)

	// Diagonal: a_ii ≈ 0 within tol, finite.
	for i = 0; i < n; i++ {
		aij = D.data[i*n+i]
		if math.IsNaN(aij) {
			return false
		}
		abs = aij
		if abs < 0 {
			abs = -abs
		}
		if abs > tol {
			return false
		}
	}

	// Off-diagonal scan: negativity, NaN, and symmetry over the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij = D.data[i*n+j]
			aji = D.data[j*n+i]
			if math.IsNaN(aij) || math.IsNaN(aji) {
				return false
			}
			if aij < -tol || aji < -tol {
				return false
			}
			abs = aij - aji
			if abs < 0 {
				abs = -abs
			}
			if abs > tol {
				return false
			}
		}
	}

	return true
}

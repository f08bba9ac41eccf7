// Package tsp_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that already lives in
// focused test files.
package tsp_test

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/katalvlaran/tourplan/distmat"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny matches tsp.DefaultEps (1e-9): the standard acceptance floor.
	epsTiny = 1e-9

	// epsLoose is a relaxed tolerance for occasional noisy geometric comparisons.
	epsLoose = 1e-6

	// startV is the canonical start index used across tests.
	startV = 0

	// timeTiny is a tiny wall-clock budget used to exercise deadline behavior.
	timeTiny = 1 * time.Millisecond

	// circleN is the default instance size for circle-based workload tests.
	circleN = 120
)

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions, numeric closeness)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices (length & values).
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustFloatClose asserts absolute closeness of two float64 values.
func mustFloatClose(t *testing.T, got, want, abs float64) {
	t.Helper()
	if math.Abs(got-want) > abs {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (abs=%.1e)", got, want, abs)
	}
}

// -----------------------------------------------------------------------------
// Geometric generators
// -----------------------------------------------------------------------------

// euclid builds a symmetric Dense metric from 2D points.
func euclid(t *testing.T, pts [][2]float64) *distmat.Dense {
	t.Helper()
	ps := make([]distmat.Point, len(pts))
	var i int
	for i = 0; i < len(pts); i++ {
		ps[i] = distmat.Point{pts[i][0], pts[i][1]}
	}
	D, err := distmat.Build(ps)
	if err != nil {
		t.Fatalf("distmat.Build failed: %v", err)
	}

	return D
}

// unitSquarePts are the canonical four corners used by the fixed scenarios:
// NN from 0 visits them in order and 2-opt finds nothing to improve.
func unitSquarePts() [][2]float64 {
	return [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// circlePts places n points uniformly on the unit circle; the optimal tour
// walks the boundary, so any crossing NN leaves is 2-opt-reachable work.
func circlePts(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var (
		i     int
		theta float64
	)
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(theta), math.Sin(theta)}
	}

	return pts
}

// fromRows wraps distmat.FromRows with a fatal on error.
func fromRows(t *testing.T, rows [][]float64) *distmat.Dense {
	t.Helper()
	D, err := distmat.FromRows(rows)
	if err != nil {
		t.Fatalf("distmat.FromRows failed: %v", err)
	}

	return D
}

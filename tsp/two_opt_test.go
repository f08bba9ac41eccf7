// Package tsp_test exercises the 2-opt local search: the restart policy's
// observable effects, monotonicity, deadline behavior, progress reporting,
// and sink isolation.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tourplan/tsp"
)

// runOpts returns DefaultOptions tuned for direct TwoOpt invocations.
func runOpts() tsp.Options {
	o := tsp.DefaultOptions()
	o.Eps = epsTiny

	return o
}

func TestTwoOpt_UnitSquareAlreadyOptimal(t *testing.T) {
	D := euclid(t, unitSquarePts())
	in := []int{0, 1, 2, 3}

	route, open, err := tsp.TwoOpt(D, in, runOpts())
	if err != nil {
		t.Fatalf("TwoOpt failed: %v", err)
	}
	mustEqualInts(t, route, in)
	mustFloatClose(t, open, 3.0, epsLoose)

	closed, err := tsp.RouteLength(D, route, true)
	if err != nil {
		t.Fatalf("RouteLength failed: %v", err)
	}
	mustFloatClose(t, closed, 4.0, epsLoose)
}

// TestTwoOpt_RemovesCrossing feeds a deliberately crossed square tour;
// one reversal uncrosses it.
func TestTwoOpt_RemovesCrossing(t *testing.T) {
	D := euclid(t, unitSquarePts())
	crossed := []int{0, 2, 1, 3} // both diagonals used

	route, open, err := tsp.TwoOpt(D, crossed, runOpts())
	if err != nil {
		t.Fatalf("TwoOpt failed: %v", err)
	}

	closed, err := tsp.RouteLength(D, route, true)
	if err != nil {
		t.Fatalf("RouteLength failed: %v", err)
	}
	mustFloatClose(t, closed, 4.0, epsLoose)

	inOpen, err := tsp.RouteLength(D, crossed, false)
	if err != nil {
		t.Fatalf("RouteLength failed: %v", err)
	}
	if open > inOpen {
		t.Fatalf("2-opt increased open length: %v -> %v", inOpen, open)
	}
	if !tsp.ValidRouteIndices(route, 4) {
		t.Fatalf("output %v is not a permutation", route)
	}
}

func TestTwoOpt_NeverIncreasesOpenLength(t *testing.T) {
	D := euclid(t, circlePts(31))
	// A scrambled but fixed permutation; plenty of crossings.
	in := make([]int, 31)
	for i := 0; i < 31; i++ {
		in[i] = (i * 17) % 31 // 17 is coprime with 31, so this is a permutation
	}

	before, err := tsp.RouteLength(D, in, false)
	if err != nil {
		t.Fatalf("RouteLength failed: %v", err)
	}

	route, after, err := tsp.TwoOpt(D, in, runOpts())
	if err != nil {
		t.Fatalf("TwoOpt failed: %v", err)
	}
	if after > before {
		t.Fatalf("open length increased: %v -> %v", before, after)
	}
	if !tsp.ValidRouteIndices(route, 31) {
		t.Fatalf("output %v is not a permutation", route)
	}
}

func TestTwoOpt_InputRouteNotMutated(t *testing.T) {
	D := euclid(t, unitSquarePts())
	in := []int{0, 2, 1, 3}
	snapshot := tsp.CopyRoute(in)

	_, _, err := tsp.TwoOpt(D, in, runOpts())
	if err != nil {
		t.Fatalf("TwoOpt failed: %v", err)
	}
	mustEqualInts(t, in, snapshot)
}

func TestTwoOpt_Deterministic(t *testing.T) {
	D := euclid(t, circlePts(19))
	in := make([]int, 19)
	for i := 0; i < 19; i++ {
		in[i] = (i * 7) % 19
	}

	first, firstOpen, err := tsp.TwoOpt(D, in, runOpts())
	if err != nil {
		t.Fatalf("TwoOpt failed: %v", err)
	}

	Repeat(t, 5, func(t *testing.T) {
		again, againOpen, err2 := tsp.TwoOpt(D, in, runOpts())
		if err2 != nil {
			t.Fatalf("repeat run failed: %v", err2)
		}
		mustEqualInts(t, again, first)
		mustFloatClose(t, againOpen, firstOpen, epsTiny)
	})
}

// TestTwoOpt_ZeroTimeBudget verifies that TimeLimit == 0 is an empty budget,
// not "unlimited": the input comes back unchanged after the first check.
func TestTwoOpt_ZeroTimeBudget(t *testing.T) {
	D := euclid(t, unitSquarePts())
	crossed := []int{0, 2, 1, 3}

	o := runOpts()
	o.TimeLimit = 0

	route, open, err := tsp.TwoOpt(D, crossed, o)
	if err != nil {
		t.Fatalf("TwoOpt failed: %v", err)
	}
	mustEqualInts(t, route, crossed)

	want, err := tsp.RouteLength(D, crossed, false)
	if err != nil {
		t.Fatalf("RouteLength failed: %v", err)
	}
	mustFloatClose(t, open, want, epsTiny)
}

func TestTwoOpt_TinyTimeBudgetStillValid(t *testing.T) {
	D := euclid(t, circlePts(circleN))
	in := make([]int, circleN)
	for i := 0; i < circleN; i++ {
		in[i] = (i * 49) % circleN // 49 is coprime with 120
	}

	o := runOpts()
	o.TimeLimit = timeTiny

	route, _, err := tsp.TwoOpt(D, in, o)
	if err != nil {
		t.Fatalf("TwoOpt under tiny budget failed: %v", err)
	}
	if !tsp.ValidRouteIndices(route, circleN) {
		t.Fatalf("deadline return left an invalid route")
	}
}

func TestTwoOpt_MaxItersBoundsScans(t *testing.T) {
	D := euclid(t, circlePts(25))
	in := make([]int, 25)
	for i := 0; i < 25; i++ {
		in[i] = (i * 7) % 25
	}

	o := runOpts()
	o.MaxIters = 1 // a single double scan: at most one accepted move

	route, open, err := tsp.TwoOpt(D, in, o)
	if err != nil {
		t.Fatalf("TwoOpt failed: %v", err)
	}
	before, err := tsp.RouteLength(D, in, false)
	if err != nil {
		t.Fatalf("RouteLength failed: %v", err)
	}
	if open > before {
		t.Fatalf("open length increased under MaxIters=1: %v -> %v", before, open)
	}
	if !tsp.ValidRouteIndices(route, 25) {
		t.Fatalf("output %v is not a permutation", route)
	}
}

// TestTwoOpt_ProgressPerAcceptedMove verifies one snapshot per accepted move,
// with consistent open/closed lengths on each.
func TestTwoOpt_ProgressPerAcceptedMove(t *testing.T) {
	D := euclid(t, circlePts(12))
	in := make([]int, 12)
	for i := 0; i < 12; i++ {
		in[i] = (i * 5) % 12
	}

	var snapshots []tsp.Progress
	o := runOpts()
	o.Sink = tsp.ProgressFunc(func(p tsp.Progress) { snapshots = append(snapshots, p) })

	_, _, err := tsp.TwoOpt(D, in, o)
	if err != nil {
		t.Fatalf("TwoOpt failed: %v", err)
	}
	if len(snapshots) == 0 {
		t.Fatalf("expected at least one accepted move on a scrambled circle")
	}

	prev := -1.0
	for k, p := range snapshots {
		if !tsp.ValidRouteIndices(p.Route, 12) {
			t.Fatalf("snapshot %d carries invalid route %v", k, p.Route)
		}
		want, err2 := tsp.RouteLength(D, p.Route, true)
		if err2 != nil {
			t.Fatalf("RouteLength failed: %v", err2)
		}
		mustFloatClose(t, p.ClosedLength, want, epsLoose)
		if prev >= 0 && p.ClosedLength > prev+epsTiny {
			t.Fatalf("closed length rose between snapshots %d and %d", k-1, k)
		}
		prev = p.ClosedLength
	}
}

// TestTwoOpt_PanickingSinkIsIsolated: a sink blowing up must not abort the
// search or corrupt the result.
func TestTwoOpt_PanickingSinkIsIsolated(t *testing.T) {
	D := euclid(t, circlePts(10))
	in := make([]int, 10)
	for i := 0; i < 10; i++ {
		in[i] = (i * 3) % 10
	}

	o := runOpts()
	o.Sink = tsp.ProgressFunc(func(tsp.Progress) { panic("sink exploded") })

	route, open, err := tsp.TwoOpt(D, in, o)
	if err != nil {
		t.Fatalf("TwoOpt aborted on sink panic: %v", err)
	}
	if !tsp.ValidRouteIndices(route, 10) {
		t.Fatalf("output %v is not a permutation", route)
	}

	recomputed, err := tsp.RouteLength(D, route, false)
	if err != nil {
		t.Fatalf("RouteLength failed: %v", err)
	}
	mustFloatClose(t, open, recomputed, epsLoose)
}

// TestTwoOpt_IncrementalLengthMatchesRecompute pins the incremental
// closed-length accounting against a from-scratch recomputation.
func TestTwoOpt_IncrementalLengthMatchesRecompute(t *testing.T) {
	D := euclid(t, circlePts(40))
	in := make([]int, 40)
	for i := 0; i < 40; i++ {
		in[i] = (i * 13) % 40
	}

	route, open, err := tsp.TwoOpt(D, in, runOpts())
	if err != nil {
		t.Fatalf("TwoOpt failed: %v", err)
	}
	recomputed, err := tsp.RouteLength(D, route, false)
	if err != nil {
		t.Fatalf("RouteLength failed: %v", err)
	}
	mustFloatClose(t, open, recomputed, epsLoose)
}

func TestTwoOpt_DegenerateRoutes(t *testing.T) {
	D := euclid(t, unitSquarePts())

	route, open, err := tsp.TwoOpt(D, []int{}, runOpts())
	if err != nil {
		t.Fatalf("TwoOpt(empty) failed: %v", err)
	}
	if len(route) != 0 || open != 0 {
		t.Fatalf("empty route must come back empty with length 0")
	}

	route, open, err = tsp.TwoOpt(D, []int{2}, runOpts())
	if err != nil {
		t.Fatalf("TwoOpt(single) failed: %v", err)
	}
	mustEqualInts(t, route, []int{2})
	if open != 0 {
		t.Fatalf("single-node route must have length 0, got %v", open)
	}
}

func TestTwoOpt_RejectsNonPermutation(t *testing.T) {
	D := euclid(t, unitSquarePts())

	_, _, err := tsp.TwoOpt(D, []int{0, 1, 1, 3}, runOpts())
	mustErrIs(t, err, tsp.ErrBadRoute)

	_, _, err = tsp.TwoOpt(D, []int{0, 1}, runOpts())
	mustErrIs(t, err, tsp.ErrBadRoute)

	_, _, err = tsp.TwoOpt(nil, []int{0, 1}, runOpts())
	mustErrIs(t, err, tsp.ErrNilMatrix)
}

// TestTwoOpt_NoTimeLimitConstant documents that NoTimeLimit disarms the
// deadline entirely (distinct from an explicit zero budget).
func TestTwoOpt_NoTimeLimitConstant(t *testing.T) {
	if tsp.NoTimeLimit >= 0 {
		t.Fatalf("NoTimeLimit must be negative, got %v", tsp.NoTimeLimit)
	}

	D := euclid(t, unitSquarePts())
	crossed := []int{0, 2, 1, 3}

	o := runOpts()
	o.TimeLimit = tsp.NoTimeLimit
	route, _, err := tsp.TwoOpt(D, crossed, o)
	if err != nil {
		t.Fatalf("TwoOpt failed: %v", err)
	}
	closed, err := tsp.RouteLength(D, route, true)
	if err != nil {
		t.Fatalf("RouteLength failed: %v", err)
	}
	mustFloatClose(t, closed, 4.0, epsLoose) // crossing removed
}

// Package tsp - unified solve orchestrator.
//
// Solve is the canonical entry point: it resolves inputs (building a
// distance matrix from raw points when none is supplied), resolves and
// clamps the start index, dispatches to the requested strategy, and
// assembles the Result record.
//
// Design principles:
//   - Deterministic: no randomness anywhere in the pipeline.
//   - Strict sentinels: only errors from types.go at the input boundary;
//     constructor/optimizer failures are wrapped with a stage tag
//     (*StageError) rather than surfaced raw.
//   - Single-threaded: matrix build, construction, and local search execute
//     sequentially within one call; run Solve on a worker goroutine and
//     consume progress through the sink when the caller must stay responsive.
package tsp

import (
	"time"

	"github.com/katalvlaran/tourplan/distmat"
)

// Input carries the problem instance. Exactly one of Points or Matrix must
// be set; when both are present the supplied Matrix wins and Points are
// ignored. DistanceFunc only applies when the matrix is built from Points.
type Input struct {
	Points       []distmat.Point
	Matrix       *distmat.Dense
	DistanceFunc distmat.DistanceFunc
}

// Solve resolves the instance and configuration, runs the selected strategy,
// and returns the assembled Result.
//
// Stage 1 - matrix resolution: a supplied matrix is used as-is (rejected
// with ErrNonSquare when malformed); otherwise one is built from Points
// (ErrMissingInput when neither is given; builder errors pass through).
//
// Stage 2 - start resolution: opts.Start when non-negative, else
// opts.DefaultStart; an out-of-range result falls back to 0. Clamping is
// tolerance, never an error.
//
// Stage 3 - dispatch: MethodNearestNeighbor runs construction only;
// MethodNNTwoOpt (also the default for an empty Method) seeds the optimizer
// with the constructed route and the REMAINING time budget (TimeLimit minus
// elapsed so far, clamped ≥ 0). The optimizer's route replaces the incumbent
// only when its open length is strictly smaller — a safety net for
// degenerate inputs; normally always true by construction.
//
// Progress: the sink is invoked once after construction and after every
// accepted 2-opt move.
//
// Complexity: O(n²·k) matrix build when needed, O(n²) construction,
// O(iter·n²) local search.
func Solve(in Input, opts Options) (Result, error) {
	t0 := time.Now()

	// Stage 1 - resolve the distance matrix.
	D := in.Matrix
	if D == nil {
		if in.Points == nil {
			return Result{}, ErrMissingInput
		}
		var err error
		D, err = distmat.Build(in.Points, distmat.WithDistanceFunc(in.DistanceFunc))
		if err != nil {
			return Result{}, err
		}
	}
	if D.Rows() != D.Cols() {
		return Result{}, ErrNonSquare
	}
	n := D.Rows()

	// Stage 2 - resolve the method and the start index.
	method := opts.Method
	if method == "" {
		method = MethodNNTwoOpt
	}
	if method != MethodNearestNeighbor && method != MethodNNTwoOpt {
		return Result{}, ErrUnknownMethod
	}
	start := opts.Start
	if start < 0 {
		start = opts.DefaultStart
	}
	if start < 0 || start >= n {
		start = 0
	}

	// Stage 3 - construction (both strategies begin with Nearest-Neighbor).
	route, err := NearestNeighbor(D, start)
	if err != nil {
		return Result{}, &StageError{Stage: "nearest-neighbor", Err: err}
	}

	bestOpen, err := RouteLength(D, route, false)
	if err != nil {
		return Result{}, &StageError{Stage: "nearest-neighbor", Err: err}
	}
	bestClosed := closedLength(D, route, bestOpen)

	emitProgress(opts.Sink, Progress{
		Route:          CopyRoute(route),
		OpenLength:     bestOpen,
		ClosedLength:   bestClosed,
		ElapsedSeconds: time.Since(t0).Seconds(),
	})

	// Stage 4 - optional local search with the remaining time budget.
	if method == MethodNNTwoOpt && n >= 2 {
		o2 := opts
		if opts.TimeLimit >= 0 {
			rem := opts.TimeLimit - time.Since(t0)
			if rem < 0 {
				rem = 0
			}
			o2.TimeLimit = rem
		}

		improvedRoute, improvedOpen, err2 := TwoOpt(D, route, o2)
		if err2 != nil {
			return Result{}, &StageError{Stage: "two-opt", Err: err2}
		}

		// Strictly-smaller guard: keep the incumbent on ties or degenerate
		// optimizer output.
		if len(improvedRoute) > 0 && improvedOpen < bestOpen {
			route = improvedRoute
			bestOpen = improvedOpen
			bestClosed = closedLength(D, route, bestOpen)
		}
	}

	// Stage 5 - assemble the result record.
	edges, err := EdgeLengths(D, route)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Route:       route,
		EdgeLengths: edges,
		Meta: Meta{
			Method:           method,
			N:                n,
			ElapsedSeconds:   time.Since(t0).Seconds(),
			BestOpenLength:   bestOpen,
			BestClosedLength: bestClosed,
			StartIndex:       start,
		},
	}, nil
}

// closedLength derives the closed-tour length from a known open length by
// adding the return edge; routes shorter than 2 close to their open length.
func closedLength(D *distmat.Dense, route []int, open float64) float64 {
	if len(route) < 2 {
		return open
	}
	ret, err := D.At(route[len(route)-1], route[0])
	if err != nil {
		return open
	}

	return round1e9(open + ret)
}

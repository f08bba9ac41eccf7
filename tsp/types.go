// Package tsp - shared types, options, and strict sentinel errors.
//
// Design principles (shared by every file in this package):
//   - Deterministic: no time-based randomness anywhere; identical inputs
//     yield identical routes.
//   - Strict sentinels: the errors below are the only failure vocabulary;
//     fmt.Errorf never appears in hot paths.
//   - No logging, no panics on user input.
package tsp

import (
	"errors"
	"time"
)

// ErrMissingInput is returned when neither a point set nor a distance matrix
// is supplied to the orchestrator.
var ErrMissingInput = errors.New("tsp: either points or a distance matrix must be provided")

// ErrUnknownMethod is returned for an unrecognized strategy name.
var ErrUnknownMethod = errors.New("tsp: unknown method")

// ErrNilMatrix is returned when a required distance matrix is nil.
var ErrNilMatrix = errors.New("tsp: nil distance matrix")

// ErrNonSquare is returned when a supplied distance matrix is not square.
var ErrNonSquare = errors.New("tsp: distance matrix must be square")

// ErrBadRoute is returned when an input route is not a permutation of the
// matrix indices 0..n-1.
var ErrBadRoute = errors.New("tsp: route is not a permutation of matrix indices")

// StageError wraps a failure from a pipeline stage (constructor or
// optimizer) so callers can tell where a solve broke without parsing
// messages. Unwrap exposes the underlying cause for errors.Is/As.
type StageError struct {
	Stage string // "nearest-neighbor" or "two-opt"
	Err   error
}

func (e *StageError) Error() string { return "tsp: stage " + e.Stage + ": " + e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }

// Method selects the solving strategy.
type Method string

const (
	// MethodNearestNeighbor runs greedy construction only.
	MethodNearestNeighbor Method = "nearest-neighbor"

	// MethodNNTwoOpt runs greedy construction followed by 2-opt local search.
	MethodNNTwoOpt Method = "nearest-neighbor+2opt"
)

const (
	// DefaultMaxIters bounds the number of full 2-opt double scans when the
	// caller leaves MaxIters unset.
	DefaultMaxIters = 1000

	// DefaultEps is the noise floor for accepting an improving move:
	// a candidate is applied only when delta < -Eps.
	DefaultEps = 1e-9

	// NoTimeLimit disables the wall-clock budget. A zero TimeLimit is a real
	// (empty) budget: the optimizer returns its input at the first check.
	NoTimeLimit = time.Duration(-1)
)

// Options carries solver configuration. The zero value is NOT ready to use;
// start from DefaultOptions and override fields.
type Options struct {
	// Method selects the strategy; empty means MethodNNTwoOpt.
	Method Method

	// Start is the explicit start index. Negative means "unset": fall back
	// to DefaultStart. Out-of-range resolved values fall back to 0 — never
	// an error.
	Start int

	// DefaultStart is the configured fallback start index used when Start
	// is negative. It is clamped to 0 when out of range for the instance.
	DefaultStart int

	// MaxIters caps the number of outer 2-opt iterations (full double
	// scans). Values < 1 fall back to DefaultMaxIters.
	MaxIters int

	// Eps is the improvement threshold; deltas in (-Eps, 0) are treated as
	// noise and rejected. Negative values are clamped to 0.
	Eps float64

	// TimeLimit is the soft wall-clock budget for the solve. NoTimeLimit
	// (any negative value) disables it; 0 is a legitimate empty budget.
	// The optimizer samples the clock once per outer i value — coarse by
	// contract; on expiry it returns the current best immediately.
	TimeLimit time.Duration

	// Sink receives a progress snapshot after construction and after every
	// accepted 2-opt move. May be nil. A failing or panicking sink is
	// isolated at the call site and never aborts the search.
	Sink ProgressSink
}

// DefaultOptions returns the canonical configuration: combined strategy,
// unset start (resolved through DefaultStart, then clamped), 1000 outer
// iterations, 1e-9 threshold, no time budget, no sink.
func DefaultOptions() Options {
	return Options{
		Method:       MethodNNTwoOpt,
		Start:        -1,
		DefaultStart: 0,
		MaxIters:     DefaultMaxIters,
		Eps:          DefaultEps,
		TimeLimit:    NoTimeLimit,
	}
}

// Progress is a transient snapshot emitted while a solve is running. The
// core keeps no reference to it after the sink returns; Route is a private
// copy the sink may retain.
type Progress struct {
	Route          []int   `json:"route"`
	OpenLength     float64 `json:"length_open"`
	ClosedLength   float64 `json:"length_closed"`
	ElapsedSeconds float64 `json:"time"`
}

// ProgressSink consumes progress snapshots. Implementations must not assume
// any particular goroutine; the solver invokes the sink synchronously from
// its own (single) thread of execution.
type ProgressSink interface {
	OnProgress(Progress)
}

// ProgressFunc adapts a plain function to the ProgressSink interface.
type ProgressFunc func(Progress)

// OnProgress implements ProgressSink.
func (f ProgressFunc) OnProgress(p Progress) { f(p) }

// emitProgress delivers p to sink, swallowing any panic: a failing sink must
// never abort the search.
func emitProgress(sink ProgressSink, p Progress) {
	if sink == nil {
		return
	}
	defer func() { _ = recover() }()
	sink.OnProgress(p)
}

// Meta describes a finished solve. JSON tags mirror the on-disk meta.json
// layout consumed by external visualizers.
type Meta struct {
	Method           Method  `json:"method"`
	N                int     `json:"n"`
	ElapsedSeconds   float64 `json:"time_seconds"`
	BestOpenLength   float64 `json:"best_open_length"`
	BestClosedLength float64 `json:"best_closed_length"`
	StartIndex       int     `json:"start_idx"`
}

// Result is the outcome of a solve, created once at the end and handed to
// the caller; the solver keeps no further reference to it.
type Result struct {
	// Route is the visiting order: a permutation of 0..n-1 (open form).
	Route []int `json:"route"`

	// EdgeLengths holds the n-1 consecutive leg lengths:
	// EdgeLengths[i] = D[Route[i], Route[i+1]].
	EdgeLengths []float64 `json:"lengths"`

	Meta Meta `json:"meta"`
}

// Package distmat provides dense pairwise distance matrices for point sets.
//
// It covers the data substrate of the solver pipeline:
//
//   - Point — a fixed-dimension real-valued coordinate (k ≥ 1), immutable
//     once loaded.
//   - Dense — an n×n row-major float64 matrix with safe, error-returning
//     accessors (no panics at the public surface).
//   - Build — deterministic all-pairs construction from a point set, using
//     the Euclidean norm by default or a caller-supplied DistanceFunc.
//   - Validate — a non-raising sanity predicate: square, zero diagonal,
//     symmetric within tolerance, non-negative.
//
// Every entry produced by Build is rounded to 1e-9 (see Round9) so that
// repeated runs over identical input remain bit-for-bit reproducible across
// platforms. Matrices are built once per solve and never mutated afterwards;
// a built matrix may be shared read-only across any number of concurrent
// solves.
package distmat

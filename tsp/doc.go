// Package tsp provides heuristic Travelling Salesman solvers over dense
// distance matrices.
//
// It includes two strategies, composed by the Solve orchestrator:
//
//   - Nearest-Neighbor — greedy tour construction.
//
//   - Complexity: O(n²)
//
//   - Deterministic: ties resolve to the lowest index.
//
//   - Nearest-Neighbor + 2-opt — construction followed by bounded
//     first-improvement local search with full-scan restart after every
//     accepted move.
//
//   - Complexity: O(iter·n²); each accepted move costs O(segment) for the reversal.
//
// All functions accept a complete symmetric distance matrix (*distmat.Dense):
//   - The matrix is read-only throughout a solve and may be shared across
//     concurrent solves.
//   - A route is exclusively owned by the component mutating it; the
//     optimizer reverses segments in place on its private working copy.
//
// The 2-opt variant here restarts the whole (i,j) double scan after every
// accepted move instead of continuing the pass or hunting for the best move.
// That policy changes both runtime and the final tour relative to canonical
// first- or best-improvement 2-opt and is part of this package's contract;
// downstream output depends on it.
//
// This is a heuristic package: work is bounded by iteration caps and a soft
// wall-clock budget; optimality is never promised.
package tsp

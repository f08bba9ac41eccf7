// Package tourplan is a heuristic toolkit for the Euclidean Travelling
// Salesman Problem — from raw settlement coordinates to an optimized
// visiting order with exportable artifacts.
//
// 🚀 What is tourplan?
//
//	A deterministic, single-threaded solver pipeline that brings together:
//		• Distance matrices: dense all-pairs Euclidean (or custom metric) builders
//		• Construction: greedy Nearest-Neighbor with stable tie-breaking
//		• Improvement: bounded first-improvement 2-opt with incremental lengths
//		• Orchestration: one Solve entry point, progress streaming, stage-tagged errors
//		• I/O: settlements CSV loader, route/solution/meta exporters (CSV, JSON, XLSX)
//		• Caching: SQLite-backed pairwise distance store for repeated runs
//
// ✨ Why choose tourplan?
//
//   - Deterministic – identical input yields identical tours, run after run
//   - Bounded – iteration caps and soft wall-clock budgets, never runaway scans
//   - Observable – a progress snapshot after every accepted move
//   - Pure Go – no cgo anywhere in the pipeline
//
// Under the hood, everything is organized under focused subpackages:
//
//	distmat/   — Point, Dense matrix storage, all-pairs builders & validators
//	tsp/       — Nearest-Neighbor, 2-opt local search, the Solve orchestrator
//	loader/    — CSV settlement tables with delimiter detection
//	export/    — route.csv / solution.csv / meta.json / XLSX workbook writers
//	distcache/ — persistent pairwise distance cache (SQLite)
//	cmd/       — the tourplan command-line runner
//
// Quick ASCII example:
//
//	    (0,1)───(1,1)
//	      │       │
//	    (0,0)───(1,0)
//
//	four points on the unit square; the optimal closed tour walks the
//	boundary with length 4.
//
// Dive into the tsp package docs for the exact local-search policy and its
// convergence characteristics.
//
//	go get github.com/katalvlaran/tourplan
package tourplan

// Package tsp - 2-opt local search engine (first-improvement with restart).
//
// TwoOpt improves an open route by treating it as a closed loop (position n
// wraps to position 0) and repeatedly removing edge crossings:
//
//	edges (a,b)=(route[i-1],route[i]) and (c,d)=(route[j],route[(j+1) mod n])
//	Δ = (D[a,c] + D[b,d]) − (D[a,b] + D[c,d])
//
// Policy — first-improvement-with-restart:
//   - Scan candidate pairs (i,j), 1 ≤ i < j ≤ n−1, in row-major order
//     (i ascending outer, j ascending inner from i+1).
//   - Apply the FIRST pair with Δ < −Eps by reversing route[i..j] inclusive,
//     add Δ to the incrementally tracked closed length, then abandon the
//     whole double scan and restart it from (1,2) on the next outer
//     iteration. The pass is never continued past an accepted move and no
//     "best" move is sought. This unusual restart policy converges
//     differently from canonical 2-opt variants and is preserved exactly;
//     downstream output depends on it.
//
// Termination, whichever comes first:
//   - the wall-clock budget expires (sampled once per outer i value — coarse
//     by contract); the current best route is returned immediately, no error;
//   - MaxIters outer iterations (full double scans) are exhausted;
//   - a full double scan finds no improving pair (local optimum).
//
// Numeric semantics:
//   - The closed-tour length is accumulated in float64 from each accepted Δ,
//     never recomputed from scratch, keeping each move O(1) beyond the
//     reversal. Matrix entries are rounded at build time, so repeated runs
//     over identical input are reproducible.
//
// Progress:
//   - After every accepted move the sink receives {route (open form, private
//     copy), open length, closed length, elapsed seconds}. Sink failures are
//     swallowed at the call site and never abort the search.
//
// Complexity: O(iter·n²) candidate checks; O(n) extra space for the working
// copy and the prefetched weight buffer.
package tsp

import (
	"time"

	"github.com/katalvlaran/tourplan/distmat"
)

// TwoOpt runs local search seeded with route and returns the improved open
// route with its open length. The input route is never mutated; by
// construction the returned open length is ≤ the input's, since only
// strictly negative-delta moves are applied.
func TwoOpt(D *distmat.Dense, route []int, opts Options) ([]int, float64, error) {
	if D == nil {
		return nil, 0, ErrNilMatrix
	}
	if D.Rows() != D.Cols() {
		return nil, 0, ErrNonSquare
	}

	// Degenerate routes carry no edges; nothing to improve.
	if len(route) < 2 {
		return CopyRoute(route), 0, nil
	}

	n := D.Rows()
	if !ValidRouteIndices(route, n) {
		return nil, 0, ErrBadRoute
	}

	// Policy knobs with documented fallbacks.
	eps := opts.Eps
	if eps < 0 {
		eps = 0
	}
	maxIters := opts.MaxIters
	if maxIters < 1 {
		maxIters = DefaultMaxIters
	}

	// Prefetch weights into a dense 1D buffer w[u*n + v] to keep the scan
	// free of bounds-checked accessor calls.
	w := make([]float64, n*n)
	{
		var (
			i   int
			row []float64
			err error
		)
		for i = 0; i < n; i++ {
			row, err = D.Row(i)
			if err != nil {
				return nil, 0, err
			}
			copy(w[i*n:(i+1)*n], row)
		}
	}

	// Working copy in closed form: cur[n] == cur[0]. The optimizer owns it
	// exclusively; every mutation is an in-place segment reversal over
	// cur[1..n-1], so the closing element never moves.
	cur := make([]int, n+1)
	copy(cur, route)
	cur[n] = cur[0]

	// bestLen tracks the CLOSED tour length, updated incrementally from each
	// accepted delta.
	openLen, err := RouteLength(D, route, false)
	if err != nil {
		return nil, 0, err
	}
	bestLen := openLen + w[cur[n-1]*n+cur[0]]

	var (
		startTime = time.Now()
		improved  = true
		iters     = 0

		// Reused in the scan to keep the hot path allocation-free.
		i, j       int
		a, b, c, d int
		delta      float64
	)

	// openNow recomputes the open length from the incremental closed length;
	// cur[n-1] is the last distinct node of the loop.
	openNow := func() float64 { return bestLen - w[cur[n-1]*n+cur[0]] }

	for improved && iters < maxIters {
		improved = false
		iters++

		for i = 1; i <= n-2; i++ {
			// Soft deadline, sampled once per i value. Coarser than per-pair
			// on purpose; do not tighten. Zero budget trips on the first check.
			if opts.TimeLimit >= 0 && time.Since(startTime) > opts.TimeLimit {
				return CopyRoute(cur[:n]), round1e9(openNow()), nil
			}

			for j = i + 1; j <= n-1; j++ {
				a = cur[i-1]
				b = cur[i]
				c = cur[j]
				d = cur[j+1] // j+1 ≤ n; cur[n] closes the loop back to cur[0]

				delta = (w[a*n+c] + w[b*n+d]) - (w[a*n+b] + w[c*n+d])
				if delta < -eps {
					reverseSegmentInPlace(cur, i, j)
					bestLen += delta
					improved = true

					emitProgress(opts.Sink, Progress{
						Route:          CopyRoute(cur[:n]),
						OpenLength:     round1e9(openNow()),
						ClosedLength:   round1e9(bestLen),
						ElapsedSeconds: time.Since(startTime).Seconds(),
					})

					// Restart policy: abandon the double scan entirely.
					break
				}
			}
			if improved {
				break
			}
		}
	}

	return CopyRoute(cur[:n]), round1e9(openNow()), nil
}

// SPDX-License-Identifier: MIT

// Package distmat - all-pairs distance matrix construction.
//
// Build turns an ordered point set into a dense n×n matrix:
//   - Euclidean norm by default, evaluated over the upper triangle and
//     mirrored (a symmetric matrix by construction, zero diagonal).
//   - An optional caller-supplied DistanceFunc replaces the norm; it is
//     likewise evaluated once per unordered pair, O(n²·k) total.
//
// Contracts:
//   - Deterministic: identical input yields an identical matrix.
//   - n==0 yields an empty 0×0 matrix; n==1 yields a 1×1 zero matrix.
//   - ErrInvalidPoints when the point set is ragged or its dimension k < 1.
//   - Every entry is stabilized with Round9 at build time.
package distmat

import "math"

// BuildOption customizes matrix construction.
type BuildOption func(*buildConfig)

type buildConfig struct {
	fn DistanceFunc // nil ⇒ Euclidean norm
}

// WithDistanceFunc replaces the default Euclidean norm with a custom
// pairwise function. Passing nil keeps the default.
func WithDistanceFunc(fn DistanceFunc) BuildOption {
	return func(c *buildConfig) { c.fn = fn }
}

// Euclid returns the Euclidean distance between two points of equal
// dimension. If the dimensions differ, the shorter length governs; Build
// never produces that case because it validates rectangularity first.
// Complexity: O(k).
func Euclid(p, q Point) float64 {
	k := len(p)
	if len(q) < k {
		k = len(q)
	}

	var (
		sum float64
		df  float64
		i   int
	)
	for i = 0; i < k; i++ {
		df = p[i] - q[i]
		sum += df * df
	}

	return math.Sqrt(sum)
}

// Build constructs the n×n pairwise distance matrix for points.
//
// Stage 1 (Validate): reject ragged point sets and dimension k < 1.
// Stage 2 (Prepare): allocate the n×n Dense (zero diagonal for free).
// Stage 3 (Fill): evaluate the metric over the upper triangle, round each
// value with Round9, and mirror it into the lower triangle.
//
// Complexity: O(n²·k) time, O(n²) space.
func Build(points []Point, opts ...BuildOption) (*Dense, error) {
	var cfg buildConfig
	for _, o := range opts {
		o(&cfg)
	}

	n := len(points)
	if n == 0 {
		return NewDense(0, 0)
	}

	// Rectangularity: every point carries the dimension of the first one.
	k := len(points[0])
	if k < 1 {
		return nil, ErrInvalidPoints
	}
	var i int
	for i = 1; i < n; i++ {
		if len(points[i]) != k {
			return nil, ErrInvalidPoints
		}
	}

	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	fn := cfg.fn
	if fn == nil {
		fn = Euclid
	}

	// Upper triangle + mirror; the diagonal stays at its zero initialization.
	var (
		j int
		v float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v = Round9(fn(points[i], points[j]))
			d.data[i*n+j] = v
			d.data[j*n+i] = v
		}
	}

	return d, nil
}

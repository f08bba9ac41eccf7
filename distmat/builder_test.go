package distmat_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tourplan/distmat"
	"github.com/stretchr/testify/require"
)

// unitSquare is the canonical 4-point planar fixture used across the module.
func unitSquare() []distmat.Point {
	return []distmat.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestBuild_UnitSquareEuclidean(t *testing.T) {
	D, err := distmat.Build(unitSquare())
	require.NoError(t, err)
	require.Equal(t, 4, D.Rows())
	require.Equal(t, 4, D.Cols())

	// Sides are 1, diagonals are sqrt(2), diagonal entries are 0.
	v, err := D.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = D.At(0, 2)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, v, 1e-9)

	v, err = D.At(3, 3)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	require.True(t, distmat.Validate(D, 1e-9))
}

func TestBuild_Deterministic(t *testing.T) {
	pts := []distmat.Point{{0.3, 1.7}, {-2.1, 0.4}, {5.5, -3.3}}

	a, err := distmat.Build(pts)
	require.NoError(t, err)
	b, err := distmat.Build(pts)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			va, errA := a.At(i, j)
			require.NoError(t, errA)
			vb, errB := b.At(i, j)
			require.NoError(t, errB)
			require.Equal(t, va, vb, "entry (%d,%d) differs between runs", i, j)
		}
	}
}

func TestBuild_EmptyAndSingleton(t *testing.T) {
	D, err := distmat.Build(nil)
	require.NoError(t, err)
	require.Equal(t, 0, D.Rows())

	D, err = distmat.Build([]distmat.Point{{4.2, -1.0}})
	require.NoError(t, err)
	require.Equal(t, 1, D.Rows())
	v, err := D.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestBuild_RaggedPointsRejected(t *testing.T) {
	_, err := distmat.Build([]distmat.Point{{0, 0}, {1}})
	require.ErrorIs(t, err, distmat.ErrInvalidPoints)
}

func TestBuild_ZeroDimensionRejected(t *testing.T) {
	_, err := distmat.Build([]distmat.Point{{}, {}})
	require.ErrorIs(t, err, distmat.ErrInvalidPoints)
}

func TestBuild_CustomDistanceFunc(t *testing.T) {
	// Manhattan metric via a custom pairwise function.
	manhattan := func(p, q distmat.Point) float64 {
		return math.Abs(p[0]-q[0]) + math.Abs(p[1]-q[1])
	}

	D, err := distmat.Build(unitSquare(), distmat.WithDistanceFunc(manhattan))
	require.NoError(t, err)

	v, err := D.At(0, 2) // (0,0) -> (1,1) under L1
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	// Symmetric by construction even though the fn is only called once per pair.
	w, err := D.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, v, w)
}

func TestEuclid_Pairwise(t *testing.T) {
	require.Equal(t, 5.0, distmat.Euclid(distmat.Point{0, 0}, distmat.Point{3, 4}))
	require.Equal(t, 0.0, distmat.Euclid(distmat.Point{1, 1}, distmat.Point{1, 1}))
}

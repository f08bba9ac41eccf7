package distmat

import "errors"

// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
var ErrInvalidDimensions = errors.New("distmat: dimensions must be >= 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("distmat: index out of bounds")

// ErrInvalidPoints indicates a ragged point set (inconsistent dimensionality)
// or a dimension k < 1.
var ErrInvalidPoints = errors.New("distmat: points must be rectangular with dimension >= 1")

// ErrNonSquare indicates a matrix whose row and column counts differ where a
// square distance matrix is required.
var ErrNonSquare = errors.New("distmat: matrix must be square")

// Point is a fixed-dimension real-valued coordinate. All points of one set
// must share the same dimension k >= 1 (k == 2 for lat/lon or planar use).
// Points are treated as immutable once loaded; no builder or solver writes
// into them.
type Point []float64

// DistanceFunc computes the pairwise cost between two points of equal
// dimension. Implementations must be deterministic and symmetric in their
// arguments; Build evaluates the function once per unordered pair and
// mirrors the value.
type DistanceFunc func(p, q Point) float64

// SPDX-License-Identifier: MIT

// Package distmat - Dense storage (row-major) & safe accessors.
//
// Dense is the concrete backing store for distance matrices: a flat float64
// slice addressed by the explicit index formula i*c + j. Accessors return
// errors instead of panicking so that malformed indices surface as sentinel
// errors at the public boundary.
package distmat

import (
	"fmt"
	"math"
)

// denseErrorf wraps a sentinel error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns (>= 0; 0×0 is a legal empty matrix)
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols >= 0 (a 0×0 matrix models the
// empty point set and is legal here, unlike general linear algebra).
// Stage 2 (Prepare): allocate the flat backing slice; make() zero-fills it.
// Stage 3 (Finalize): return the new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a Dense matrix from a row-of-rows float64 slice, copying
// the data. Every row must have the same length; ragged input yields
// ErrInvalidDimensions. An empty input produces a legal 0×0 matrix.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return NewDense(0, 0)
	}
	c := len(rows[0])

	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrInvalidDimensions
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// At returns the element at (row, col) or ErrIndexOutOfBounds.
// Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	return d.data[row*d.c+col], nil
}

// Set assigns the element at (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (d *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return denseErrorf("Set", row, col, ErrIndexOutOfBounds)
	}
	d.data[row*d.c+col] = v

	return nil
}

// Row returns a no-copy view of the given row. Mutating the returned slice
// mutates the matrix; callers holding a built (immutable) distance matrix
// must treat the view as read-only. Complexity: O(1).
func (d *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= d.r {
		return nil, denseErrorf("Row", row, 0, ErrIndexOutOfBounds)
	}

	return d.data[row*d.c : (row+1)*d.c : (row+1)*d.c], nil
}

// Clone returns a deep, independent copy of the matrix.
// Complexity: O(r*c) time and memory.
func (d *Dense) Clone() *Dense {
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	copy(out.data, d.data)

	return out
}

// String renders the matrix row by row, mainly for tests and debugging.
func (d *Dense) String() string {
	s := ""
	var i, j int
	for i = 0; i < d.r; i++ {
		s += "["
		for j = 0; j < d.c; j++ {
			if j > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%g", d.data[i*d.c+j])
		}
		s += "]\n"
	}

	return s
}

// roundScale controls entry stabilization precision (1e-9).
const roundScale = 1e9

// Round9 returns x rounded to 1e-9 absolute precision. Build applies it to
// every matrix entry so that incremental cost updates downstream stay
// reproducible across platforms; callers computing distances outside Build
// (e.g. cache fills) should apply the same policy.
// Complexity: O(1).
func Round9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"github.com/katalvlaran/matrixops/matrix"
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new row-major *mat.Dense.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShape (from matrix.ShapeOf).
//   - read errors from m.At, wrapped with coordinates.
//
// Complexity: O(r*c) time and space.
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	s, err := matrix.ShapeOf(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opToGonum, err)
	}

	// Dense fast path: ToRows already hands back an owned copy.
	if d, ok := m.(*matrix.Dense); ok {
		flat := make([]float64, 0, s.Rows*s.Cols)
		for _, row := range d.ToRows() {
			flat = append(flat, row...)
		}
		return mat.NewDense(s.Rows, s.Cols, flat), nil
	}

	out := mat.NewDense(s.Rows, s.Cols, nil)
	var v float64
	for i := 0; i < s.Rows; i++ {
		for j := 0; j < s.Cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: At(%d,%d): %w", opToGonum, i, j, err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FromGonum copies a gonum matrix into an immutable *matrix.Dense.
// Any mat.Matrix is accepted, including transposed views (m.T()).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - matrix.ErrShape when gonum reports a zero dimension (e.g. an empty
//     mat.Dense{} receiver).
//
// Complexity: O(r*c) time and space.
func FromGonum(m mat.Matrix) (*matrix.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, matrix.ErrNilMatrix)
	}
	if d, ok := m.(*mat.Dense); ok && (d == nil || d.IsEmpty()) {
		return nil, fmt.Errorf("%s: empty mat.Dense: %w", opFromGonum, matrix.ErrShape)
	}
	r, c := m.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFromGonum, r, c, matrix.ErrShape)
	}

	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = m.At(i, j)
		}
	}

	return matrix.NewDense(rows)
}

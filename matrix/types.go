// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the kernels.
// This file contains ONLY domain-facing types (Matrix, Shape). Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

import "strconv"

// Matrix is a read-only, rectangular grid of float64 values.
// No kernel in this package mutates a Matrix; every operation returns a
// freshly allocated *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)
}

// Shape is the (rows, cols) pair of a matrix.
// It is always derived from the data on demand (ShapeOf, ShapeCheck) and
// never cached next to it.
type Shape struct {
	Rows int // number of rows (>0 for a valid matrix)
	Cols int // number of columns (>0 for a valid matrix)
}

// IsSquare reports whether Rows == Cols.
func (s Shape) IsSquare() bool { return s.Rows == s.Cols }

// String renders the shape as "RxC" (e.g. "2x3").
func (s Shape) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Cols)
}

// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide constructors (NewIdentity) and comparison helpers (Equal, AllClose).
//   - Provide *Data facades for callers that hold plain [][]float64 grids:
//     each validates with ShapeCheck, delegates to the Dense kernel, and returns
//     a freshly allocated grid. No logic is duplicated here.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Constructors ----------

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidSize when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, fmt.Errorf("n=%d: %w", n, ErrInvalidSize))
	}
	id := newDense(n, n)
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// ---------- Comparison ----------

// Equal reports whether a and b are valid matrices of the same shape with
// exactly equal cells (==, so NaN is never equal and +0 == -0).
// Invalid or nil operands are never equal.
func Equal(a, b Matrix) bool {
	s, err := ValidateSameShape(a, b)
	if err != nil {
		return false
	}
	ok, err := ewAllClose(a, b, s, 0, 0)

	return err == nil && ok
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if every cell satisfies the relation, (false,nil) otherwise.
//
// Policy:
//   - rtol, atol must be finite; negative values are treated as |rtol|, |atol|.
//
// Errors: ErrInvalidTolerance, ErrNilMatrix, ErrShape, ErrShapeMismatch.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrInvalidTolerance)
	}
	s, err := ValidateSameShape(a, b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	ok, err := ewAllClose(a, b, s, math.Abs(rtol), math.Abs(atol))
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return ok, nil
}

// ---------- Grid facades ----------

// binaryData lifts a (Matrix, Matrix) → *Dense kernel onto raw grids.
func binaryData(a, b [][]float64, kernel func(Matrix, Matrix) (*Dense, error)) ([][]float64, error) {
	da, err := NewDense(a)
	if err != nil {
		return nil, err
	}
	db, err := NewDense(b)
	if err != nil {
		return nil, err
	}
	res, err := kernel(da, db)
	if err != nil {
		return nil, err
	}

	return res.ToRows(), nil
}

// AddData returns a + b for two grids of equal shape.
func AddData(a, b [][]float64) ([][]float64, error) { return binaryData(a, b, Add) }

// SubtractData returns a - b for two grids of equal shape.
func SubtractData(a, b [][]float64) ([][]float64, error) { return binaryData(a, b, Subtract) }

// MultiplyData returns a × b; a's column count must equal b's row count.
func MultiplyData(a, b [][]float64) ([][]float64, error) { return binaryData(a, b, Multiply) }

// ScaleData returns alpha * grid.
func ScaleData(alpha float64, grid [][]float64) ([][]float64, error) {
	m, err := NewDense(grid)
	if err != nil {
		return nil, err
	}
	res, err := ScalarMultiply(alpha, m)
	if err != nil {
		return nil, err
	}

	return res.ToRows(), nil
}

// TransposeData returns the transpose of grid.
func TransposeData(grid [][]float64) ([][]float64, error) {
	m, err := NewDense(grid)
	if err != nil {
		return nil, err
	}
	res, err := Transpose(m)
	if err != nil {
		return nil, err
	}

	return res.ToRows(), nil
}

// TraceData returns the trace of a square grid.
func TraceData(grid [][]float64) (float64, error) {
	m, err := NewDense(grid)
	if err != nil {
		return 0, err
	}

	return Trace(m)
}

// FrobeniusData returns the Frobenius inner product of two equal-shaped grids.
func FrobeniusData(a, b [][]float64) (float64, error) {
	da, err := NewDense(a)
	if err != nil {
		return 0, err
	}
	db, err := NewDense(b)
	if err != nil {
		return 0, err
	}

	return FrobeniusInnerProduct(da, db)
}

// IdentityData returns I_n as a grid.
func IdentityData(n int) ([][]float64, error) {
	id, err := NewIdentity(n)
	if err != nil {
		return nil, err
	}

	return id.ToRows(), nil
}

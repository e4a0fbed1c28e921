// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels over any Matrix
// implementation: element-wise addition and subtraction, scalar scaling,
// transpose, matrix multiplication, trace and the Frobenius inner product.
// All functions perform strict fail-fast validation through validators.go
// and return a fresh *Dense (or a scalar); inputs are never mutated.
//
// Purpose:
//   - Define the canonical kernels and the operation tags used for error wrapping.
//   - Dense operands take a flat-slice fast path; any other Matrix falls back
//     to At with the same loop order, so both paths produce identical bits.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of every accumulation (dot products, traces).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd            = "Add"
	opSubtract       = "Subtract"
	opScalarMultiply = "ScalarMultiply"
	opTranspose      = "Transpose"
	opMultiply       = "Multiply"
	opTrace          = "Trace"
	opFrobenius      = "FrobeniusInnerProduct"
	opTraceOfProduct = "TraceOfProduct"
	opIdentity       = "NewIdentity"
	opAllClose       = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b) (non-nil, valid, equal shapes).
//   - Stage 2: ewCombine with sign=+1 (flat loop for *Dense, i→j otherwise).
//
// Errors:
//   - ErrNilMatrix, ErrShape, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	s, err := ValidateSameShape(a, b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res, err := ewCombine(a, b, s, +1)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return res, nil
}

// Subtract computes the element-wise difference C = A - B.
// Same validation, errors and complexity as Add.
func Subtract(a, b Matrix) (*Dense, error) {
	s, err := ValidateSameShape(a, b)
	if err != nil {
		return nil, matrixErrorf(opSubtract, err)
	}
	res, err := ewCombine(a, b, s, -1)
	if err != nil {
		return nil, matrixErrorf(opSubtract, err)
	}

	return res, nil
}

// ScalarMultiply returns a new matrix whose elements are alpha * m[i,j].
// No shape constraint beyond validity; alpha = 0 yields an explicit zero
// matrix of the same shape, NaN/Inf alpha propagate.
//
// Errors:
//   - ErrNilMatrix, ErrShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ScalarMultiply(alpha float64, m Matrix) (*Dense, error) {
	s, err := ShapeOf(m)
	if err != nil {
		return nil, matrixErrorf(opScalarMultiply, err)
	}
	res, err := ewScale(m, s, alpha)
	if err != nil {
		return nil, matrixErrorf(opScalarMultiply, err)
	}

	return res, nil
}

// Transpose returns a new c×r matrix with out[j,i] = m[i,j].
// Transpose(Transpose(m)) reproduces m exactly.
//
// Implementation:
//   - Stage 1: ShapeOf(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, map data[i*cols+j] → out[j*rows+i]; else At loop.
//
// Errors:
//   - ErrNilMatrix, ErrShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	s, err := ShapeOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := s.Rows, s.Cols
	res := newDense(cols, rows) // dims flipped

	var i, j int
	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Multiply performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b): both valid and A.Cols == B.Rows.
//   - Stage 2: for every cell, C[i,j] = Σ_k A[i,k]·B[k,j] accumulated from
//     ZeroSum in increasing k. The *Dense path walks i→k→j over row-major
//     strides; the fallback walks i→j→k. Both add the same terms to each cell
//     in the same order, so results are bit-identical.
//
// Behavior highlights:
//   - No zero-skipping: 0·Inf yields NaN exactly as the textbook definition.
//   - No blocking or tiling.
//
// Errors:
//   - ErrNilMatrix, ErrShape, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Multiply(a, b Matrix) (*Dense, error) {
	sa, sb, err := ValidateMulCompatible(a, b)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	aRows, aCols, bCols := sa.Rows, sa.Cols, sb.Cols
	res := newDense(aRows, bCols)

	var i, j, k int
	var av, bv, current float64
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMultiply, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMultiply, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Trace returns Σ_i m[i,i] for a square matrix, summed in increasing i.
//
// Errors:
//   - ErrNilMatrix, ErrShape, ErrNotSquare.
//
// Complexity:
//   - Time O(n), Space O(1).
func Trace(m Matrix) (float64, error) {
	n, err := ValidateSquare(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	sum := ZeroSum
	if dm, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += dm.data[i*n+i] // diagonal stride n+1
		}
		return sum, nil
	}

	var v float64
	for i := 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		sum += v
	}

	return sum, nil
}

// FrobeniusInnerProduct returns Σ_{i,j} a[i,j]·b[i,j], summed in row-major order.
// It is computed directly over the cells and shares no code with Trace or
// Multiply; TraceOfProduct is the independent cross-check.
//
// Errors:
//   - ErrNilMatrix, ErrShape, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func FrobeniusInnerProduct(a, b Matrix) (float64, error) {
	s, err := ValidateSameShape(a, b)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	sum := ZeroSum
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				sum += da.data[idx] * db.data[idx]
			}
			return sum, nil
		}
	}

	var av, bv float64
	for i := 0; i < s.Rows; i++ {
		for j := 0; j < s.Cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf(opFrobenius, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf(opFrobenius, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += av * bv
		}
	}

	return sum, nil
}

// TraceOfProduct returns trace(aᵀ·b) by composing Transpose → Multiply → Trace.
// For equal-shaped a and b it equals FrobeniusInnerProduct(a, b) (within
// floating-point rounding, since the summation order differs).
//
// Errors:
//   - ErrNilMatrix, ErrShape, ErrShapeMismatch (checked before any work).
//
// Complexity:
//   - Time O(r·c²), Space O(c²) for the intermediate product.
func TraceOfProduct(a, b Matrix) (float64, error) {
	if _, err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opTraceOfProduct, err)
	}
	at, err := Transpose(a)
	if err != nil {
		return 0, matrixErrorf(opTraceOfProduct, err)
	}
	p, err := Multiply(at, b)
	if err != nil {
		return 0, matrixErrorf(opTraceOfProduct, err)
	}
	tr, err := Trace(p)
	if err != nil {
		return 0, matrixErrorf(opTraceOfProduct, err)
	}

	return tr, nil
}

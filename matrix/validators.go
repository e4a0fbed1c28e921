// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape validation.
//   - Keep kernels minimal by delegating nil/shape/pairwise checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     wrap again with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//   - ShapeCheck is O(rows); every Matrix-level check is O(1).
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil(a) → Shape(a) →
//     NotNil(b) → Shape(b) → pairwise relation.

package matrix

import (
	"fmt"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ShapeCheck confirms that grid is non-empty and rectangular and returns its
// (rows, cols).
//
// Implementation:
//   - Stage 1: reject an empty outer slice or an empty first row.
//   - Stage 2: compare every row length against the first row (row order).
//
// Errors:
//   - ErrShape, with the offending row index and lengths in the message.
//
// Complexity:
//   - Time O(rows), Space O(1).
func ShapeCheck(grid [][]float64) (rows, cols int, err error) {
	if len(grid) == 0 {
		return 0, 0, validatorErrorf("ShapeCheck: no rows", ErrShape)
	}
	cols = len(grid[0])
	if cols == 0 {
		return 0, 0, validatorErrorf("ShapeCheck: empty first row", ErrShape)
	}
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != cols {
			return 0, 0, validatorErrorf(
				fmt.Sprintf("ShapeCheck: row %d has %d columns, want %d", i, len(grid[i]), cols),
				ErrShape,
			)
		}
	}

	return len(grid), cols, nil
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ShapeOf is ShapeCheck for a Matrix value: non-nil and both dimensions > 0.
//
// Errors: ErrNilMatrix, ErrShape.
// Complexity: O(1).
func ShapeOf(m Matrix) (Shape, error) {
	if err := ValidateNotNil(m); err != nil {
		return Shape{}, validatorErrorf("ShapeOf", err)
	}
	s := Shape{Rows: m.Rows(), Cols: m.Cols()}
	if s.Rows <= 0 || s.Cols <= 0 {
		return Shape{}, validatorErrorf("ShapeOf: "+s.String(), ErrShape)
	}

	return s, nil
}

// ValidateSameShape – Composite: ShapeOf(a) → ShapeOf(b) → equal shapes.
//
// Errors: ErrNilMatrix, ErrShape, ErrShapeMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) (Shape, error) {
	sa, err := ShapeOf(a)
	if err != nil {
		return Shape{}, validatorErrorf("ValidateSameShape", err)
	}
	sb, err := ShapeOf(b)
	if err != nil {
		return Shape{}, validatorErrorf("ValidateSameShape", err)
	}
	if sa != sb {
		return Shape{}, validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %s vs %s", sa, sb),
			ErrShapeMismatch,
		)
	}

	return sa, nil
}

// ValidateMulCompatible – Composite: ShapeOf(a) → ShapeOf(b) → a.Cols == b.Rows.
// Returns both shapes so the kernel does not re-read dimensions.
//
// Errors: ErrNilMatrix, ErrShape, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) (Shape, Shape, error) {
	sa, err := ShapeOf(a)
	if err != nil {
		return Shape{}, Shape{}, validatorErrorf("ValidateMulCompatible", err)
	}
	sb, err := ShapeOf(b)
	if err != nil {
		return Shape{}, Shape{}, validatorErrorf("ValidateMulCompatible", err)
	}
	if sa.Cols != sb.Rows {
		return Shape{}, Shape{}, validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %s × %s", sa, sb),
			ErrDimensionMismatch,
		)
	}

	return sa, sb, nil
}

// ValidateSquare – Composite: ShapeOf(m) → Rows == Cols.
//
// Errors: ErrNilMatrix, ErrShape, ErrNotSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) (int, error) {
	s, err := ShapeOf(m)
	if err != nil {
		return 0, validatorErrorf("ValidateSquare", err)
	}
	if !s.IsSquare() {
		return 0, validatorErrorf("ValidateSquare: "+s.String(), ErrNotSquare)
	}

	return s.Rows, nil
}

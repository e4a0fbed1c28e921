// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the stable error-kind enumeration.
// All kernels return these sentinels (wrapped with an operation tag) and
// tests MUST check them via errors.Is. No kernel panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// sentinels as fmt.Errorf("<Op>: %w", ErrX); callers match with errors.Is or
// KindOf. Message text is presentation only, ErrorKind is the contract.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (per operand, left to right) -> pairwise shape/dimension
// -> squareness.

var (
	// ErrShape is returned when a grid is empty or not rectangular
	// (no rows, an empty first row, or rows of differing length).
	ErrShape = errors.New("matrix: matrix must be non-empty and rectangular")

	// ErrShapeMismatch indicates two operands required to share a shape do not
	// (Add, Subtract, FrobeniusInnerProduct, AllClose).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDimensionMismatch indicates Multiply's inner dimensions disagree
	// (a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("matrix: inner dimension mismatch")

	// ErrNotSquare signals that a square matrix was required (Trace).
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidSize is returned when an identity size is not a positive integer.
	ErrInvalidSize = errors.New("matrix: size must be a positive integer")

	// ErrNilMatrix indicates that a nil Matrix argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidTolerance is returned by AllClose for NaN or ±Inf tolerances.
	ErrInvalidTolerance = errors.New("matrix: tolerance must be finite")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// ErrorKind is the stable enumeration of failure classes.
// Values are part of the public contract; never renumber them.
type ErrorKind int

const (
	KindUnknown           ErrorKind = iota // not produced by this package
	KindShape                              // empty or non-rectangular
	KindShapeMismatch                      // operands must share a shape
	KindDimensionMismatch                  // Multiply inner dimensions
	KindNotSquare                          // Trace on non-square input
	KindInvalidSize                        // identity size <= 0
	KindNilMatrix                          // nil argument
	KindOutOfRange                         // bad index
	KindInvalidTolerance                   // AllClose tolerance not finite
)

// kindTable maps every sentinel onto its kind. Order matters only for
// documentation; sentinels are distinct so at most one matches.
var kindTable = []struct {
	err  error
	kind ErrorKind
}{
	{ErrShape, KindShape},
	{ErrShapeMismatch, KindShapeMismatch},
	{ErrDimensionMismatch, KindDimensionMismatch},
	{ErrNotSquare, KindNotSquare},
	{ErrInvalidSize, KindInvalidSize},
	{ErrNilMatrix, KindNilMatrix},
	{ErrOutOfRange, KindOutOfRange},
	{ErrInvalidTolerance, KindInvalidTolerance},
}

// KindOf classifies err by the sentinel it wraps.
// Returns KindUnknown for nil or foreign errors.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	for _, entry := range kindTable {
		if errors.Is(err, entry.err) {
			return entry.kind
		}
	}

	return KindUnknown
}

// String returns the stable identifier of the kind (e.g. "ShapeMismatch").
func (k ErrorKind) String() string {
	switch k {
	case KindShape:
		return "Shape"
	case KindShapeMismatch:
		return "ShapeMismatch"
	case KindDimensionMismatch:
		return "DimensionMismatch"
	case KindNotSquare:
		return "NotSquare"
	case KindInvalidSize:
		return "InvalidSize"
	case KindNilMatrix:
		return "NilMatrix"
	case KindOutOfRange:
		return "OutOfRange"
	case KindInvalidTolerance:
		return "InvalidTolerance"
	default:
		return "Unknown"
	}
}

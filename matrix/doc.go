// Package matrix is a small dense-matrix arithmetic kernel.
//
// The matrix package provides:
//
//   - Dense: an immutable, row-major float64 grid built from [][]float64
//     through ShapeCheck (non-empty, rectangular).
//   - Element-wise kernels: Add, Subtract, ScalarMultiply.
//   - Structural and product kernels: Transpose, Multiply, Trace,
//     FrobeniusInnerProduct, TraceOfProduct.
//   - NewIdentity, Equal, AllClose and *Data facades over plain grids.
//   - Format: labelled, fixed-width rendering for reports and CLIs.
//
// Every kernel validates before it allocates, never mutates its operands,
// and returns a fresh *Dense or a scalar. Failures are sentinel errors
// (ErrShape, ErrShapeMismatch, ErrDimensionMismatch, ErrNotSquare,
// ErrInvalidSize, ...) wrapped with the operation name; match them with
// errors.Is or classify them with KindOf.
//
// Quick example:
//
//	a, _ := matrix.NewDense([][]float64{{2, 3, 1}, {0, -1, 4}})
//	b, _ := matrix.NewDense([][]float64{{5, -2, 0}, {3, 1, 7}})
//	sum, err := matrix.Add(a, b) // [[7 1 1] [3 0 11]]
//
// The package is synchronous and holds no global mutable state; values may
// be shared freely between goroutines because nothing ever writes to them.
package matrix

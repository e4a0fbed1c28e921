// Package matrixops is a small, dependable kernel for dense real matrix
// arithmetic, plus the command line that drives it.
//
// 🚀 What is matrixops?
//
//	A pure-Go library with an immutable row-major Dense type and the classic
//	operations on it:
//		• Elementwise: Add, Subtract, ScalarMultiply
//		• Structure: Transpose, NewIdentity
//		• Products: Multiply (textbook order, no zero-skipping)
//		• Reductions: Trace, FrobeniusInnerProduct, TraceOfProduct
//
// ✨ Why matrixops?
//
//   - Shapes first – every operation validates before it allocates
//   - Typed failures – sentinels for errors.Is plus a stable ErrorKind
//   - Immutable values – inputs are never modified, results are fresh
//   - Interop – lossless copies to and from gonum/mat
//
// Packages:
//
//	matrix/     — Dense, validators, kernels, sentinels, Format
//	converters/ — ToGonum / FromGonum bridges
//	config/     — MATRIXOPS_* environment settings
//	logging/    — zap logger for the CLI
//	cli/        — cobra commands: demo, eval, identity
//	cmd/        — the matrixops binary
//
// Quick example:
//
//	A (2x3) · C (3x2) = [[11, 1], [10, 17]]
//
//	a, _ := matrix.NewDense([][]float64{{2, 3, 1}, {0, -1, 4}})
//	c, _ := matrix.NewDense([][]float64{{1, 0}, {2, -1}, {3, 4}})
//	ac, err := matrix.Multiply(a, c)
//
// Worksheets under examples/ run with:
//
//	matrixops eval -f examples/calculations.yaml
package matrixops

// SPDX-License-Identifier: MIT
// Package matrix — test-only exports for private kernels and option state.
//
// Symbols carry the _TestOnly suffix; they forward to private code or expose
// read-only snapshots and never mutate package state.

package matrix

// FormatOptionsSnapshot is a read-only copy of the effective Format options.
type FormatOptionsSnapshot struct {
	Width     int
	Precision int
	Indent    string
	Separator string
}

// GatherFormatOptionsSnapshot_TestOnly resolves opts over the defaults
// exactly like Format does and returns the result.
func GatherFormatOptionsSnapshot_TestOnly(opts ...FormatOption) FormatOptionsSnapshot {
	o := gatherFormatOptions(opts...)

	return FormatOptionsSnapshot{
		Width:     o.width,
		Precision: o.precision,
		Indent:    o.indent,
		Separator: o.separator,
	}
}

// EwCombine_TestOnly forwards to the private ewCombine kernel.
// Shape is taken from a; callers pass validated operands.
func EwCombine_TestOnly(a, b Matrix, sign float64) (*Dense, error) {
	return ewCombine(a, b, Shape{Rows: a.Rows(), Cols: a.Cols()}, sign)
}

// EwScale_TestOnly forwards to the private ewScale kernel.
func EwScale_TestOnly(m Matrix, alpha float64) (*Dense, error) {
	return ewScale(m, Shape{Rows: m.Rows(), Cols: m.Cols()}, alpha)
}

// EwAllClose_TestOnly forwards to the private ewAllClose kernel.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, Shape{Rows: a.Rows(), Cols: a.Cols()}, rtol, atol)
}

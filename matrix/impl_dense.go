// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//   - Guarantee immutability: a Dense exposes no setter; constructors copy their input
//     and accessors return copies, so no caller can alias the backing buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) validate+copy; At: O(1); Row: O(c); ToRows/Clone: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <sentinel>"; the sentinel survives %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete, immutable row-major matrix.
//   - r,c hold dimensions (rows, cols); both are >0 for every reachable value.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense builds a Dense from a rectangular grid of rows.
// MAIN DESCRIPTION:
//   - Public constructor: validates the grid with ShapeCheck and copies it into
//     a contiguous row-major buffer. The caller's slices are never retained.
//
// Implementation:
//   - Stage 1: ShapeCheck(rows) → (r, c) or ErrShape.
//   - Stage 2: allocate r*c buffer; copy row i into data[i*c : (i+1)*c].
//
// Inputs:
//   - rows: non-empty grid, every row of identical, non-zero length.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrShape (empty outer slice, empty first row, ragged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows [][]float64) (*Dense, error) {
	r, c, err := ShapeCheck(rows)
	if err != nil {
		return nil, fmt.Errorf("NewDense: %w", err)
	}

	m := newDense(r, c)
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i]) // one memmove per row
	}

	return m, nil
}

// newDense allocates a zero-filled r×c Dense.
// Callers guarantee r>0 && c>0 (validated upstream); no checks here.
func newDense(r, c int) *Dense {
	return &Dense{r: r, c: c, data: make([]float64, r*c)}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a Shape value.
// Complexity: O(1).
func (m *Dense) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// indexOf computes the row-major offset or returns ErrOutOfRange (unwrapped;
// public methods wrap with coordinates and method name).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns the matrix as a freshly allocated [][]float64.
// The result shares no memory with m.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy (new buffer, same shape and values).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String HUMAN-READABLE dump of rows for diagnostics ("[1, 2]\n[3, 4]\n").
// Not for presentation; see Format for labelled fixed-width output.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Render a matrix as a labelled block of fixed-width decimal rows:
//
//	A + B (2x3):
//	       7.000     1.000     1.000
//	       3.000     0.000    11.000
//
//   - Presentation only: the layout is configurable and carries no contract
//     beyond "accepts a Matrix and a display name".

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const opFormat = "Format"

// Format writes "<name> (<r>x<c>):", one line per row (indent, then cells
// printed with %*.*f joined by the separator), and a trailing blank line.
//
// Errors:
//   - ErrNilMatrix, ErrShape (validated before anything is written).
//   - Write errors from w.
//
// Complexity:
//   - Time O(r*c), Space O(c) per formatted row (buffered writer).
func Format(w io.Writer, name string, m Matrix, opts ...FormatOption) error {
	s, err := ShapeOf(m)
	if err != nil {
		return matrixErrorf(opFormat, err)
	}
	o := gatherFormatOptions(opts...)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s (%s):\n", name, s)

	var v float64
	cell := make([]byte, 0, 32)
	for i := 0; i < s.Rows; i++ {
		bw.WriteString(o.indent)
		for j := 0; j < s.Cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opFormat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if j > 0 {
				bw.WriteString(o.separator)
			}
			cell = strconv.AppendFloat(cell[:0], v, 'f', o.precision, 64)
			for pad := o.width - len(cell); pad > 0; pad-- {
				bw.WriteByte(' ') // right-align like %*f
			}
			bw.Write(cell)
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	if err = bw.Flush(); err != nil {
		return matrixErrorf(opFormat, err)
	}

	return nil
}

// Sprint is Format into a string; errors render as an empty string.
func Sprint(name string, m Matrix, opts ...FormatOption) string {
	var b strings.Builder
	if err := Format(&b, name, m, opts...); err != nil {
		return ""
	}

	return b.String()
}

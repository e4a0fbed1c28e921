// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) shared by Add,
//     Subtract, ScalarMultiply and AllClose, so the tight loops exist once.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - ew* kernels assume their operands were validated by the caller
//     (shapes known, non-nil); they only propagate At errors.
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

// ewCombine computes out[i,j] = a[i,j] + sign*b[i,j] for sign ∈ {+1, -1}.
// Keeping sign as a float avoids a branch inside the hot loop; a + (-1)*b is
// bit-identical to a - b under IEEE-754.
// Time: O(r*c). Space: O(r*c). Deterministic flat (or i→j) order.
func ewCombine(a, b Matrix, s Shape, sign float64) (*Dense, error) {
	out := newDense(s.Rows, s.Cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := s.Rows * s.Cols
			for idx := 0; idx < n; idx++ { // deterministic 0..n-1
				out.data[idx] = da.data[idx] + sign*db.data[idx]
			}
			return out, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < s.Rows; i++ {
		for j = 0; j < s.Cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*s.Cols+j] = av + sign*bv
		}
	}

	return out, nil
}

// ewScale computes out[i,j] = alpha * m[i,j].
// Time: O(r*c). Space: O(r*c).
func ewScale(m Matrix, s Shape, alpha float64) (*Dense, error) {
	out := newDense(s.Rows, s.Cols)

	// Dense fast-path.
	if dm, ok := m.(*Dense); ok {
		n := s.Rows * s.Cols
		for idx := 0; idx < n; idx++ {
			out.data[idx] = alpha * dm.data[idx]
		}
		return out, nil
	}

	// Generic fallback.
	var v float64
	var err error
	for i := 0; i < s.Rows; i++ {
		for j := 0; j < s.Cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*s.Cols+j] = alpha * v
		}
	}

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for operands of
// shape s. Early-exits on the first violation. NaN never compares close;
// an infinity is close only to the same infinity.
// Time: O(r*c). Space: O(1).
func ewAllClose(a, b Matrix, s Shape, rtol, atol float64) (bool, error) {
	within := func(av, bv float64) bool {
		if av == bv { // matching infinities
			return true
		}
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			return false
		}
		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	var err error
	for i := 0; i < s.Rows; i++ {
		for j := 0; j < s.Cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

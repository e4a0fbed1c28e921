// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed so exact comparisons stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matrixops/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// brokenAt is a Matrix that reports a valid shape but fails every At call,
// used to prove fallback paths propagate read errors instead of panicking.
type brokenAt struct{ r, c int }

func (b brokenAt) Rows() int { return b.r }
func (b brokenAt) Cols() int { return b.c }
func (b brokenAt) At(i, j int) (float64, error) {
	return 0, matrix.ErrOutOfRange
}

// MustDense BUILDS a *Dense from rows or fails the test (fatal on error).
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows)
	require.NoError(t, err, "NewDense(%v)", rows)

	return m
}

// MustIdentity RETURNS I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return m
}

// RandRows BUILDS an r×c grid with values in [-10, 10) from a fixed seed.
// Deterministic for a given (r, c, seed).
func RandRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*20 - 10
		}
	}

	return rows
}

// RandDense BUILDS a random r×c *Dense (see RandRows).
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()

	return MustDense(t, RandRows(r, c, seed))
}

// IntRows BUILDS an r×c grid of small integers in [-5, 5]; every sum and
// product stays exactly representable, so kernels can be compared with ==.
func IntRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(11) - 5)
		}
	}

	return rows
}

// CompareExact ASSERTS m has exactly the values of want (shape included).
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v, "cell (%d,%d)", i, j)
		}
	}
}

// CompareClose ASSERTS AllClose(a, b, rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

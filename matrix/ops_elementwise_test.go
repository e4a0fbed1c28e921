// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/matrixops/matrix"
)

// --- ewCombine ----------------------------------------------------------------

func TestEwCombine_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	A := MustDense(t, [][]float64{{1, 2, 3}, {10, 20, 30}})
	B := MustDense(t, [][]float64{{0.5, -2, 4}, {1e-3, 0, -30}})

	for _, sign := range []float64{+1, -1} {
		fast, err := matrix.EwCombine_TestOnly(A, B, sign)
		if err != nil {
			t.Fatalf("fast sign=%v: %v", sign, err)
		}
		mixed, err := matrix.EwCombine_TestOnly(hide{A}, B, sign)
		if err != nil {
			t.Fatalf("mixed sign=%v: %v", sign, err)
		}
		slow, err := matrix.EwCombine_TestOnly(hide{A}, hide{B}, sign)
		if err != nil {
			t.Fatalf("slow sign=%v: %v", sign, err)
		}
		if !matrix.Equal(fast, mixed) || !matrix.Equal(fast, slow) {
			t.Fatalf("sign=%v: paths differ\nfast=%v\nmixed=%v\nslow=%v", sign, fast, mixed, slow)
		}
	}
}

func TestEwCombine_MinusIsSubtraction(t *testing.T) {
	t.Parallel()

	// a + (-1)*b must be bit-identical to a - b.
	a := []float64{0.1, 1e308, -0.0, 3}
	b := []float64{0.3, -1e308, 0.0, 3}
	A := MustDense(t, [][]float64{a})
	B := MustDense(t, [][]float64{b})

	got, err := matrix.EwCombine_TestOnly(A, B, -1)
	if err != nil {
		t.Fatal(err)
	}
	for j := range a {
		v, _ := got.At(0, j)
		want := a[j] - b[j]
		if math.Float64bits(v) != math.Float64bits(want) {
			t.Fatalf("col %d: got %v want %v", j, v, want)
		}
	}
}

func TestEwCombine_ReadError(t *testing.T) {
	t.Parallel()

	A := MustDense(t, [][]float64{{1, 2}})
	_, err := matrix.EwCombine_TestOnly(A, brokenAt{1, 2}, 1)
	if !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
}

// --- ewScale ------------------------------------------------------------------

func TestEwScale_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	X := MustDense(t, [][]float64{{1, -2}, {3.5, 0}})
	for _, alpha := range []float64{0, -1, 0.25, math.Inf(1)} {
		fast, err := matrix.EwScale_TestOnly(X, alpha)
		if err != nil {
			t.Fatalf("fast alpha=%v: %v", alpha, err)
		}
		slow, err := matrix.EwScale_TestOnly(hide{X}, alpha)
		if err != nil {
			t.Fatalf("slow alpha=%v: %v", alpha, err)
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				a, _ := fast.At(i, j)
				b, _ := slow.At(i, j)
				if math.Float64bits(a) != math.Float64bits(b) {
					t.Fatalf("alpha=%v [%d,%d]: fast=%v slow=%v", alpha, i, j, a, b)
				}
			}
		}
	}
}

func TestEwScale_ReadError(t *testing.T) {
	t.Parallel()

	_, err := matrix.EwScale_TestOnly(brokenAt{2, 2}, 3)
	if !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
}

// --- ewAllClose ---------------------------------------------------------------

func TestEwAllClose_Relation(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	cases := []struct {
		name       string
		a, b       float64
		rtol, atol float64
		want       bool
	}{
		{"exact", 1, 1, 0, 0, true},
		{"within atol", 1, 1.05, 0, 0.1, true},
		{"outside atol", 1, 1.2, 0, 0.1, false},
		{"within rtol", 100, 101, 0.01, 0, true},
		{"rtol scales with b", 1, 2, 0.5, 0, true},
		{"matching infinities", inf, inf, 0, 0, true},
		{"opposite infinities", inf, -inf, 1, 1, false},
		{"nan never close", math.NaN(), math.NaN(), 1, 1, false},
		{"signed zeros", 0, math.Copysign(0, -1), 0, 0, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			A := MustDense(t, [][]float64{{tc.a}})
			B := MustDense(t, [][]float64{{tc.b}})

			fast, err := matrix.EwAllClose_TestOnly(A, B, tc.rtol, tc.atol)
			if err != nil {
				t.Fatal(err)
			}
			slow, err := matrix.EwAllClose_TestOnly(hide{A}, hide{B}, tc.rtol, tc.atol)
			if err != nil {
				t.Fatal(err)
			}
			if fast != tc.want || slow != tc.want {
				t.Fatalf("fast=%v slow=%v want=%v", fast, slow, tc.want)
			}
		})
	}
}

func TestEwAllClose_ReadError(t *testing.T) {
	t.Parallel()

	A := MustDense(t, [][]float64{{1}})
	_, err := matrix.EwAllClose_TestOnly(hide{A}, brokenAt{1, 1}, 0, 0)
	if !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
}

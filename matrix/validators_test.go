package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matrixops/matrix"
	"github.com/stretchr/testify/require"
)

func TestShapeCheck(t *testing.T) {
	r, c, err := matrix.ShapeCheck([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	r, c, err = matrix.ShapeCheck([][]float64{{7}})
	require.NoError(t, err)
	require.Equal(t, 1, r)
	require.Equal(t, 1, c)
}

func TestShapeCheck_Failures(t *testing.T) {
	_, _, err := matrix.ShapeCheck(nil)
	require.ErrorIs(t, err, matrix.ErrShape)

	_, _, err = matrix.ShapeCheck([][]float64{})
	require.ErrorIs(t, err, matrix.ErrShape)

	_, _, err = matrix.ShapeCheck([][]float64{{}, {1}})
	require.ErrorIs(t, err, matrix.ErrShape)

	_, _, err = matrix.ShapeCheck([][]float64{{1, 2}, {3, 4}, {5}})
	require.ErrorIs(t, err, matrix.ErrShape)
	require.Contains(t, err.Error(), "row 2 has 1 columns, want 2")

	// A longer row is as invalid as a shorter one: never truncated.
	_, _, err = matrix.ShapeCheck([][]float64{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrShape)
}

func TestShapeOf(t *testing.T) {
	s, err := matrix.ShapeOf(MustDense(t, [][]float64{{1, 2}}))
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{Rows: 1, Cols: 2}, s)

	_, err = matrix.ShapeOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.ShapeOf(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// The zero Dense has no rows: invalid, not a 0x0 matrix.
	_, err = matrix.ShapeOf(&matrix.Dense{})
	require.ErrorIs(t, err, matrix.ErrShape)

	_, err = matrix.ShapeOf(brokenAt{r: 3, c: 0})
	require.ErrorIs(t, err, matrix.ErrShape)
}

func TestValidateSameShape(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2}})
	b := MustDense(t, [][]float64{{1}, {2}})

	_, err := matrix.ValidateSameShape(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.Contains(t, err.Error(), "1x2 vs 2x1")

	s, err := matrix.ValidateSameShape(a, hide{a})
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{Rows: 1, Cols: 2}, s)

	// Nil is reported before any pairwise relation.
	_, err = matrix.ValidateSameShape(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	a := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	c := MustDense(t, [][]float64{{1, 0}, {2, -1}})      // 2x2

	_, _, err := matrix.ValidateMulCompatible(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	sa, sc, err := matrix.ValidateMulCompatible(c, a)
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{Rows: 2, Cols: 2}, sa)
	require.Equal(t, matrix.Shape{Rows: 2, Cols: 3}, sc)
}

func TestValidateSquare(t *testing.T) {
	n, err := matrix.ValidateSquare(MustIdentity(t, 3))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = matrix.ValidateSquare(MustDense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	_, err = matrix.ValidateSquare(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

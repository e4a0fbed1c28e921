package matrix_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/matrixops/matrix"
)

// ExampleAdd shows element-wise addition of two 2x3 matrices.
func ExampleAdd() {
	a, _ := matrix.NewDense([][]float64{{2, 3, 1}, {0, -1, 4}})
	b, _ := matrix.NewDense([][]float64{{5, -2, 0}, {3, 1, 7}})

	sum, err := matrix.Add(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(sum)

	// Output:
	// [7, 1, 1]
	// [3, 0, 11]
}

// ExampleFrobeniusInnerProduct cross-checks ⟨A,B⟩_F against trace(AᵀB).
func ExampleFrobeniusInnerProduct() {
	a, _ := matrix.NewDense([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDense([][]float64{{7, 8, 9}, {1, 0, -1}})

	fro, _ := matrix.FrobeniusInnerProduct(a, b)
	tr, _ := matrix.TraceOfProduct(a, b)
	fmt.Println(fro, tr)

	// Output:
	// 48 48
}

// ExampleMultiply shows the dimension check on a non-conforming product.
func ExampleMultiply() {
	a, _ := matrix.NewDense([][]float64{{2, 3, 1}, {0, -1, 4}})
	c, _ := matrix.NewDense([][]float64{{1, 0}, {2, -1}})

	_, err := matrix.Multiply(a, c)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch), matrix.KindOf(err))

	// Output:
	// true DimensionMismatch
}

// ExampleFormat prints the identity product with a compact layout.
func ExampleFormat() {
	id, _ := matrix.NewIdentity(2)
	a, _ := matrix.NewDense([][]float64{{2, -1}, {0, 3}})
	ia, _ := matrix.Multiply(id, a)

	_ = matrix.Format(os.Stdout, "I * A", ia, matrix.WithWidth(5), matrix.WithPrecision(1), matrix.WithIndent("   "))

	// Output:
	// I * A (2x2):
	//      2.0   -1.0
	//      0.0    3.0
}

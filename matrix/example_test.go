package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleMul multiplies a 2×3 by a 3×2 matrix.
func ExampleMul() {
	a, _ := matrix.NewDenseFrom([][]int{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDenseFrom([][]int{{7, 8}, {9, 10}, {11, 12}})
	p, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(p)
	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleDense_Inverse inverts a float matrix via the adjugate.
func ExampleDense_Inverse() {
	m, _ := matrix.NewDenseFrom([][]float64{{4, 7}, {2, 6}})
	det, _ := m.Determinant()
	inv, err := m.Inverse()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("det:", det)
	fmt.Print(inv)
	// Output:
	// det: 10
	// [0.6, -0.7]
	// [-0.2, 0.4]
}

// ExampleDense_WriteText shows the whitespace text format.
func ExampleDense_WriteText() {
	m, _ := matrix.MakeIdentity[int](3)
	_ = m.WriteText(os.Stdout)
	// Output:
	// 1 0 0
	// 0 1 0
	// 0 0 1
}

// ExampleDense_Inverse_singular shows sentinel matching on a singular input.
func ExampleDense_Inverse_singular() {
	m, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {2, 4}})
	_, err := m.Inverse()
	fmt.Println(err != nil)
	// Output:
	// true
}

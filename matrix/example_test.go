// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
)

// ExampleGramRows builds X·Xᵗ for a 2×3 matrix.
func ExampleGramRows() {
	x, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	g, _ := matrix.GramRows(x)
	fmt.Print(g)
	// Output:
	// [14, 32]
	// [32, 77]
}

// ExampleEigenSym diagonalizes a symmetric 2×2 matrix.
func ExampleEigenSym() {
	a, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 5}})
	vals, vecs, _ := matrix.EigenSym(a)
	fmt.Println(vals)
	fmt.Print(vecs)
	// Output:
	// [2 5]
	// [1, 0]
	// [0, 1]
}

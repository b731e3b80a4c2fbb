// SPDX-License-Identifier: MIT
package svd_test

import (
	"fmt"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
	"github.com/VictorSM01/Singular-Value-Decomposition/svd"
)

func ExampleDecompose() {
	x, _ := matrix.NewDenseFrom([][]float64{{4, 0, 2}, {3, -5, 1}, {2, 3, 0}})
	res, err := svd.Decompose(x)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("σ = %.4f\n", res.SingularValues())

	e, _ := res.ReconstructionError(x)
	fmt.Println("reconstructs:", e < 1e-10)
	// Output:
	// σ = [6.6234 4.8450 0.8102]
	// reconstructs: true
}

func ExampleDecompose_gonum() {
	x, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	res, _ := svd.Decompose(x, svd.WithEigensolver(svd.Gonum{}))
	fmt.Printf("σ = %.6f, rank %d\n", res.SingularValues(), res.Rank(svd.DefaultRankTolerance))
	// Output:
	// σ = [9.508032 0.772870], rank 2
}

// SPDX-License-Identifier: MIT
package svd_test

import (
	"fmt"
	"testing"

	"github.com/VictorSM01/Singular-Value-Decomposition/svd"
)

var sinkResult *svd.Result

func BenchmarkDecompose(b *testing.B) {
	for _, n := range []int{4, 16, 32} {
		x := randDense(b, n, n, int64(n))
		for name, opts := range map[string][]svd.Option{
			"jacobi":    nil,
			"gonum":     {svd.WithEigensolver(svd.Gonum{})},
			"two-sided": {svd.WithMethod(svd.MethodTwoSided)},
		} {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sinkResult, _ = svd.Decompose(x, opts...)
				}
			})
		}
	}
}

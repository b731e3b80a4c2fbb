// SPDX-License-Identifier: MIT
package svd_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
	"github.com/VictorSM01/Singular-Value-Decomposition/svd"
	"github.com/stretchr/testify/require"
)

// exampleRows is the 3×3 matrix used throughout the package docs and the demo.
var exampleRows = [][]float64{{4, 0, 2}, {3, -5, 1}, {2, 3, 0}}

// hide strips the concrete *matrix.Dense type off a Matrix.
type hide struct{ matrix.Matrix }

// poisoned reports NaN at (0,0); Dense itself refuses to store one.
type poisoned struct{ matrix.Matrix }

func (p poisoned) At(i, j int) (float64, error) {
	if i == 0 && j == 0 {
		return math.NaN(), nil
	}

	return p.Matrix.At(i, j)
}

func mustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}

func mustDecompose(tb testing.TB, x matrix.Matrix, opts ...svd.Option) *svd.Result {
	tb.Helper()
	res, err := svd.Decompose(x, opts...)
	require.NoError(tb, err)
	require.NotNil(tb, res)

	return res
}

// requireWellFormed checks shapes, ordering, non-negativity and the Σ layout.
func requireWellFormed(tb testing.TB, x matrix.Matrix, res *svd.Result) {
	tb.Helper()
	n, m := x.Rows(), x.Cols()
	require.Equal(tb, n, res.U.Rows())
	require.Equal(tb, n, res.U.Cols())
	require.Equal(tb, n, res.Sigma.Rows())
	require.Equal(tb, m, res.Sigma.Cols())
	require.Equal(tb, m, res.Vt.Rows())
	require.Equal(tb, m, res.Vt.Cols())
	require.Len(tb, res.Values, n)

	for i, s := range res.Values {
		require.GreaterOrEqualf(tb, s, 0.0, "σ%d", i)
		if i > 0 {
			require.LessOrEqualf(tb, s, res.Values[i-1], "σ%d out of order", i)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			v, err := res.Sigma.At(i, j)
			require.NoError(tb, err)
			if i == j {
				require.Equal(tb, res.Values[i], v)
			} else {
				require.Zerof(tb, v, "Σ(%d,%d)", i, j)
			}
		}
	}
}

func requireReconstructs(tb testing.TB, x matrix.Matrix, res *svd.Result, tol float64) {
	tb.Helper()
	e, err := res.ReconstructionError(x)
	require.NoError(tb, err)
	require.Lessf(tb, e, tol, "reconstruction error %g", e)
}

func requireOrthonormal(tb testing.TB, res *svd.Result, tol float64) {
	tb.Helper()
	e, err := res.OrthonormalityError()
	require.NoError(tb, err)
	require.Lessf(tb, e, tol, "orthonormality error %g", e)
}

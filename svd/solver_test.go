// SPDX-License-Identifier: MIT
package svd_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
	"github.com/VictorSM01/Singular-Value-Decomposition/svd"
)

func sortedDesc(v []float64) []float64 {
	out := append([]float64(nil), v...)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))

	return out
}

func TestSolvers_Agree(t *testing.T) {
	x := randDense(t, 5, 5, 3)
	g, err := matrix.GramRows(x)
	require.NoError(t, err)

	jv, jq, err := svd.Jacobi{}.SymEigen(g)
	require.NoError(t, err)
	gv, gq, err := svd.Gonum{}.SymEigen(g)
	require.NoError(t, err)

	require.InDeltaSlice(t, sortedDesc(gv), sortedDesc(jv), 1e-10)
	for _, q := range []matrix.Matrix{jq, gq} {
		require.Equal(t, 5, q.Rows())
		require.Equal(t, 5, q.Cols())
	}
}

func TestGonum_Ascending(t *testing.T) {
	g := mustFrom(t, [][]float64{{2, 1}, {1, 2}})
	vals, _, err := svd.Gonum{}.SymEigen(g)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 3}, vals, 1e-12)
}

func TestSolvers_RejectBadInput(t *testing.T) {
	asym := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	for name, s := range map[string]svd.Eigensolver{"jacobi": svd.Jacobi{}, "gonum": svd.Gonum{}} {
		t.Run(name, func(t *testing.T) {
			vals, vecs, err := s.SymEigen(asym)
			require.ErrorIs(t, err, matrix.ErrAsymmetry)
			require.Nil(t, vals)
			require.Nil(t, vecs)

			_, _, err = s.SymEigen(nil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)

			_, _, err = s.SymEigen(poisoned{mustFrom(t, [][]float64{{1, 0}, {0, 1}})})
			require.ErrorIs(t, err, matrix.ErrNaNInf)
		})
	}
}

func TestJacobi_Budget(t *testing.T) {
	g := mustFrom(t, [][]float64{{4, 1, 2}, {1, 3, 1}, {2, 1, 5}})
	_, _, err := svd.Jacobi{MaxIter: 1}.SymEigen(g)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)

	_, _, err = svd.Jacobi{Tol: 1e-6}.SymEigen(g)
	require.NoError(t, err)
}

// Singular values must match gonum's own LAPACK-backed SVD.
func TestDecompose_MatchesGonumSVD(t *testing.T) {
	for _, shape := range [][2]int{{3, 3}, {4, 2}, {2, 5}} {
		x := randDense(t, shape[0], shape[1], int64(shape[0]+shape[1]))
		res := mustDecompose(t, x)

		gx, err := svd.ToGonum(x)
		require.NoError(t, err)
		var ref mat.SVD
		require.True(t, ref.Factorize(gx, mat.SVDNone))
		want := ref.Values(nil)

		require.InDeltaSlice(t, want, res.SingularValues(), 1e-9)
	}
}

func TestToGonum(t *testing.T) {
	x := mustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	g, err := svd.ToGonum(hide{x})
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	_, err = svd.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

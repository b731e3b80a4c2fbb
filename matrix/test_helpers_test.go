// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At/Set fallback paths.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// mustFrom builds a *Dense from a row literal or fails the test.
func mustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// fillDenseRand fills m with uniform values in [-1, 1) from a fixed seed.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, 2*rng.Float64()-1))
		}
	}
}

// randSymmetric returns B + Bᵗ for a random n×n B.
func randSymmetric(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	b := mustDense(tb, n, n)
	fillDenseRand(tb, b, seed)
	s := mustDense(tb, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			bij, _ := b.At(i, j)
			bji, _ := b.At(j, i)
			require.NoError(tb, s.Set(i, j, bij+bji))
		}
	}

	return s
}

// requireMatrixNear asserts element-wise |got-want| ≤ tol.
func requireMatrixNear(tb testing.TB, want [][]float64, got matrix.Matrix, tol float64) {
	tb.Helper()
	require.Equal(tb, len(want), got.Rows(), "rows")
	require.Equal(tb, len(want[0]), got.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(tb, err)
			require.InDeltaf(tb, want[i][j], v, tol, "(%d,%d)", i, j)
		}
	}
}

// eigenResidual returns max_i ‖A·qᵢ − λᵢ·qᵢ‖∞.
func eigenResidual(tb testing.TB, a matrix.Matrix, vals []float64, q *matrix.Dense) float64 {
	tb.Helper()
	worst := 0.0
	for i, lambda := range vals {
		qi, err := q.Col(i)
		require.NoError(tb, err)
		aq, err := matrix.MatVec(a, qi)
		require.NoError(tb, err)
		for k := range aq {
			worst = math.Max(worst, math.Abs(aq[k]-lambda*qi[k]))
		}
	}

	return worst
}

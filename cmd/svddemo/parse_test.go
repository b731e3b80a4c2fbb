// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
	"github.com/VictorSM01/Singular-Value-Decomposition/svd"
)

func TestParseMatrix(t *testing.T) {
	cases := []struct {
		lit  string
		want [][]float64
	}{
		{"4,0,2;3,-5,1;2,3,0", [][]float64{{4, 0, 2}, {3, -5, 1}, {2, 3, 0}}},
		{" 1 2 ; 3 4 ", [][]float64{{1, 2}, {3, 4}}},
		{"1.5e2, -0.25", [][]float64{{150, -0.25}}},
		{"7", [][]float64{{7}}},
	}
	for _, tc := range cases {
		m, err := parseMatrix(tc.lit)
		require.NoError(t, err, tc.lit)
		require.Equal(t, tc.want, m.RawRows(), tc.lit)
	}
}

func TestParseMatrix_Errors(t *testing.T) {
	for _, lit := range []string{"", "  ", "1,2;;3,4", "1,x"} {
		_, err := parseMatrix(lit)
		require.ErrorIs(t, err, errLiteral, "%q", lit)
	}
	_, err := parseMatrix("1,2;3")
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = parseMatrix("1,NaN")
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestSolverByName(t *testing.T) {
	s, err := solverByName("jacobi")
	require.NoError(t, err)
	require.Equal(t, svd.Jacobi{}, s)
	s, err = solverByName("gonum")
	require.NoError(t, err)
	require.Equal(t, svd.Gonum{}, s)
	_, err = solverByName("lapack")
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	plotPath := filepath.Join(t.TempDir(), "sigma.png")
	err := run(&out, config{
		Literal:  "4,0,2;3,-5,1;2,3,0",
		Solver:   "jacobi",
		Method:   "projected",
		RankTol:  svd.DefaultRankTolerance,
		PlotFile: plotPath,
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "singular values: [6.62341 4.84499 ")
	require.Contains(t, out.String(), "rank: 3")
	require.Contains(t, out.String(), "U = ")

	st, err := os.Stat(plotPath)
	require.NoError(t, err)
	require.Positive(t, st.Size())
}

func TestRun_Errors(t *testing.T) {
	base := config{Literal: "1,2;3,4", Solver: "gonum", Method: "two-sided"}
	require.NoError(t, run(&bytes.Buffer{}, base))

	bad := base
	bad.Literal = "1,2;3"
	require.ErrorIs(t, run(&bytes.Buffer{}, bad), matrix.ErrBadShape)

	bad = base
	bad.Method = "qr"
	require.ErrorIs(t, run(&bytes.Buffer{}, bad), svd.ErrUnknownMethod)

	bad = base
	bad.RankTol = 1
	require.Error(t, run(&bytes.Buffer{}, bad))
}

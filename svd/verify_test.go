// SPDX-License-Identifier: MIT
package svd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
	"github.com/VictorSM01/Singular-Value-Decomposition/svd"
)

func TestResult_NilReceiver(t *testing.T) {
	var r *svd.Result
	_, err := r.Reconstruct()
	require.ErrorIs(t, err, svd.ErrNilResult)
	_, err = r.ReconstructionError(mustFrom(t, exampleRows))
	require.ErrorIs(t, err, svd.ErrNilResult)
	_, err = r.OrthonormalityError()
	require.ErrorIs(t, err, svd.ErrNilResult)
	require.Nil(t, r.SingularValues())
	require.Zero(t, r.Rank(0))
}

func TestResult_ReconstructionShapeMismatch(t *testing.T) {
	res := mustDecompose(t, mustFrom(t, exampleRows))
	_, err := res.ReconstructionError(mustFrom(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestResult_SingularValuesIsCopy(t *testing.T) {
	res := mustDecompose(t, mustFrom(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}))
	sv := res.SingularValues()
	require.Len(t, sv, 2)
	require.Equal(t, res.Values[:2], sv)

	sv[0] = -1
	require.NotEqual(t, -1.0, res.Values[0])
}

func TestResult_Rank(t *testing.T) {
	res := mustDecompose(t, mustFrom(t, [][]float64{{1, 0}, {0, 1e-3}}))
	require.Equal(t, 2, res.Rank(0))
	require.Equal(t, 2, res.Rank(1e-4))
	require.Equal(t, 1, res.Rank(1e-2))
}

func TestResult_OrthonormalityDetectsDamage(t *testing.T) {
	res := mustDecompose(t, mustFrom(t, exampleRows))
	require.NoError(t, res.U.Set(0, 0, 10))
	e, err := res.OrthonormalityError()
	require.NoError(t, err)
	require.Greater(t, e, 1.0)
}

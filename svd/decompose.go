// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"math"

	"github.com/op/go-logging"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
)

var log = logging.MustGetLogger("svd")

func init() {
	// Quiet unless the caller asks: logging.SetLevel(logging.DEBUG, "svd").
	logging.SetLevel(logging.WARNING, "svd")
}

const opDecompose = "Decompose"

// decomposeErrorf tags err with the Decompose operation, keeping the
// sentinel reachable through errors.Is.
func decomposeErrorf(stage string, err error) error {
	return fmt.Errorf("%s: %s: %w", opDecompose, stage, err)
}

// Decompose computes X ≈ U·Σ·Vᵗ from the eigendecomposition of X·Xᵗ.
//
// Implementation:
//   - Stage 1: validate X (non-nil, non-empty, finite).
//   - Stage 2: eigendecompose G = X·Xᵗ, sort eigenpairs by descending
//     eigenvalue, σᵢ = √max(λᵢ, 0).
//   - Stage 3: obtain V per the configured Method (projection + completion,
//     or an independent eigendecomposition of Xᵗ·X).
//   - Stage 4: place σᵢ on the leading diagonal of an n×m Σ, transpose V.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrBadShape, matrix.ErrNaNInf: invalid input.
//   - matrix.ErrMatrixEigenFailed: the eigensolver did not converge.
//   - ErrSolverContract, ErrDegenerateBasis, ErrUnknownMethod.
//
// Either a complete Result or an error is returned, never both.
//
// Complexity:
//   - Time O(n³ + m³ + n·m·min(n,m)) with the default Jacobi solver
//     (times its sweep count), Space O(n² + m² + n·m).
func Decompose(x matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	if err := matrix.ValidateNonEmpty(x); err != nil {
		return nil, decomposeErrorf("validate", err)
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return nil, decomposeErrorf("validate", err)
	}
	src, err := matrix.AsDense(x)
	if err != nil {
		return nil, decomposeErrorf("validate", err)
	}
	n, m := src.Shape()
	log.Debugf("decompose %dx%d, method=%s", n, m, o.method)

	gLeft, err := matrix.GramRows(src)
	if err != nil {
		return nil, decomposeErrorf("X·Xᵗ", err)
	}
	lambda, u, err := eigenDescending(o.solver, gLeft)
	if err != nil {
		return nil, decomposeErrorf("eigen X·Xᵗ", err)
	}
	values := singularValues(lambda)

	var v *matrix.Dense
	switch o.method {
	case MethodProjected:
		truncate(values, o.rankTol)
		if v, err = projectRight(src, u, values); err != nil {
			return nil, decomposeErrorf("project V", err)
		}
		log.Debugf("numerical rank %d of %d (rtol=%g)", countNonZero(values[:min(n, m)]), min(n, m), o.rankTol)
	case MethodTwoSided:
		gRight, gErr := matrix.GramCols(src)
		if gErr != nil {
			return nil, decomposeErrorf("Xᵗ·X", gErr)
		}
		if _, v, err = eigenDescending(o.solver, gRight); err != nil {
			return nil, decomposeErrorf("eigen Xᵗ·X", err)
		}
	default:
		return nil, decomposeErrorf("method", fmt.Errorf("%s: %w", o.method, ErrUnknownMethod))
	}

	sigma, err := buildSigma(n, m, values)
	if err != nil {
		return nil, decomposeErrorf("Σ", err)
	}
	vtRaw, err := matrix.Transpose(v)
	if err != nil {
		return nil, decomposeErrorf("Vᵗ", err)
	}
	vt, err := matrix.AsDense(vtRaw)
	if err != nil {
		return nil, decomposeErrorf("Vᵗ", err)
	}

	return &Result{U: u, Sigma: sigma, Vt: vt, Values: values, Method: o.method}, nil
}

// singularValues maps sorted eigenvalues to √max(λ, 0). Negative λ are
// rounding artifacts of a positive semi-definite Gram matrix and are
// clamped silently.
func singularValues(lambda []float64) []float64 {
	out := make([]float64, len(lambda))
	for i, l := range lambda {
		out[i] = math.Sqrt(math.Max(l, 0))
	}

	return out
}

// truncate zeroes every σ at or below rtol·σ_max in place and returns the
// number of values left non-zero. values must be sorted descending.
func truncate(values []float64, rtol float64) int {
	if len(values) == 0 {
		return 0
	}
	cutoff := rtol * values[0]
	rank := 0
	for i, s := range values {
		if s <= cutoff {
			values[i] = 0
			continue
		}
		rank++
	}

	return rank
}

// maxProjectionDrift bounds |‖Xᵗ·Uᵢ‖/σᵢ − 1|. A genuine singular pair lands
// within rounding of 1; a σᵢ that is eigensolver noise does not.
const maxProjectionDrift = 1e-4

// projectRight builds V (m×m) from the sorted left vectors: column i is
// Xᵗ·Uᵢ/σᵢ for every i < min(n,m) with σᵢ > 0; the remaining columns are an
// orthonormal completion.
//
// values must be sorted descending. A projection whose norm drifts from 1
// by more than maxProjectionDrift means σᵢ is noise: it and every smaller
// value are zeroed in place and their columns completed like the null space.
func projectRight(x, u *matrix.Dense, values []float64) (*matrix.Dense, error) {
	n, m := x.Shape()
	k := min(n, m)
	xt, err := matrix.Transpose(x)
	if err != nil {
		return nil, err
	}
	v, err := matrix.NewDense(m, m)
	if err != nil {
		return nil, err
	}

	filled := make([]bool, m)
	var ui, vi []float64
	for i := 0; i < k && values[i] != 0; i++ {
		if ui, err = u.Col(i); err != nil {
			return nil, err
		}
		if vi, err = matrix.MatVec(xt, ui); err != nil {
			return nil, err
		}
		for j := range vi {
			vi[j] /= values[i]
		}
		nrm := norm2(vi)
		if math.Abs(nrm-1) > maxProjectionDrift {
			log.Debugf("σ%d = %g dropped: projection norm %g", i, values[i], nrm)
			clear(values[i:])
			break
		}
		for j := range vi {
			vi[j] /= nrm
		}
		if err = v.SetCol(i, vi); err != nil {
			return nil, err
		}
		filled[i] = true
	}
	if err = completeBasis(v, filled); err != nil {
		return nil, err
	}

	return v, nil
}

func countNonZero(values []float64) int {
	c := 0
	for _, s := range values {
		if s != 0 {
			c++
		}
	}

	return c
}

// buildSigma returns the n×m matrix with values[i] at (i,i) for i < min(n,m).
func buildSigma(n, m int, values []float64) (*matrix.Dense, error) {
	sigma, err := matrix.NewZeros(n, m)
	if err != nil {
		return nil, err
	}
	for i := 0; i < min(n, m); i++ {
		if err = sigma.Set(i, i, values[i]); err != nil {
			return nil, err
		}
	}

	return sigma, nil
}

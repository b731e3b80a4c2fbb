// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
)

const (
	opReconstruct = "Reconstruct"
	opReconError  = "ReconstructionError"
	opOrthoError  = "OrthonormalityError"
)

// Reconstruct returns U·Σ·Vᵗ as a new n×m matrix.
func (r *Result) Reconstruct() (*matrix.Dense, error) {
	if r == nil {
		return nil, ErrNilResult
	}
	us, err := matrix.Mul(r.U, r.Sigma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	usv, err := matrix.Mul(us, r.Vt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	out, err := matrix.AsDense(usv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	return out, nil
}

// ReconstructionError returns max |(U·Σ·Vᵗ)[i,j] − x[i,j]|.
// x must have the shape the Result was computed for (matrix.ErrDimensionMismatch otherwise).
func (r *Result) ReconstructionError(x matrix.Matrix) (float64, error) {
	if r == nil {
		return 0, ErrNilResult
	}
	rec, err := r.Reconstruct()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opReconError, err)
	}
	d, err := matrix.MaxAbsDiff(rec, x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opReconError, err)
	}

	return d, nil
}

// OrthonormalityError returns the larger of max|UᵗU − I| and max|VVᵗ − I|
// (elementwise). Zero for exactly orthogonal U and V.
func (r *Result) OrthonormalityError() (float64, error) {
	if r == nil {
		return 0, ErrNilResult
	}
	du, err := gramDeviation(r.U)
	if err != nil {
		return 0, fmt.Errorf("%s: U: %w", opOrthoError, err)
	}
	// V·Vᵗ = (Vᵗ)ᵗ·Vᵗ, which is the column Gram matrix of Vᵗ.
	dv, err := gramDeviation(r.Vt)
	if err != nil {
		return 0, fmt.Errorf("%s: V: %w", opOrthoError, err)
	}

	return max(du, dv), nil
}

// gramDeviation returns max|Qᵗ·Q − I| for a square q.
func gramDeviation(q *matrix.Dense) (float64, error) {
	g, err := matrix.GramCols(q)
	if err != nil {
		return 0, err
	}
	id, err := matrix.NewIdentity(q.Cols())
	if err != nil {
		return 0, err
	}

	return matrix.MaxAbsDiff(g, id)
}

// SingularValues returns a copy of the leading min(n,m) singular values,
// the ones placed on Σ's diagonal.
func (r *Result) SingularValues() []float64 {
	if r == nil || r.Sigma == nil {
		return nil
	}
	n, m := r.Sigma.Shape()
	out := make([]float64, min(n, m))
	copy(out, r.Values)

	return out
}

// Rank counts the singular values strictly above rtol·σ_max.
func (r *Result) Rank(rtol float64) int {
	sv := r.SingularValues()
	if len(sv) == 0 {
		return 0
	}
	cutoff := rtol * sv[0]
	rank := 0
	for _, s := range sv {
		if s > cutoff {
			rank++
		}
	}

	return rank
}

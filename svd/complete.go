// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"math"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
)

// minResidual is the smallest norm a candidate direction may keep after
// being orthogonalized against the basis. A basis of k orthonormal vectors in
// R^m leaves some standard basis vector with residual ≥ √((m-k)/m) ≥ 1/√m,
// so anything below this means the placed columns were not orthonormal.
const minResidual = 1e-6

// completeBasis fills every column j of q with filled[j] == false by a unit
// vector orthogonal to all other columns (classical Gram–Schmidt, applied
// twice, against the standard basis).
//
// For each empty slot the standard basis vector with the largest residual is
// chosen, ties going to the lowest index, so the result is deterministic.
//
// Complexity: O(m⁴) in the worst case (m slots × m candidates × m² work),
// fine for the small matrices this package targets.
func completeBasis(q *matrix.Dense, filled []bool) error {
	m := q.Rows()
	basis := make([][]float64, 0, m)
	var (
		col []float64
		err error
	)
	for j := 0; j < m; j++ {
		if !filled[j] {
			continue
		}
		if col, err = q.Col(j); err != nil {
			return err
		}
		basis = append(basis, col)
	}

	for j := 0; j < m; j++ {
		if filled[j] {
			continue
		}
		var (
			best     []float64
			bestNorm float64
		)
		for k := 0; k < m; k++ {
			cand := make([]float64, m)
			cand[k] = 1
			orthogonalize(cand, basis)
			orthogonalize(cand, basis)
			if nrm := norm2(cand); nrm > bestNorm {
				best, bestNorm = cand, nrm
			}
		}
		if bestNorm < minResidual {
			return fmt.Errorf("column %d: best residual %g: %w", j, bestNorm, ErrDegenerateBasis)
		}
		for i := range best {
			best[i] /= bestNorm
		}
		if err = q.SetCol(j, best); err != nil {
			return err
		}
		basis = append(basis, best)
	}

	return nil
}

// orthogonalize removes from v its components along every basis vector.
// The basis is assumed orthonormal.
func orthogonalize(v []float64, basis [][]float64) {
	for _, b := range basis {
		d := dot(v, b)
		for i := range v {
			v[i] -= d * b[i]
		}
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func norm2(v []float64) float64 {
	var s float64
	for _, x := range v {
		s = math.Hypot(s, x)
	}

	return s
}

// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"math"
	"sort"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
)

// descendingOrder returns the permutation that sorts vals in descending
// order. The sort is stable, so equal eigenvalues keep the solver's order.
func descendingOrder(vals []float64) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] > vals[idx[b]] })

	return idx
}

// eigenDescending runs the solver on the symmetric g and returns its
// eigenvalues sorted in descending order together with the eigenvector
// columns reordered by the same permutation.
//
// The solver output is checked against the Eigensolver contract (count,
// shape, finiteness); violations wrap ErrSolverContract. Solver errors are
// returned unchanged so errors.Is still sees matrix.ErrMatrixEigenFailed.
func eigenDescending(solver Eigensolver, g *matrix.Dense) ([]float64, *matrix.Dense, error) {
	n := g.Rows()
	vals, vecs, err := solver.SymEigen(g)
	if err != nil {
		return nil, nil, err
	}
	if len(vals) != n {
		return nil, nil, fmt.Errorf("%d eigenvalues for a %dx%d matrix: %w", len(vals), n, n, ErrSolverContract)
	}
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, fmt.Errorf("eigenvalue %d is %g: %w", i, v, ErrSolverContract)
		}
	}
	if vecs == nil || vecs.Rows() != n || vecs.Cols() != n {
		return nil, nil, fmt.Errorf("eigenvectors are not %dx%d: %w", n, n, ErrSolverContract)
	}
	if err = matrix.ValidateFinite(vecs); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrSolverContract, err)
	}
	src, err := matrix.AsDense(vecs)
	if err != nil {
		return nil, nil, err
	}

	order := descendingOrder(vals)
	sorted := make([]float64, n)
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	var col []float64
	for k, from := range order {
		sorted[k] = vals[from]
		if col, err = src.Col(from); err != nil {
			return nil, nil, err
		}
		if err = out.SetCol(k, col); err != nil {
			return nil, nil, err
		}
	}

	return sorted, out, nil
}

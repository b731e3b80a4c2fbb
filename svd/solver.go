// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
)

const (
	opJacobi = "Jacobi"
	opGonum  = "Gonum"
)

// Compile-time assertions.
var (
	_ Eigensolver = Jacobi{}
	_ Eigensolver = Gonum{}
	_ Eigensolver = EigensolverFunc(nil)
)

// Jacobi solves symmetric eigenproblems with matrix.Eigen.
//
// Tol is relative: rotations stop once every off-diagonal entry is at most
// Tol·‖A‖_F, so the result does not depend on the scale of A. A zero matrix
// is already diagonal and needs no rotation. Zero Tol means DefaultTolerance. MaxIter caps the number
// of rotations; zero means matrix.EigenMaxIter(n).
type Jacobi struct {
	Tol     float64
	MaxIter int
}

// SymEigen implements Eigensolver.
func (j Jacobi) SymEigen(m matrix.Matrix) ([]float64, matrix.Matrix, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opJacobi, err)
	}
	tol := j.Tol
	if tol <= 0 {
		tol = DefaultTolerance
	}
	maxIter := j.MaxIter
	if maxIter <= 0 {
		maxIter = matrix.EigenMaxIter(m.Rows())
	}
	norm, err := matrix.FrobeniusNorm(m)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opJacobi, err)
	}

	vals, vecs, err := matrix.Eigen(m, tol*norm, maxIter)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opJacobi, err)
	}

	return vals, vecs, nil
}

// Gonum solves symmetric eigenproblems with gonum's mat.EigenSym (LAPACK
// dsyev semantics, eigenvalues ascending).
//
// Only the upper triangle is read by gonum, so the input is checked for
// symmetry first with the same relative tolerance Jacobi uses by default.
type Gonum struct{}

// SymEigen implements Eigensolver.
func (Gonum) SymEigen(m matrix.Matrix) ([]float64, matrix.Matrix, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opGonum, err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opGonum, err)
	}
	norm, err := matrix.FrobeniusNorm(m)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opGonum, err)
	}
	if err = matrix.ValidateSymmetric(m, DefaultTolerance*norm); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opGonum, err)
	}

	src, err := matrix.AsDense(m)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opGonum, err)
	}
	n := src.Rows()
	data := make([]float64, 0, n*n)
	for _, row := range src.RawRows() {
		data = append(data, row...)
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, data), true); !ok {
		return nil, nil, fmt.Errorf("%s: EigenSym.Factorize: %w", opGonum, matrix.ErrMatrixEigenFailed)
	}
	vals := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)

	vecs, err := fromGonum(&ev)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opGonum, err)
	}

	return vals, vecs, nil
}

// fromGonum copies a gonum matrix into a *matrix.Dense.
func fromGonum(g mat.Matrix) (*matrix.Dense, error) {
	r, c := g.Dims()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// ToGonum copies m into a gonum *mat.Dense, for callers that want gonum's
// formatting or want to cross-check against mat.SVD.
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	src, err := matrix.AsDense(m)
	if err != nil {
		return nil, err
	}
	r, c := src.Shape()
	data := make([]float64, 0, r*c)
	for _, row := range src.RawRows() {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data), nil
}

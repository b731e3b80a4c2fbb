// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"

	"github.com/VictorSM01/Singular-Value-Decomposition/matrix"
)

// Method selects how the right singular vectors V are obtained.
type Method int

const (
	// MethodProjected derives V from U: Vᵢ = Xᵗ·Uᵢ / σᵢ, completing the null
	// space with Gram–Schmidt. U and V are consistent by construction.
	MethodProjected Method = iota

	// MethodTwoSided eigendecomposes Xᵗ·X independently. Column signs and the
	// null-space basis of U and V are not reconciled.
	MethodTwoSided
)

// String returns the flag spelling of the method.
func (m Method) String() string {
	switch m {
	case MethodProjected:
		return "projected"
	case MethodTwoSided:
		return "two-sided"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "projected" / "two-sided" back to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "projected":
		return MethodProjected, nil
	case "two-sided":
		return MethodTwoSided, nil
	default:
		return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}

// Eigensolver computes the eigendecomposition of a real symmetric matrix.
//
// Contract: for an n×n input it returns n eigenvalues in any order and an
// n×n matrix whose column i is a unit eigenvector for eigenvalue i; the
// columns are mutually orthonormal. Inside a repeated eigenvalue any
// orthonormal basis of the eigenspace is acceptable. Convergence failures
// should wrap matrix.ErrMatrixEigenFailed.
type Eigensolver interface {
	SymEigen(m matrix.Matrix) ([]float64, matrix.Matrix, error)
}

// EigensolverFunc adapts an ordinary function to the Eigensolver interface.
type EigensolverFunc func(m matrix.Matrix) ([]float64, matrix.Matrix, error)

// SymEigen calls f(m).
func (f EigensolverFunc) SymEigen(m matrix.Matrix) ([]float64, matrix.Matrix, error) {
	return f(m)
}

// Result is the decomposition X ≈ U·Σ·Vᵗ of an n×m matrix X.
// The caller owns every field exclusively; Decompose keeps no reference.
type Result struct {
	U      *matrix.Dense // n×n, columns are left singular vectors
	Sigma  *matrix.Dense // n×m, σᵢ on the leading diagonal, zeros elsewhere
	Vt     *matrix.Dense // m×m, rows are right singular vectors
	Values []float64     // n values, descending, all ≥ 0; only the first min(n,m) appear in Sigma
	Method Method        // how Vt was obtained
}

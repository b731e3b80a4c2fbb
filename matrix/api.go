// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ---------- Linear Algebra facades ----------

// EigenSym computes the symmetric eigendecomposition with a tolerance and
// rotation budget scaled to the input: tol = DefaultEigenTol · ‖m‖_F and
// maxIter = EigenMaxIter(n). Scaling m by a power of two scales the
// eigenvalues exactly and leaves the eigenvectors unchanged.
//
// Eigenvalues come back in diagonal order, not sorted.
func EigenSym(m Matrix) ([]float64, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	norm, err := FrobeniusNorm(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	return Eigen(m, DefaultEigenTol*norm, EigenMaxIter(m.Rows()))
}

// ---------- Comparison ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// MaxAbsDiff returns max |a[i,j]-b[i,j]| for identical shapes.
func MaxAbsDiff(a, b Matrix) (float64, error) { return ewMaxAbsDiff(a, b) }

// AsDense returns m itself when it already is a *Dense, otherwise a Dense
// copy read through At. Treat the result as read-only: for *Dense input it
// aliases the caller's matrix.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf("AsDense", err)
	}

	return d, nil
}

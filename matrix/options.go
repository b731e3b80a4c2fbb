// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion (NewDenseFrom) and Set.
	DefaultValidateNaNInf = true

	// DefaultEigenTol is the off-diagonal threshold EigenSym uses, relative
	// to the Frobenius norm of its input.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIterPerCell bounds Jacobi rotations per off-diagonal
	// cell; EigenMaxIter(n) turns it into a total rotation budget.
	DefaultEigenMaxIterPerCell = 64

	// minEigenMaxIter keeps the budget sane for 1×1 and 2×2 inputs.
	minEigenMaxIter = 128
)

// EigenMaxIter returns the default Jacobi rotation budget for an n×n input.
// Classical Jacobi converges quadratically after a few sweeps of n(n-1)/2
// rotations each, so the budget grows with n².
func EigenMaxIter(n int) int {
	budget := DefaultEigenMaxIterPerCell * n * n
	if budget < minEigenMaxIter {
		return minEigenMaxIter
	}

	return budget
}

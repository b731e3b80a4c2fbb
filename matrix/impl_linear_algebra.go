// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// multiplication, transpose, scaling, matrix-vector products, Gram products
// and the Jacobi symmetric eigensolver. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - *Dense operands unlock flat-slice fast paths; any other Matrix is
//     read through At (Mul) or copied into a Dense first (everything else).
//   - Errors are wrapped via matrixErrorf with the op* tags below.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opGramRows  = "GramRows"
	opGramCols  = "GramCols"
	opEigen     = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy.
// The result must be treated as read-only by callers.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := src.r, src.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite alpha).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for k, v := range src.data {
		res.data[k] = alpha * v
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := src.r, src.c
	y := make([]float64, rows)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			y[i] += src.data[base+j] * x[j]
		}
	}

	return y, nil
}

// GramRows computes the row Gram matrix G = X·Xᵗ (n×n for an n×m input).
// Implementation:
//   - Stage 1: Validate X non-nil; view it as *Dense (copy only if needed).
//   - Stage 2: For i ≤ j compute the dot product of rows i and j, write it
//     to both (i,j) and (j,i).
//
// Behavior highlights:
//   - The result is exactly symmetric (bitwise), which keeps Eigen's
//     symmetry validation tolerance-independent.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n²·m), Space O(n²).
func GramRows(x Matrix) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opGramRows, err)
	}
	src, err := asDense(x)
	if err != nil {
		return nil, matrixErrorf(opGramRows, err)
	}

	n, m := src.r, src.c
	g, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opGramRows, err)
	}
	var (
		i, j, k    int
		rowI, rowJ int
		acc        float64
	)
	for i = 0; i < n; i++ {
		rowI = i * m
		for j = i; j < n; j++ {
			rowJ = j * m
			acc = ZeroSum
			for k = 0; k < m; k++ {
				acc += src.data[rowI+k] * src.data[rowJ+k]
			}
			g.data[i*n+j] = acc
			g.data[j*n+i] = acc
		}
	}

	return g, nil
}

// GramCols computes the column Gram matrix G = Xᵗ·X (m×m for an n×m input).
// Same contract as GramRows, with the dot products taken over columns.
//
// Complexity:
//   - Time O(m²·n), Space O(m²).
func GramCols(x Matrix) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opGramCols, err)
	}
	src, err := asDense(x)
	if err != nil {
		return nil, matrixErrorf(opGramCols, err)
	}

	n, m := src.r, src.c
	g, err := NewDense(m, m)
	if err != nil {
		return nil, matrixErrorf(opGramCols, err)
	}
	var (
		i, j, k int
		acc     float64
	)
	for i = 0; i < m; i++ {
		for j = i; j < m; j++ {
			acc = ZeroSum
			for k = 0; k < n; k++ {
				acc += src.data[k*m+i] * src.data[k*m+j]
			}
			g.data[i*m+j] = acc
			g.data[j*m+i] = acc
		}
	}

	return g, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Validate finite, square, symmetric input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and
//     apply a Jacobi rotation that zeroes it, accumulating rotations into Q.
//   - Stage 3: Re-check the largest off-diagonal and read eigenvalues off the diagonal.
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: absolute convergence threshold on the largest off-diagonal |A[p,q]|.
//   - maxIter: cap on the number of rotations (see EigenMaxIter).
//
// Returns:
//   - []float64: eigenvalues in diagonal order (NOT sorted).
//   - *Dense: Q whose columns are the matching orthonormal eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite input or tol), ErrDimensionMismatch
//     (non-square), ErrAsymmetry, ErrMatrixEigenFailed (max off-diagonal > tol
//     after maxIter rotations).
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(n²) per rotation (pivot scan dominates), Space O(n²).
//
// Notes:
//   - Repeated eigenvalues are fine: rotations are orthogonal, so Q stays an
//     orthonormal basis of every eigenspace even when the choice inside it
//     is arbitrary.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if tol < 0 {
		tol = -tol
	}

	// Working copy A (always Dense, never aliasing m) and accumulator Q = I.
	n := m.Rows()
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a := src.Clone().(*Dense)
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter               int
		base               int
		p, r               int     // current pivot indices (p < r)
		maxOff, off        float64 // current max |A[p,r]|
		app, arr, apr      float64 // A[p,p], A[r,r], A[p,r]
		aip, air, qip, qir float64 // A[i,p], A[i,r], Q[i,p], Q[i,r]
		newIP, newIR       float64
		theta, t, c, s     float64 // rotation parameters
	)
	for iter = 0; iter < maxIter; iter++ {
		// Find pivot (p,r) maximizing |A[p,r]| over the strict upper triangle.
		maxOff = NormZero
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff <= tol {
			break
		}

		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]

		// θ = (arr−app)/(2·apr); t = sign(θ)/(|θ|+√(θ²+1)); c = 1/√(1+t²); s = t·c
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			newIP = c*aip - s*air
			newIR = s*aip + c*air
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+r], a.data[r*n+i] = newIR, newIR
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	// Final convergence check covers the iter == maxIter exit.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff > tol {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("%d rotations, off-diagonal %g > %g: %w", iter, maxOff, tol, ErrMatrixEigenFailed))
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// SPDX-License-Identifier: MIT

package svd

import "errors"

// Invalid input (nil, empty, NaN/±Inf) and eigensolver convergence failures
// are reported with the matrix package sentinels (matrix.ErrNilMatrix,
// matrix.ErrBadShape, matrix.ErrNaNInf, matrix.ErrMatrixEigenFailed), wrapped
// with an operation tag. The sentinels below cover what only this package
// can detect.
var (
	// ErrSolverContract signals that an Eigensolver returned eigenpairs that do
	// not match its input: wrong count, wrong vector shape or non-finite values.
	ErrSolverContract = errors.New("svd: eigensolver broke its contract")

	// ErrNilResult is returned by Result helpers invoked on a nil *Result.
	ErrNilResult = errors.New("svd: nil result")

	// ErrUnknownMethod is returned when a Method value is outside the known set.
	ErrUnknownMethod = errors.New("svd: unknown method")
)

// ErrDegenerateBasis is returned when the null-space completion cannot find
// a direction orthogonal to the vectors already placed, which only happens
// when those vectors are far from orthonormal.
var ErrDegenerateBasis = errors.New("svd: cannot complete orthonormal basis")

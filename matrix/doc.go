// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives the SVD
// derivation is built on.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional float64 arrays with
//     bounds-checked At/Set, and Dense, its row-major implementation.
//   - Products: Mul, Transpose, MatVec, Scale and the two Gram products
//     GramRows (X·Xᵗ) and GramCols (Xᵗ·X).
//   - Eigen, a classical Jacobi eigensolver for real symmetric matrices.
//   - Comparison helpers (AllClose, MaxAbsDiff, FrobeniusNorm) used to
//     verify reconstructions.
//
// Every public operation validates its operands, never mutates them and
// reports failures as errors wrapping one of the sentinels in errors.go,
// so callers can match with errors.Is.
//
// Matrices here are meant to be small and dense; all kernels are O(n³) or
// better with deterministic loop orders.
package matrix

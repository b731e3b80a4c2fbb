// SPDX-License-Identifier: MIT

// Package svd derives the Singular Value Decomposition of a small real
// matrix from symmetric eigendecompositions of its Gram products, instead of
// calling a library SVD routine.
//
// For X of shape n×m, Decompose returns U (n×n), Σ (n×m) and Vᵗ (m×m) with
// U·Σ·Vᵗ ≈ X and U, V column-orthonormal:
//
//	G = X·Xᵗ = U·Λ·Uᵗ          (eigendecomposition, Λ sorted descending)
//	σᵢ = √max(λᵢ, 0)           (negative rounding noise is clamped)
//	Σ[i,i] = σᵢ, i < min(n,m)
//
// Two ways of obtaining V are offered:
//
//   - MethodProjected (default): Vᵢ = Xᵗ·Uᵢ / σᵢ for every non-zero σᵢ, with a
//     Gram–Schmidt completion for the null space. U and V then share signs
//     and ordering by construction, so the reconstruction always holds.
//   - MethodTwoSided: V comes from a second, independent eigendecomposition of
//     Xᵗ·X. This is the textbook derivation; because eigenvectors are only
//     defined up to sign (and up to rotation inside repeated eigenvalues),
//     columns of U and V may disagree and U·Σ·Vᵗ is NOT guaranteed to equal X.
//
// The eigensolver is a collaborator (Eigensolver). Jacobi wraps the
// package matrix rotation solver; Gonum wraps gonum's mat.EigenSym. Signs of
// individual singular vectors depend on the solver, so compare singular
// values and reconstruction error, not raw U/V entries.
//
// Decompose is a pure function: it never mutates its input, keeps no state
// and is safe for concurrent use.
package svd

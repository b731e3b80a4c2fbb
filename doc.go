// Package decomposition computes Singular Value Decompositions of small real
// matrices from symmetric eigendecompositions of their Gram products.
//
// 🚀 What is inside?
//
//	matrix/       — Dense storage, products, X·Xᵗ / Xᵗ·X, Jacobi symmetric eigensolver
//	svd/          — Decompose (U, Σ, Vᵗ), pluggable Eigensolver (Jacobi, gonum), verification helpers
//	cmd/svddemo/  — command-line demo: parse a matrix literal, print the factors, plot σ
//
// ✨ Quick start
//
//	x, _ := matrix.NewDenseFrom([][]float64{{4, 0, 2}, {3, -5, 1}, {2, 3, 0}})
//	res, err := svd.Decompose(x)
//	if err != nil {
//		// matrix.ErrNaNInf, matrix.ErrMatrixEigenFailed, ...
//	}
//	fmt.Println(res.SingularValues()) // ≈ [6.6234 4.8450 0.8102]
//	e, _ := res.ReconstructionError(x) // < 1e-10
//
// Singular vectors are defined only up to sign; compare singular values and
// reconstruction error, never raw U/V entries.
package decomposition

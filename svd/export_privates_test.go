// SPDX-License-Identifier: MIT

package svd

// Test bridge: exposes unexported helpers to the svd_test package only.
// Lives in a _test.go file, so none of it reaches production builds.

var (
	ExportedCompleteBasis   = completeBasis
	ExportedEigenDescending = eigenDescending
	ExportedTruncate        = truncate
	ExportedBuildSigma      = buildSigma
)

// ExportedOptionsSnapshot is a read-only view of the resolved options.
type ExportedOptionsSnapshot struct {
	Solver  Eigensolver
	Method  Method
	RankTol float64
	Tol     float64
	MaxIter int
}

// ExportedGatherOptions resolves opts exactly as Decompose does.
func ExportedGatherOptions(opts ...Option) ExportedOptionsSnapshot {
	o := gatherOptions(opts...)

	return ExportedOptionsSnapshot{
		Solver:  o.solver,
		Method:  o.method,
		RankTol: o.rankTol,
		Tol:     o.tol,
		MaxIter: o.maxIter,
	}
}

// SPDX-License-Identifier: MIT

// Package svd: functional configuration for Decompose. This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective config.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package svd

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMethod derives V from U (see MethodProjected).
	DefaultMethod = MethodProjected

	// DefaultRankTolerance is the relative cutoff below which σᵢ counts as
	// zero under MethodProjected: σᵢ ≤ DefaultRankTolerance·σ_max.
	// Eigenvalues of X·Xᵗ carry rounding noise of order ε·σ_max², i.e. σ noise
	// of order √ε·σ_max ≈ 1.5e-8·σ_max; the cutoff sits above that floor.
	DefaultRankTolerance = 1e-7

	// DefaultTolerance is the relative Jacobi off-diagonal threshold used when
	// no Eigensolver is supplied (scaled by ‖G‖_F per Gram matrix).
	DefaultTolerance = 1e-13

	// DefaultMaxIter = 0 lets the Jacobi solver pick matrix.EigenMaxIter(n).
	DefaultMaxIter = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilSolver        = "svd: WithEigensolver: solver must not be nil"
	panicRankTolInvalid   = "svd: WithRankTolerance: rtol must be finite and in [0, 1)"
	panicToleranceInvalid = "svd: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "svd: WithMaxIter: n must be >= 0"
	panicMethodInvalid    = "svd: WithMethod: unknown method %d"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; Decompose accepts `...Option` and resolves them via
// gatherOptions.
type Options struct {
	solver  Eigensolver // nil ⇒ Jacobi{tol, maxIter}
	method  Method      // DefaultMethod
	rankTol float64     // DefaultRankTolerance
	tol     float64     // DefaultTolerance (default Jacobi only)
	maxIter int         // DefaultMaxIter (default Jacobi only)
}

// defaultOptions returns the zero-config Options.
func defaultOptions() Options {
	return Options{
		method:  DefaultMethod,
		rankTol: DefaultRankTolerance,
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIter,
	}
}

// gatherOptions applies opts over the defaults and materializes the
// eigensolver, so Decompose never sees a nil solver.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.solver == nil {
		o.solver = Jacobi{Tol: o.tol, MaxIter: o.maxIter}
	}

	return o
}

// WithEigensolver replaces the default Jacobi solver, e.g. with Gonum{}.
// WithTolerance and WithMaxIter are ignored once a solver is supplied.
// Panics on nil.
func WithEigensolver(s Eigensolver) Option {
	if s == nil {
		panic(panicNilSolver)
	}

	return func(o *Options) { o.solver = s }
}

// WithMethod selects how V is obtained. Panics on unknown values.
func WithMethod(m Method) Option {
	if m != MethodProjected && m != MethodTwoSided {
		panic(fmt.Sprintf(panicMethodInvalid, int(m)))
	}

	return func(o *Options) { o.method = m }
}

// WithRankTolerance sets the relative σ cutoff used by MethodProjected.
// rtol = 0 treats only exact zeros as zero. Panics outside [0, 1).
func WithRankTolerance(rtol float64) Option {
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || rtol < 0 || rtol >= 1 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = rtol }
}

// WithTolerance sets the relative convergence threshold of the default
// Jacobi solver. Panics on non-finite or non-positive values.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIter caps the rotations of the default Jacobi solver per
// eigendecomposition; 0 restores the size-dependent default. Panics on n < 0.
func WithMaxIter(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

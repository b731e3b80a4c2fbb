// SPDX-License-Identifier: MIT

// Package matrix: element-wise reductions used to compare matrices.
// All kernels validate operands first, then walk a flat buffer (*Dense)
// or fall back to At in fixed i→j order.

package matrix

import "math"

const (
	opAllClose   = "AllClose"
	opMaxAbsDiff = "MaxAbsDiff"
	opFrobenius  = "FrobeniusNorm"
)

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b|.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k, av := range da.data {
		bv := db.data[k]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// ewMaxAbsDiff returns the largest element-wise absolute difference.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func ewMaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	da, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	db, err := asDense(b)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	maxDiff := NormZero
	for k, av := range da.data {
		if d := math.Abs(av - db.data[k]); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}

// FrobeniusNorm returns √(Σ m[i,j]²), accumulated with math.Hypot so that
// large entries do not overflow the running sum.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	norm := NormZero
	for _, v := range d.data {
		norm = math.Hypot(norm, v)
	}

	return norm, nil
}

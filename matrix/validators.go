// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks
//    over gonum mat.Matrix values.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// AI-Hints:
//  - Use ValidateSymmetric before spectral methods (Jacobi, Lanczos) to fail fast.
//  - Use ValidateVecLen for any MatVec-like operations.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is square.
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	r, c := m.Dims()
	if r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks squareness, finiteness, and |A[i,j]-A[j,i]| ≤ eps.
// Runs on the upper triangle only.
// Errors: ErrNonSquare, ErrNaNInf, ErrAsymmetry.
// Complexity: O(n²) for dense inputs; O(nnz·log) for *CSR.
func ValidateSymmetric(m mat.Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if _, ok := m.(*CSR); ok {
		// symmetric and finite by construction (NewSymmetricCSR)
		return nil
	}

	n, _ := m.Dims()
	var aij, aji float64
	for i := 0; i < n; i++ {
		if v := m.At(i, i); math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateSymmetric", ErrNaNInf)
		}
		for j := i + 1; j < n; j++ {
			aij, aji = m.At(i, j), m.At(j, i)
			if math.IsNaN(aij) || math.IsInf(aij, 0) || math.IsNaN(aji) || math.IsInf(aji, 0) {
				return validatorErrorf("ValidateSymmetric", ErrNaNInf)
			}
			if math.Abs(aij-aji) > eps {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

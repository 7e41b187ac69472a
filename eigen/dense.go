// SPDX-License-Identifier: MIT
// Package: eigen
//
// File: dense.go
// Role: Full-spectrum reference solver on top of gonum's mat.EigenSym.
// Complexity: O(n³) time, O(n²) memory; searchBreadth is ignored.

package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// opDense tags errors raised by Dense.
const opDense = "Dense.TopEigenvalues"

// Dense computes the whole spectrum with gonum's symmetric eigensolver and
// truncates it to the largest-magnitude values. It is exact up to LAPACK
// accuracy and serves as the ground truth for the iterative solvers.
type Dense struct{}

// TopEigenvalues implements Solver.
func (Dense) TopEigenvalues(m mat.Symmetric, count, _ int) ([]float64, error) {
	if _, err := validateRequest(opDense, m, count); err != nil {
		return nil, err
	}

	var es mat.EigenSym
	if ok := es.Factorize(m, false); !ok {
		return nil, fmt.Errorf("%s: factorization failed: %w", opDense, ErrNoConvergence)
	}

	return selectLargestMagnitude(es.Values(nil), count), nil
}

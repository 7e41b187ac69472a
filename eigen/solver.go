// SPDX-License-Identifier: MIT
// Package: eigen
//
// File: solver.go
// Role: The Solver contract shared by all eigenvalue back-ends, plus the
//       request validation and largest-magnitude selection they have in common.
// Ordering contract:
//   - TopEigenvalues returns the `count` eigenvalues of largest |λ|, sorted
//     ascending by algebraic value. Ties in |λ| prefer the larger algebraic value.
// AI-HINT (file):
//   - count must satisfy 1 ≤ count < n; asking for the full spectrum of an
//     n×n matrix is ErrInvalidCount, as it is for ARPACK-style truncated solvers.

package eigen

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for eigen solvers.
var (
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("eigen: matrix is nil")

	// ErrInvalidCount indicates count ∉ [1, n−1] for an n×n matrix.
	ErrInvalidCount = errors.New("eigen: requested eigenvalue count out of range")

	// ErrNoConvergence indicates the iteration budget was exhausted, or the
	// underlying factorization reported failure.
	ErrNoConvergence = errors.New("eigen: eigen decomposition did not converge")
)

// Solver returns the `count` eigenvalues of largest magnitude of a real
// symmetric matrix. searchBreadth is a tuning knob (Krylov subspace size for
// iterative solvers); implementations clamp it into (count, n] and may ignore it.
//
// Implementations must be safe for concurrent use and free of side effects.
type Solver interface {
	TopEigenvalues(m mat.Symmetric, count, searchBreadth int) ([]float64, error)
}

// SolverFunc adapts an ordinary function to the Solver interface.
type SolverFunc func(m mat.Symmetric, count, searchBreadth int) ([]float64, error)

// TopEigenvalues calls f(m, count, searchBreadth).
func (f SolverFunc) TopEigenvalues(m mat.Symmetric, count, searchBreadth int) ([]float64, error) {
	return f(m, count, searchBreadth)
}

// validateRequest checks m and count and returns n.
func validateRequest(op string, m mat.Symmetric, count int) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("%s: %w", op, ErrNilMatrix)
	}
	n := m.SymmetricDim()
	if count < 1 || count >= n {
		return 0, fmt.Errorf("%s: count=%d for n=%d (need 1 ≤ count < n): %w", op, count, n, ErrInvalidCount)
	}

	return n, nil
}

// ClampSearchBreadth maps a requested subspace size into the admissible range
// (count, n]. Values not above count fall back to min(n, max(2·count+1, 20)),
// the usual ARPACK default.
func ClampSearchBreadth(searchBreadth, count, n int) int {
	if searchBreadth <= count {
		searchBreadth = max(2*count+1, 20)
	}

	return min(searchBreadth, n)
}

// selectLargestMagnitude picks the k values of largest |λ| from vals and
// returns them sorted ascending. vals is not modified.
func selectLargestMagnitude(vals []float64, k int) []float64 {
	byMag := append([]float64(nil), vals...)
	sort.SliceStable(byMag, func(a, b int) bool {
		ma, mb := math.Abs(byMag[a]), math.Abs(byMag[b])
		if ma != mb {
			return ma > mb
		}
		return byMag[a] > byMag[b]
	})
	out := byMag[:k:k]
	sort.Float64s(out)

	return out
}

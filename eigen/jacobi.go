// SPDX-License-Identifier: MIT
// Package: eigen
//
// File: jacobi.go
// Role: Classical Jacobi rotation solver (largest off-diagonal pivot).
// Determinism:
//   - Fixed i→j pivot scan and fixed update order produce stable results.
// Complexity:
//   - O(n²) per pivot search, O(n) per rotation; typically O(n²) rotations.
// AI-Hints:
//   - Good defaults for Laplacians (entries in [-1,1]): Tol≈1e-12.
//   - Prefer Lanczos for n in the thousands; Jacobi is for small dense matrices.

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvspectra/matrix"
	"gonum.org/v1/gonum/mat"
)

const (
	opJacobi = "Jacobi.TopEigenvalues"

	// DefaultJacobiTol is the off-diagonal magnitude below which rotations stop.
	DefaultJacobiTol = 1e-12

	// jacobiRotationsPerEntry scales the default rotation cap with n².
	jacobiRotationsPerEntry = 50
)

// Jacobi diagonalizes the matrix by repeated plane rotations and truncates the
// diagonal to the largest-magnitude values. searchBreadth is ignored.
type Jacobi struct {
	// Tol is the convergence threshold on max |A[p,q]|, p≠q. Zero means DefaultJacobiTol.
	Tol float64
	// MaxRotations caps the number of rotations. Zero means 50·n².
	MaxRotations int
}

// TopEigenvalues implements Solver.
//
// Implementation:
//   - Stage 1: Validate the request and symmetry within Tol.
//   - Stage 2: Copy into a flat row-major work array.
//   - Stage 3: Repeatedly pick (p,q) with the largest |A[p,q]| and rotate it to zero.
//   - Stage 4: Truncate the diagonal to the largest-magnitude values.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidCount, matrix.ErrAsymmetry / matrix.ErrNaNInf,
//     ErrNoConvergence when MaxRotations is exhausted.
func (s Jacobi) TopEigenvalues(m mat.Symmetric, count, _ int) ([]float64, error) {
	n, err := validateRequest(opJacobi, m, count)
	if err != nil {
		return nil, err
	}
	tol := s.Tol
	if tol <= 0 {
		tol = DefaultJacobiTol
	}
	if err = matrix.ValidateSymmetric(m, tol); err != nil {
		return nil, fmt.Errorf("%s: %w", opJacobi, err)
	}
	maxRot := s.MaxRotations
	if maxRot <= 0 {
		maxRot = jacobiRotationsPerEntry * n * n
	}

	a := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a[i*n+j] = m.At(i, j)
		}
	}

	var (
		iter            int     // rotation counter
		p, q            int     // current pivot indices
		maxOff, off     float64 // largest |A[p,q]| and scan temporary
		app, aqq, apq   float64 // pivot block entries
		aip, aiq        float64 // row temporaries
		theta, t, c, sn float64 // rotation parameters
		converged       bool
	)
	for iter = 0; iter <= maxRot; iter++ {
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(a[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}
		if iter == maxRot {
			break
		}

		app, aqq, apq = a[p*n+p], a[q*n+q], a[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		sn = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = a[i*n+p], a[i*n+q]
			a[i*n+p] = c*aip - sn*aiq
			a[p*n+i] = a[i*n+p]
			a[i*n+q] = sn*aip + c*aiq
			a[q*n+i] = a[i*n+q]
		}
		a[p*n+p] = c*c*app - 2*c*sn*apq + sn*sn*aqq
		a[q*n+q] = sn*sn*app + 2*c*sn*apq + c*c*aqq
		a[p*n+q], a[q*n+p] = 0, 0
	}
	if !converged {
		return nil, fmt.Errorf("%s: off-diagonal %.3g after %d rotations: %w", opJacobi, maxOff, maxRot, ErrNoConvergence)
	}

	diag := make([]float64, n)
	for i = 0; i < n; i++ {
		diag[i] = a[i*n+i]
	}

	return selectLargestMagnitude(diag, count), nil
}

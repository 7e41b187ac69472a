// SPDX-License-Identifier: MIT
// Package: spectral
//
// File: extractor.go
// Role: Per-graph spectral feature: the largest-magnitude eigenvalues of the
//       normalized Laplacian, shaped to a fixed length.
// Behavior highlights:
//   - n > d: request d eigenvalues and use them as-is.
//   - n ≤ d: request n−1 eigenvalues, then emit [0, λ…, 0…] of length d.
//     The leading zero stands in for the trivial Laplacian eigenvalue that a
//     truncated solver cannot return when count must stay below n.
//   - Stateless apart from the solver, so one Extractor may serve many goroutines
//     when the solver does.

package spectral

import (
	"fmt"

	"github.com/katalvlaran/lvspectra/core"
	"github.com/katalvlaran/lvspectra/eigen"
	"github.com/katalvlaran/lvspectra/matrix"
)

// Vector is one graph's feature row.
type Vector []float64

// Extractor computes spectral features for single graphs.
type Extractor struct {
	solver        eigen.Solver
	breadthFactor int
}

// NewExtractor returns an Extractor backed by solver. The search breadth handed
// to the solver is breadthFactor·d; non-positive factors use
// DefaultSearchBreadthFactor.
func NewExtractor(solver eigen.Solver, breadthFactor int) *Extractor {
	if breadthFactor < 1 {
		breadthFactor = DefaultSearchBreadthFactor
	}
	return &Extractor{solver: solver, breadthFactor: breadthFactor}
}

// Padded reports whether a graph with n nodes takes the zero-padded branch.
func Padded(n, dimensions int) bool { return n <= dimensions }

// ComputeFeature returns the length-d spectral feature of g.
//
// Nodes must be labelled "0".."n-1"; that order indexes the Laplacian.
//
// Errors:
//   - ErrNilGraph, ErrInvalidDimension, ErrInvalidGraphSize (n < 2).
//   - core.ErrNonCanonicalIDs from the node labelling.
//   - ErrSolverFailure (wrapping the solver's own error) on any solver failure.
func (x *Extractor) ComputeFeature(g *core.Graph, dimensions int) (Vector, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if dimensions < 1 {
		return nil, fmt.Errorf("ComputeFeature: d=%d: %w", dimensions, ErrInvalidDimension)
	}
	n := g.VertexCount()
	if n < 2 {
		return nil, fmt.Errorf("ComputeFeature: n=%d: %w", n, ErrInvalidGraphSize)
	}

	order, err := g.CanonicalOrder()
	if err != nil {
		return nil, fmt.Errorf("ComputeFeature: %w", err)
	}
	lap, err := matrix.NormalizedLaplacian(g, order)
	if err != nil {
		return nil, fmt.Errorf("ComputeFeature: %w", err)
	}

	count := dimensions
	if Padded(n, dimensions) {
		count = n - 1
	}
	vals, err := x.solver.TopEigenvalues(lap, count, x.breadthFactor*dimensions)
	if err != nil {
		return nil, fmt.Errorf("%w: n=%d count=%d: %w", ErrSolverFailure, n, count, err)
	}
	if len(vals) != count {
		return nil, fmt.Errorf("%w: n=%d: got %d eigenvalues, want %d", ErrSolverFailure, n, len(vals), count)
	}

	out := make(Vector, dimensions)
	if Padded(n, dimensions) {
		copy(out[1:], vals)
	} else {
		copy(out, vals)
	}

	return out, nil
}

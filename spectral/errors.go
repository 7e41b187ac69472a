// SPDX-License-Identifier: MIT
// Package: spectral
//
// File: errors.go
// Role: Sentinel errors. Callers branch with errors.Is; context (graph index,
//       node count, wrapped solver error) is added with %w at the failure site.

package spectral

import "errors"

var (
	// ErrInvalidGraphSize indicates a graph with fewer than two nodes.
	ErrInvalidGraphSize = errors.New("spectral: graph must have at least 2 nodes")

	// ErrSolverFailure wraps any error returned by the eigenvalue solver.
	ErrSolverFailure = errors.New("spectral: eigenvalue solver failed")

	// ErrNotFitted is returned by GetEmbedding before a successful Fit.
	ErrNotFitted = errors.New("spectral: embedder is not fitted")

	// ErrEmptyCollection indicates Fit was called with no graphs.
	ErrEmptyCollection = errors.New("spectral: graph collection is empty")

	// ErrNilGraph indicates a nil *core.Graph in the input.
	ErrNilGraph = errors.New("spectral: graph is nil")

	// ErrInvalidDimension indicates a target dimension below 1.
	ErrInvalidDimension = errors.New("spectral: dimensions must be >= 1")

	// ErrInvalidOption indicates a rejected constructor option.
	ErrInvalidOption = errors.New("spectral: invalid option")
)

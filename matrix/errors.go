// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions return these sentinels (wrapped with an operation tag)
// and tests check them via errors.Is. Nothing here panics on user input except
// the gonum mat.Matrix At accessor, whose interface contract requires it.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and grepping.
//
// ERROR PRIORITY (documented, enforced in tests):
// graph nil -> unknown vertex / order mismatch -> invalid weight -> shape -> symmetry.

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates that the node order references a vertex that
	// is not in the graph, or repeats one.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrOrderMismatch indicates that the node order does not cover every
	// vertex of the graph exactly once.
	ErrOrderMismatch = errors.New("matrix: node order does not match vertex set")

	// ErrInvalidWeight indicates a NaN, ±Inf or negative edge weight at ingestion.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")

	// ErrBadShape is returned when a requested dimension is invalid (n<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a triplet index is outside [0,n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand lengths (e.g. MulVec).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

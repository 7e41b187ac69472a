// Package eigen provides the eigenvalue oracle used by the spectral embedder.
//
// Every back-end implements Solver:
//
//	TopEigenvalues(m mat.Symmetric, count, searchBreadth int) ([]float64, error)
//
// returning the count eigenvalues of largest magnitude, ascending.
//
//   - Lanczos: truncated, thick-restart Lanczos with full reorthogonalization
//     and deflation for repeated eigenvalues. Default. Scales with the number
//     of non-zeros of a *matrix.CSR and falls back to Dense on moderate n
//     when it runs out of restarts.
//   - Dense:   full decomposition via gonum mat.EigenSym. Exact reference.
//   - Jacobi:  classical rotation method on a dense copy, dependency-light.
//
// Errors are sentinels: ErrNilMatrix, ErrInvalidCount (count ∉ [1, n−1]) and
// ErrNoConvergence.
package eigen

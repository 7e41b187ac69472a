// Package spectral embeds whole graphs as fixed-length vectors of normalized
// Laplacian eigenvalues.
//
// Two layers:
//
//   - Extractor.ComputeFeature maps one graph to a Vector of length d.
//     Graphs with n > d contribute their d eigenvalues of largest magnitude,
//     ascending. Graphs with 2 ≤ n ≤ d contribute n−1 such eigenvalues behind
//     one leading zero, followed by d−n zeros.
//   - Embedder.Fit maps a collection to an m×d *mat.Dense, row i for graph i.
//     The collection is validated up front and a failed Fit never replaces a
//     previously fitted table.
//
// Example:
//
//	e, err := spectral.New(spectral.WithDimensions(16), spectral.WithWorkers(4))
//	if err != nil { ... }
//	if err = e.Fit(ctx, graphs); err != nil { ... }
//	table, _ := e.GetEmbedding()
//
// Errors are sentinels (ErrInvalidGraphSize, ErrSolverFailure, ErrNotFitted, ...)
// matched with errors.Is. Solver errors stay reachable through the wrap, so
// errors.Is(err, eigen.ErrNoConvergence) also works.
package spectral

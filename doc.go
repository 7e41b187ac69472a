// Package lvspectra turns whole graphs into fixed-length numeric vectors built
// from the spectrum of their normalized Laplacian.
//
// What is in the box:
//
//	core/     - thread-safe undirected Graph, Vertex and Edge types
//	builder/  - deterministic graph fixtures (path, cycle, star, wheel, grid, G(n,p))
//	matrix/   - sparse CSR storage and the normalized Laplacian
//	eigen/    - eigenvalue solvers: Lanczos (default), dense gonum, Jacobi
//	spectral/ - per-graph feature extraction and the batch Embedder
//	graphio/  - YAML graph collections in, CSV embedding tables out
//	config/   - YAML + .env + LVSPECTRA_* settings
//	metrics/  - Prometheus collectors
//
// Quick start:
//
//	e, _ := spectral.New(spectral.WithDimensions(4))
//	_ = e.Fit(ctx, []*core.Graph{builder.MustBuild(builder.Path(3))})
//	table, _ := e.GetEmbedding() // 1×4: [0 1 2 0]
//
// Graphs with at most d nodes are zero-padded: one leading zero, then their
// n−1 eigenvalues of largest magnitude, then trailing zeros. Larger graphs
// contribute their d eigenvalues of largest magnitude, ascending.
//
//	go install github.com/katalvlaran/lvspectra/cmd/lvspectra@latest
package lvspectra

// Package matrix offers sparse matrix views of core graphs for spectral work.
//
// The matrix package provides:
//
//   - CSR: an immutable symmetric compressed-sparse-row matrix implementing
//     gonum's mat.Symmetric, with O(nnz) MulVecTo for iterative eigensolvers.
//   - Adjacency and NormalizedLaplacian: graph adapters that materialize a
//     core.Graph under an explicit node order.
//   - Validators and sentinel errors shared by the eigen package.
//
// Sparse storage keeps memory at O(V + E), so large sparse graphs can be
// embedded with a truncated solver without ever forming an n×n dense array.
package matrix

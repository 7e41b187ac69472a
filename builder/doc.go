// Package builder provides reusable “functional‐options”‐style graph
// constructors producing core.Graph fixtures with canonical vertex IDs.
//
// The package offers the following key components:
//
//   - BuildGraph: the single orchestrator applying Constructors in order.
//   - Constructors: Empty, Path, Cycle, Complete, Star, Wheel, Grid, RandomSparse.
//   - Options: WithIDScheme, WithSeed, WithRand, WithWeightFn.
//
// Guarantees:
//
//   - Deterministic output for equal inputs and seeds.
//   - Default IDs are "0".."n-1", matching the node order used by
//     matrix.NormalizedLaplacian and the spectral embedder.
//   - Structured errors wrapping sentinel values (ErrTooFewVertices, ...).
//
// The closed-form topologies double as numerical fixtures: their normalized
// Laplacian spectra are known analytically (P_n: 1−cos(πk/(n−1)),
// C_n: 1−cos(2πk/n), K_n: 0 and n/(n−1), S_n: 0, 1, 2), which the spectral
// tests rely on.
package builder

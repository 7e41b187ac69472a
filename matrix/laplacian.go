// SPDX-License-Identifier: MIT
// Package: matrix
//
// File: laplacian.go
// Role: Graph-aware adapters: weighted adjacency and symmetric normalized
//       Laplacian of a core.Graph under an explicit node order.
// Determinism:
//   - Row/column i is order[i]; equal graphs and orders give identical matrices.
// AI-HINT (file):
//   - Pass g.CanonicalOrder() as order for the spectral pipeline.
//   - Isolated vertices produce an all-zero row and column (not a 1 on the diagonal).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvspectra/core"
)

// symmetryEps is the tolerance used when assembling matrices derived from
// undirected graphs; they are symmetric by construction, so it is tight.
const symmetryEps = 1e-12

// indexOrder maps each ID in order to its position and checks it is a
// permutation of the graph's vertex set.
func indexOrder(g *core.Graph, order []string) (map[string]int, error) {
	idx := make(map[string]int, len(order))
	for i, id := range order {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("vertex %q: %w", id, ErrUnknownVertex)
		}
		if _, dup := idx[id]; dup {
			return nil, fmt.Errorf("vertex %q repeated: %w", id, ErrUnknownVertex)
		}
		idx[id] = i
	}
	if n := g.VertexCount(); n != len(order) {
		return nil, fmt.Errorf("order has %d ids, graph has %d vertices: %w", len(order), n, ErrOrderMismatch)
	}

	return idx, nil
}

// adjacencyTriplets lists A[i,j] for every edge (both orientations; a self-loop once).
func adjacencyTriplets(g *core.Graph, idx map[string]int) ([]Triplet, error) {
	weighted := g.Weighted()
	edges := g.Edges()
	out := make([]Triplet, 0, 2*len(edges))
	for _, e := range edges {
		w := 1.0
		if weighted {
			w = e.Weight
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("edge %s w=%g: %w", e.ID, w, ErrInvalidWeight)
		}
		i, j := idx[e.From], idx[e.To]
		out = append(out, Triplet{Row: i, Col: j, Val: w})
		if i != j {
			out = append(out, Triplet{Row: j, Col: i, Val: w})
		}
	}

	return out, nil
}

// Adjacency returns the weighted adjacency matrix of g with rows in order.
// Unweighted graphs use weight 1 for every edge.
//
// Errors:
//   - ErrGraphNil, ErrUnknownVertex, ErrOrderMismatch, ErrInvalidWeight, ErrBadShape (empty graph).
//
// Complexity:
//   - Time O(V + E·log E), Space O(V + E).
func Adjacency(g *core.Graph, order []string) (*CSR, error) {
	if g == nil {
		return nil, fmt.Errorf("Adjacency: %w", ErrGraphNil)
	}
	idx, err := indexOrder(g, order)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}
	trips, err := adjacencyTriplets(g, idx)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}
	a, err := NewSymmetricCSR(len(order), trips, symmetryEps)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}

	return a, nil
}

// NormalizedLaplacian returns L = I − D^{-1/2}·A·D^{-1/2} for g with rows in order.
//
// Implementation:
//   - Stage 1: Build the weighted adjacency A (see Adjacency).
//   - Stage 2: d_i = Σ_j A[i,j] (a self-loop contributes its weight once).
//   - Stage 3: L[i,i] = 1 − A[i,i]/d_i and L[i,j] = −A[i,j]/√(d_i·d_j) for d_i > 0;
//     rows and columns of vertices with d_i == 0 are zero.
//
// Behavior highlights:
//   - Eigenvalues of L lie in [0, 2]; the multiplicity of 0 equals the number
//     of connected components with at least one edge.
//
// Errors:
//   - Same as Adjacency.
//
// Complexity:
//   - Time O(V + E·log E), Space O(V + E).
func NormalizedLaplacian(g *core.Graph, order []string) (*CSR, error) {
	a, err := Adjacency(g, order)
	if err != nil {
		return nil, fmt.Errorf("NormalizedLaplacian: %w", err)
	}

	n := a.SymmetricDim()
	invSqrt := make([]float64, n)
	for i := 0; i < n; i++ {
		_, vals := a.Row(i)
		var d float64
		for _, v := range vals {
			d += v
		}
		if d > 0 {
			invSqrt[i] = 1 / math.Sqrt(d)
		}
	}

	trips := make([]Triplet, 0, a.NNZ()+n)
	for i := 0; i < n; i++ {
		if invSqrt[i] == 0 {
			continue
		}
		trips = append(trips, Triplet{Row: i, Col: i, Val: 1})
		cols, vals := a.Row(i)
		for k, j := range cols {
			// D^{-1/2}(D−A)D^{-1/2}: the diagonal term folds into the identity above.
			trips = append(trips, Triplet{Row: i, Col: j, Val: -vals[k] * invSqrt[i] * invSqrt[j]})
		}
	}

	l, err := NewSymmetricCSR(n, trips, symmetryEps)
	if err != nil {
		return nil, fmt.Errorf("NormalizedLaplacian: %w", err)
	}

	return l, nil
}

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade: configuration getters, canonical
//       node ordering and cloning.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go.
// AI-HINT (file):
//   - Call CanonicalOrder() before materializing any matrix; it is the only
//     ordering the spectral pipeline accepts.

package core

import (
	"fmt"
	"strconv"
)

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight and matrix views
// treat every edge as weight 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (from==to) are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// CanonicalOrder returns the node order "0","1",...,"n-1" for an n-vertex graph.
//
// Implementation:
//   - Stage 1: Snapshot the vertex set under muVert.
//   - Stage 2: Require that every decimal index in [0,n) is present.
//
// Returns:
//   - []string: IDs in index order; row i of any matrix view is vertex "i".
//
// Errors:
//   - ErrNonCanonicalIDs if some index is missing (which, with |V|==n,
//     also means some vertex carries a non-canonical ID).
//
// Complexity:
//   - Time O(V), Space O(V).
//
// AI-Hints:
//   - Build graphs through builder.* constructors to get canonical IDs for free.
func (g *Graph) CanonicalOrder() ([]string, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	n := len(g.vertices)
	order := make([]string, n)
	for i := 0; i < n; i++ {
		id := strconv.Itoa(i)
		if _, ok := g.vertices[id]; !ok {
			return nil, fmt.Errorf("CanonicalOrder: vertex %q missing of %d: %w", id, n, ErrNonCanonicalIDs)
		}
		order[i] = id
	}

	return order, nil
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency. Vertex Metadata maps are shared.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		weighted:      g.weighted,
		allowLoops:    g.allowLoops,
		nextEdgeID:    g.nextEdgeID,
		vertices:      make(map[string]*Vertex, len(g.vertices)),
		edges:         make(map[string]*Edge, len(g.edges)),
		adjacencyList: make(map[string]map[string]string, len(g.adjacencyList)),
	}
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
	}
	for u, nbrs := range g.adjacencyList {
		inner := make(map[string]string, len(nbrs))
		for v, eid := range nbrs {
			inner[v] = eid
		}
		clone.adjacencyList[u] = inner
	}

	return clone
}

// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount,
//       plus neighborhood and weighted degree queries.
// Determinism:
//   - Edges() returns edges sorted by numeric Edge.ID ("e1" < "e2" < "e10").
//   - NeighborIDs() returns IDs sorted lexicographically.
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under its read lock.
// AI-HINT (file):
//   - Unweighted graphs MUST add edges with weight==0 (else ErrBadWeight).
//   - A second edge between the same endpoints returns ErrMultiEdgeNotAllowed.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix keeps human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = "e"

// AddEdge creates a new undirected edge between from and to and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight policy and loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject parallel edges.
//  4. Store the edge and mirror adjacency (loops are stored once).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacencyList[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := edgeIDPrefix + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacencyList[from][to] = eid
	g.adjacencyList[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacencyList[e.From], e.To)
	delete(g.adjacencyList[e.To], e.From)

	return nil
}

// HasEdge reports whether an edge between from and to exists (either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacencyList[from][to]

	return ok
}

// Edges returns all edges sorted by insertion sequence.
// Complexity: O(E·logE).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// NeighborIDs returns the sorted IDs of all vertices adjacent to id.
// A self-loop lists id itself.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.adjacencyList[id]))
	for nbr := range g.adjacencyList[id] {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// EdgeWeight returns the effective weight of the edge between from and to:
// the stored weight on weighted graphs, 1 on unweighted graphs.
// Returns ErrEdgeNotFound if the endpoints are not adjacent.
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacencyList[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return g.effectiveWeight(g.edges[eid]), nil
}

// Degree returns the weighted degree of id: the sum of effective weights of
// incident edges, with a self-loop counted twice (networkx convention).
// Complexity: O(d).
func (g *Graph) Degree(id string) (float64, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var deg float64
	for nbr, eid := range g.adjacencyList[id] {
		w := g.effectiveWeight(g.edges[eid])
		if nbr == id {
			deg += 2 * w
			continue
		}
		deg += w
	}

	return deg, nil
}

// effectiveWeight maps the stored weight to the value used by matrix views.
// Caller holds muEdgeAdj.
func (g *Graph) effectiveWeight(e *Edge) float64 {
	if !g.weighted {
		return 1
	}

	return e.Weight
}

// edgeSeq extracts the numeric sequence of an "eN" identifier.
func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[len(edgeIDPrefix):], 10, 64)

	return n
}

// SPDX-License-Identifier: MIT
// Package: lvspectra/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared in impl_*.go; options in options.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Canonical IDs: with the default ID scheme every constructor emits vertices
//     "0".."n-1", which is the node order the spectral pipeline requires.
//
// AI-Hints (practical):
//   - Use WithSeed(...) to freeze RandomSparse fixtures.
//   - Keep the default ID scheme when the graph will be embedded; custom schemes
//     make core.Graph.CanonicalOrder fail with core.ErrNonCanonicalIDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvspectra/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (weighted/loops).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial graph is returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph with default options that panics on error.
// Intended for tests, examples and fixed fixtures only.
func MustBuild(cons ...Constructor) *core.Graph {
	g, err := BuildGraph(nil, nil, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// addVertices inserts idFn(0..n-1) in ascending index order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge connects vertex indices i and j, drawing a weight only when the
// graph observes weights.
func addEdge(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	u, v := cfg.idFn(i), cfg.idFn(j)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

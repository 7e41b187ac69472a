// SPDX-License-Identifier: MIT
// Package: lvspectra/builder
//
// impl_classic.go - closed-form topologies with known normalized-Laplacian
// spectra: Empty, Path, Cycle, Complete, Star, Wheel.
//
// Contract (all constructors):
//   - Validate n against the per-topology minimum (else ErrTooFewVertices).
//   - Add vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emit edges in stable increasing order of (i, j).
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//
// Complexity:
//   - Path/Cycle/Star/Wheel: O(n). Complete: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvspectra/core"
)

// Method tags and minima.
const (
	methodEmpty    = "Empty"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodWheel    = "Wheel"

	minEmptyNodes    = 1
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minWheelNodes    = 4
)

// validateMin returns ErrTooFewVertices with method context when n < minimum.
func validateMin(method string, n, minimum int) error {
	if n < minimum {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minimum, ErrTooFewVertices)
	}

	return nil
}

// Empty returns a Constructor adding n isolated vertices and no edges.
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodEmpty, n, minEmptyNodes); err != nil {
			return err
		}

		return addVertices(methodEmpty, g, cfg, n)
	}
}

// Path returns a Constructor that builds a simple path P_n: edges (i-1, i).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a ring C_n: a path plus the closing edge (n-1, 0).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return addEdge(methodCycle, g, cfg, n-1, 0)
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds the star S_n: hub 0 joined to 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds the wheel W_n: hub 0 plus a rim
// cycle over 1..n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		if err := addVertices(methodWheel, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodWheel, g, cfg, 0, i); err != nil {
				return err
			}
		}
		for i := 2; i < n; i++ {
			if err := addEdge(methodWheel, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return addEdge(methodWheel, g, cfg, n-1, 1)
	}
}

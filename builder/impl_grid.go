// SPDX-License-Identifier: MIT
// Package: lvspectra/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is vertex index r*cols+c, so IDs stay canonical.
//   - For each cell emit Right then Bottom neighbor edges if present.
//
// Complexity:
//   - Time: O(rows*cols). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvspectra/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := addVertices(methodGrid, g, cfg, rows*cols); err != nil {
			return err
		}

		var r, c, u int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: transitpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Station IDs are fixed "r,c"; station (r,c) sits at origin + (c·spacing, r·spacing).
//   • 4-neighbourhood: each cell links Right (r,c+1) and Down (r+1,c) when present.
//     No diagonals.
//
// Complexity:
//   • Time: O(R·C) stations + O(2·R·C) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transitpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// GridID returns the station ID Grid assigns to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// Row-major insertion.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addStation(g, methodGrid, GridID(r, c), cfg.at(float64(c), float64(r))); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(g, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

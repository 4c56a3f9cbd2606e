// SPDX-License-Identifier: MIT
// Package: transitpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). A single station is a valid degenerate line.
//   - Station i sits at origin + (i·spacing, 0); IDs via cfg.idFn in ascending order.
//   - Links (i-1)—i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) stations + O(n-1) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transitpath/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds a straight line of n stations.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := addStation(g, methodPath, cfg.idFn(i), cfg.at(float64(i), 0)); err != nil {
				return err
			}
		}

		// Emit path links 0—1—2—...—(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err := link(g, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

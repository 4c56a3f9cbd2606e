// SPDX-License-Identifier: MIT
// Package: transitpath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Stations sit on the unit circle (scaled by spacing) in index order.
//   - Every unordered pair {i,j}, i<j, is linked exactly once, in
//     lexicographic (i,j) order. The direct link is therefore always the
//     shortest route between two stations.
//
// Complexity:
//   - Time: O(n) stations + O(n²) links.
//   - Space: O(n) for the ID slice.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transitpath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that links every station to every other.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			theta := 2 * math.Pi * float64(i) / float64(n)
			if err := addStation(g, methodComplete, ids[i], cfg.at(math.Cos(theta), math.Sin(theta))); err != nil {
				return err
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

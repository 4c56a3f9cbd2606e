// SPDX-License-Identifier: MIT
// Package: transitpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Stations on a regular n-gon of circumradius spacing, centred on origin;
//     station 0 at angle 0, counter-clockwise.
//   • Links i—(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) stations + O(n) links.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transitpath/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-station ring line.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			if err := addStation(g, methodCycle, cfg.idFn(i), cfg.at(math.Cos(theta), math.Sin(theta))); err != nil {
				return err
			}
		}

		// Close the ring: for i==n-1, connect back to 0.
		for i := 0; i < n; i++ {
			if err := link(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

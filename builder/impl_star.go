// SPDX-License-Identifier: MIT
// Package: transitpath/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): one hub "Center" plus n-1 leaves.
//   • Hub at origin; leaves evenly spaced on a circle of radius spacing.
//   • Leaves named cfg.idFn(0..n-2); links Center—leaf in leaf order.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transitpath/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterStationID is the fixed ID of the Star hub.
	CenterStationID = "Center"
)

// Star returns a Constructor that builds a hub with n-1 spokes.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := addStation(g, methodStar, CenterStationID, cfg.at(0, 0)); err != nil {
			return err
		}

		leaves := n - 1
		for i := 0; i < leaves; i++ {
			theta := 2 * math.Pi * float64(i) / float64(leaves)
			id := cfg.idFn(i)
			if err := addStation(g, methodStar, id, cfg.at(math.Cos(theta), math.Sin(theta))); err != nil {
				return err
			}
			if err := link(g, methodStar, CenterStationID, id); err != nil {
				return err
			}
		}

		return nil
	}
}

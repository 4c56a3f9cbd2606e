// SPDX-License-Identifier: MIT
// Package: transitpath/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Shape:
//   - A circle line of n-1 stations (Cycle(n-1)) plus a hub "Center" at the
//     origin with a spoke to every ring station: the classic ring-and-radial
//     metro layout.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices), since the ring itself must be a cycle.
//   - Ring IDs via cfg.idFn (0..n-2); the hub uses CenterStationID.
//   - Spokes are emitted in increasing ring index.
//
// Complexity:
//   - Time: O(n) stations + O(2(n-1)) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transitpath/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a ring of n-1 stations around a hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: ring of %d: %w", methodWheel, n-1, err)
		}
		if err := addStation(g, methodWheel, CenterStationID, cfg.at(0, 0)); err != nil {
			return err
		}

		for i := 0; i < n-1; i++ {
			if err := link(g, methodWheel, CenterStationID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

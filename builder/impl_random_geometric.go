// SPDX-License-Identifier: MIT
// Package: transitpath/builder
//
// impl_random_geometric.go - implementation of RandomGeometric(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource); p == 0 or
//     p == 1 are deterministic and also run without an RNG, stations then
//     being laid out on a line.
//   - Station i is placed uniformly at random in the square
//     [0, n·spacing)² shifted by origin.
//   - Each unordered pair (i<j) is linked with probability p, visited in
//     stable i asc, j asc order.
//
// Determinism:
//   - Same seed ⇒ same positions and links.
//
// Complexity:
//   - Time: O(n²) pair draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transitpath/core"
)

const (
	methodRandomGeometric = "RandomGeometric"
	minRandomNodes        = 1
	probMin               = 0.0
	probMax               = 1.0
)

// RandomGeometric returns a Constructor for a random positioned network.
func RandomGeometric(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomGeometric, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomGeometric, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		side := float64(n)
		for i := 0; i < n; i++ {
			x, y := float64(i), 0.0
			if rng != nil {
				x, y = rng.Float64()*side, rng.Float64()*side
			}
			if err := addStation(g, methodRandomGeometric, cfg.idFn(i), cfg.at(x, y)); err != nil {
				return err
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case rng.Float64() > p:
					continue
				}
				if err := link(g, methodRandomGeometric, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package builder provides deterministic constructors for positioned station
// networks: straight lines, rings, stars, ring-and-radial wheels, complete
// networks, rectangular grids and random geometric networks.
//
// Every constructor is a Constructor closure applied by BuildGraph in order,
// so several shapes can be composed into one core.Graph. Positions are laid
// out on a plane with a configurable spacing and origin; every link is
// undirected and its weight is whatever geo.Metric the engines use.
//
// Configuration primitives:
//
//   - BuilderOption: a function that mutates builderConfig before use.
//   - WithIDScheme / WithSymbolIDs / WithPrefixIDs / WithStreetNames:
//     station naming.
//   - WithSpacing, WithOrigin: geometry of the layout.
//   - WithSeed / WithRand: RNG for RandomGeometric.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graph.
//   - Constructors never panic at runtime; invalid parameters return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - Option constructors panic on programmer errors (nil callbacks,
//     non-positive spacing), the same fast-fail policy as the rest of the
//     options in this module.
package builder

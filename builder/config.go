// SPDX-License-Identifier: MIT
// Package: transitpath/builder
//
// config.go - internal configuration resolved from BuilderOption values.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/transitpath/geo"
)

// builderConfig is the resolved, read-only configuration seen by constructors.
type builderConfig struct {
	idFn    IDFn         // index → station ID
	rng     *rand.Rand   // nil unless WithSeed/WithRand
	spacing float64      // distance between neighbouring stations (>0)
	origin  geo.Position // layout anchor
}

const defaultSpacing = 1.0

// newBuilderConfig applies opts over the defaults.
//
// Defaults:
//   - idFn:    DefaultIDFn ("0","1",...)
//   - rng:     nil
//   - spacing: 1.0
//   - origin:  (0,0)
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at returns origin shifted by (dx, dy) spacing units.
func (c builderConfig) at(dx, dy float64) geo.Position {
	return geo.Position{
		Lon: c.origin.Lon + dx*c.spacing,
		Lat: c.origin.Lat + dy*c.spacing,
	}
}

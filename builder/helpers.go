// SPDX-License-Identifier: MIT
// Package: transitpath/builder
//
// helpers.go - shared insertion helpers with uniform error context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/geo"
)

// addStation inserts id at pos, wrapping failures with the method tag.
func addStation(g *core.Graph, method, id string, pos geo.Position) error {
	if err := g.AddStation(id, pos); err != nil {
		return fmt.Errorf("%s: AddStation(%s): %w", method, id, err)
	}

	return nil
}

// link connects u and v, wrapping failures with the method tag.
func link(g *core.Graph, method, u, v string) error {
	if err := g.Link(u, v); err != nil {
		return fmt.Errorf("%s: Link(%s-%s): %w", method, u, v, err)
	}

	return nil
}

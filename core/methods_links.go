// File: methods_links.go
// Role: Link lifecycle & adjacency queries, plus the dangling-link validator.
//
// Determinism:
//   - Neighbors() returns the stored, sorted link set.
//   - Validate() reports violations in station order, then link order.
package core

import (
	"errors"
	"fmt"
	"sort"
)

// Link connects a and b in both directions. Linking an already linked pair
// is a no-op.
//
// Errors:
//   - ErrEmptyStationID if either ID is empty.
//   - ErrLoopNotAllowed if a == b.
//   - ErrStationNotFound (wrapped) if either endpoint is missing.
//
// Complexity:
//   - Time O(deg) for the sorted insert, Space O(1) amortized.
func (g *Graph) Link(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyStationID
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	sa, ok := g.stations[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStationNotFound, a)
	}
	sb, ok := g.stations[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStationNotFound, b)
	}

	sa.Links = insertSorted(sa.Links, b)
	sb.Links = insertSorted(sb.Links, a)

	return nil
}

// HasLink reports whether a lists b among its links.
func (g *Graph) HasLink(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sa, ok := g.stations[a]
	if !ok {
		return false
	}
	i := sort.SearchStrings(sa.Links, b)

	return i < len(sa.Links) && sa.Links[i] == b
}

// Neighbors returns the link set of id, sorted ascending. The returned slice
// is shared with the graph and must not be modified.
//
// Errors:
//   - ErrStationNotFound (wrapped) if id is unknown.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st, ok := g.stations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}

	return st.Links, nil
}

// LinkCount returns the number of undirected links. A one-sided link (only
// possible through FromStations) counts once, like a mirrored pair.
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[[2]string]struct{})
	for id, st := range g.stations {
		for _, nb := range st.Links {
			key := [2]string{id, nb}
			if nb < id {
				key = [2]string{nb, id}
			}
			seen[key] = struct{}{}
		}
	}

	return len(seen)
}

// Validate checks the no-dangling-links invariant. It returns nil for a
// clean graph, otherwise one ErrDanglingLink per offending reference joined
// with errors.Join.
//
// Complexity: O(V log V + L).
func (g *Graph) Validate() error {
	var errs []error
	for _, id := range g.StationIDs() {
		st, _ := g.Station(id)
		for _, nb := range st.Links {
			if !g.HasStation(nb) {
				errs = append(errs, fmt.Errorf("%w: %q -> %q", ErrDanglingLink, id, nb))
			}
		}
	}

	return errors.Join(errs...)
}

// insertSorted adds id to the sorted set links if missing.
func insertSorted(links []string, id string) []string {
	i := sort.SearchStrings(links, id)
	if i < len(links) && links[i] == id {
		return links
	}
	links = append(links, "")
	copy(links[i+1:], links[i:])
	links[i] = id

	return links
}

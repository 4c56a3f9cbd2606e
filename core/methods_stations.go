// File: methods_stations.go
// Role: Station lifecycle & queries.
//
// Determinism:
//   - StationIDs() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Catalog protected by mu; queries take the read lock only.
package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/transitpath/geo"
)

// AddStation inserts a station with no links.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyStationID).
//   - Stage 2: Under the write lock, reject an existing ID (ErrDuplicateStation).
//   - Stage 3: Register a fresh Station record.
//
// Errors:
//   - ErrEmptyStationID: if id == "".
//   - ErrDuplicateStation: if the ID is already present (wrapped with the ID).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddStation(id string, pos geo.Position) error {
	if id == "" {
		return ErrEmptyStationID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.stations[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateStation, id)
	}
	g.stations[id] = &Station{ID: id, Position: pos}

	return nil
}

// FromStations builds a Graph from station records produced by an external
// loader. Links are copied, sorted and de-duplicated but otherwise kept
// verbatim: one-sided or dangling links are allowed here and surface later
// through Validate.
//
// Errors:
//   - ErrEmptyStationID, ErrDuplicateStation as for AddStation.
//   - ErrLoopNotAllowed if a station lists itself.
//
// Complexity:
//   - Time O(V + L log L), Space O(V + L), L = total links.
func FromStations(stations ...Station) (*Graph, error) {
	g := NewGraph()
	for _, s := range stations {
		if err := g.AddStation(s.ID, s.Position); err != nil {
			return nil, err
		}
		st := g.stations[s.ID]
		for _, nb := range s.Links {
			if nb == s.ID {
				return nil, fmt.Errorf("%w: %q", ErrLoopNotAllowed, s.ID)
			}
			st.Links = insertSorted(st.Links, nb)
		}
	}

	return g, nil
}

// HasStation reports whether id is present (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasStation(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.stations[id]

	return ok
}

// Station returns the record for id. The pointer refers to the live record;
// callers must treat it as read-only.
func (g *Graph) Station(id string) (*Station, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	st, ok := g.stations[id]

	return st, ok
}

// Lookup is Station with an error instead of a flag, which is what the
// engines want for their start/end precondition checks.
//
// Errors:
//   - ErrStationNotFound wrapped with the quoted ID.
func (g *Graph) Lookup(id string) (*Station, error) {
	st, ok := g.Station(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}

	return st, nil
}

// StationIDs returns every station ID sorted ascending.
// Complexity: O(V log V).
func (g *Graph) StationIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.stations))
	var id string
	for id = range g.stations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// StationCount returns the number of stations.
// Prefer it over len(StationIDs()) to avoid the sort.
func (g *Graph) StationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.stations)
}

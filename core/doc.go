// Package core defines the station graph that every search engine reads.
//
// A Graph maps station IDs to Station records. Each Station carries a planar
// position and the sorted set of station IDs it links to. Links are
// undirected: Link(a, b) records b in a's links and a in b's links.
//
// Lifecycle:
//
//	– Build once, either incrementally (AddStation, Link) or in one shot from
//	  records produced by an external loader (FromStations).
//	– After construction the graph is read-only. Engines borrow it and never
//	  mutate it; Station pointers returned by lookups must be treated as
//	  immutable.
//
// Invariants:
//
//	– Station IDs are unique and non-empty.
//	– Links are sorted and unique, so neighbour iteration is deterministic.
//	– Every ID in a Links set should itself be a station. FromStations does not
//	  enforce this (loaders may hand over dangling references); Validate reports
//	  every violation and engines skip dangling neighbours instead of failing.
//
// Concurrency:
//
//	The station catalog is guarded by a sync.RWMutex, so concurrent readers are
//	safe and construction may happen from several goroutines.
//
// Errors:
//
//	ErrEmptyStationID   - station ID is the empty string.
//	ErrDuplicateStation - AddStation on an existing ID.
//	ErrStationNotFound  - operation referenced an unknown station.
//	ErrLoopNotAllowed   - Link(a, a).
//	ErrDanglingLink     - Validate found a link to an unknown station.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddStation("A", geo.Position{Lon: 0, Lat: 0})
//	_ = g.AddStation("B", geo.Position{Lon: 0, Lat: 1})
//	_ = g.Link("A", "B")
package core

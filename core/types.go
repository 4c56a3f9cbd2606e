package core

import (
	"errors"
	"strings"
	"sync"

	"github.com/katalvlaran/transitpath/geo"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyStationID indicates that a station ID is the empty string.
	ErrEmptyStationID = errors.New("core: station ID is empty")

	// ErrDuplicateStation indicates AddStation was called for an existing ID.
	ErrDuplicateStation = errors.New("core: duplicate station")

	// ErrStationNotFound indicates an operation referenced a non-existent station.
	ErrStationNotFound = errors.New("core: unknown station")

	// ErrLoopNotAllowed indicates an attempt to link a station to itself.
	ErrLoopNotAllowed = errors.New("core: self-link not allowed")

	// ErrDanglingLink indicates a station links to an ID that is not in the graph.
	ErrDanglingLink = errors.New("core: dangling link")
)

// Station is a named point of the network.
//
// Links holds neighbour IDs, sorted ascending and free of duplicates once the
// station is owned by a Graph.
type Station struct {
	// ID is the unique station name.
	ID string

	// Position is the station location used for every distance computation.
	Position geo.Position

	// Links are the IDs of directly connected stations.
	Links []string
}

// Graph is the read-mostly station catalog.
//
// mu guards stations; links live inside the Station records and are only
// written under mu as well.
type Graph struct {
	mu       sync.RWMutex
	stations map[string]*Station
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{stations: make(map[string]*Station)}
}

// Path is an ordered sequence of station IDs from start to end, inclusive.
// An empty Path means no path was found.
type Path []string

// Empty reports whether p holds no stations.
func (p Path) Empty() bool { return len(p) == 0 }

// String renders p as "A -> B -> C"; an empty path renders as "<none>".
func (p Path) String() string {
	if p.Empty() {
		return "<none>"
	}

	return strings.Join(p, " -> ")
}

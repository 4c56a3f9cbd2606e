package astar

import (
	"fmt"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/internal/frontier"
)

// ShortestPath runs A* from start to end and returns the path, both ends
// inclusive. An empty path with a nil error means end is unreachable.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (core.Path, error) {
	// --- Apply options ---
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	h := cfg.Heuristic
	if h == nil {
		h = Heuristic(cfg.Metric)
	}

	// --- Validate ---
	if g == nil {
		return nil, ErrNilGraph
	}
	startStation, err := g.Lookup(start)
	if err != nil {
		return nil, fmt.Errorf("astar: start: %w", err)
	}
	goal, err := g.Lookup(end)
	if err != nil {
		return nil, fmt.Errorf("astar: end: %w", err)
	}

	// --- Initialize state ---
	openSet := frontier.New(g.StationCount())
	openSet.Push(&frontier.Entry{
		Cost: h(startStation.Position, goal.Position),
		ID:   start,
		Path: core.Path{start},
	})
	closedSet := make(map[string]bool, g.StationCount())

	// --- Main loop ---
	for openSet.Len() > 0 {
		current := openSet.Pop()

		// Goal check
		if current.ID == end {
			return current.Path, nil
		}

		// Skip if already closed
		if closedSet[current.ID] {
			continue
		}
		closedSet[current.ID] = true

		from, ok := g.Station(current.ID)
		if !ok {
			continue
		}
		for _, nb := range from.Links {
			if closedSet[nb] {
				continue
			}
			to, ok := g.Station(nb)
			if !ok {
				continue // dangling link
			}

			w := cfg.Metric(from.Position, to.Position)
			if w < 0 {
				return nil, fmt.Errorf("%w: %s→%s weight=%g", ErrNegativeWeight, from.ID, nb, w)
			}
			tentativeG := current.G + w
			openSet.Push(&frontier.Entry{
				Cost: tentativeG + h(to.Position, goal.Position),
				G:    tentativeG,
				ID:   nb,
				Path: frontier.Extend(current.Path, nb),
			})
		}
	}

	return core.Path{}, nil
}

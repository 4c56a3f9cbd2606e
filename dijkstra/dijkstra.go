package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/internal/frontier"
)

// ShortestPath returns the minimum-cost path from start to end, both
// inclusive. An empty path with a nil error means end is unreachable.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must exist in g (wrapped core.ErrStationNotFound).
//
// The search fails with ErrNegativeWeight if the metric returns a negative
// weight for any link it relaxes.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (core.Path, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs; unknown stations fail fast.
	if g == nil {
		return nil, ErrNilGraph
	}
	if _, err := g.Lookup(start); err != nil {
		return nil, fmt.Errorf("dijkstra: start: %w", err)
	}
	if _, err := g.Lookup(end); err != nil {
		return nil, fmt.Errorf("dijkstra: end: %w", err)
	}

	// 3) Run.
	r := &runner{
		g:    g,
		opts: cfg,
		end:  end,
		best: make(map[string]float64, g.StationCount()),
		pq:   frontier.New(g.StationCount()),
	}
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g    *core.Graph        // read-only input
	opts Options            // resolved options
	end  string             // destination station
	best map[string]float64 // station ID → best-known cost so far
	pq   *frontier.Queue    // min-heap keyed by accumulated cost
}

// init records cost 0 for start and queues it.
func (r *runner) init(start string) {
	r.best[start] = 0
	r.pq.Push(&frontier.Entry{ID: start, Path: core.Path{start}})
}

// process pops the cheapest entry until the destination is popped or the
// queue drains.
func (r *runner) process() (core.Path, error) {
	for r.pq.Len() > 0 {
		cur := r.pq.Pop()

		// First pop of the destination is optimal for non-negative weights.
		if cur.ID == r.end {
			return cur.Path, nil
		}

		if err := r.relax(cur); err != nil {
			return nil, err
		}
	}

	// Queue drained: end is in another component.
	return core.Path{}, nil
}

// relax pushes every neighbour of cur whose tentative cost improves on the
// best cost recorded for it.
func (r *runner) relax(cur *frontier.Entry) error {
	from, ok := r.g.Station(cur.ID)
	if !ok {
		return nil
	}

	var tentative, w float64
	for _, nb := range from.Links {
		to, ok := r.g.Station(nb)
		if !ok {
			// Dangling link: tolerated, never traversed.
			continue
		}

		w = r.opts.Metric(from.Position, to.Position)
		if w < 0 {
			return fmt.Errorf("%w: %s→%s weight=%g", ErrNegativeWeight, from.ID, nb, w)
		}

		tentative = cur.Cost + w
		if known, seen := r.best[nb]; seen && tentative >= known {
			continue
		}
		r.best[nb] = tentative

		// Lazy decrease-key: stale entries stay queued and are simply dominated.
		r.pq.Push(&frontier.Entry{
			Cost: tentative,
			G:    tentative,
			ID:   nb,
			Path: frontier.Extend(cur.Path, nb),
		})
	}

	return nil
}

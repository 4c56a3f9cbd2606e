package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/geo"
)

// ShortestPath returns the minimum-cost path from start to end, both
// inclusive, or an empty path if end cannot be reached.
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (core.Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if _, err := g.Lookup(start); err != nil {
		return nil, fmt.Errorf("bellmanford: start: %w", err)
	}
	if _, err := g.Lookup(end); err != nil {
		return nil, fmt.Errorf("bellmanford: end: %w", err)
	}

	r := newRelaxer(g, cfg, start)

	// 1) |V|-1 rounds of full relaxation.
	for round := 1; round < len(r.ids); round++ {
		r.pass()
	}

	// 2) Anything still relaxable means a negative cycle.
	if r.pass() {
		return core.Path{}, ErrNegativeCycle
	}

	// 3) Walk predecessors back from end.
	return r.reconstruct(start, end), nil
}

// relaxer holds the distance and predecessor tables for one run.
type relaxer struct {
	g      *core.Graph
	metric geo.Metric
	ids    []string           // sorted station IDs: the relaxation order
	dist   map[string]float64 // +Inf until reached
	prev   map[string]string  // absent until reached through a link
}

func newRelaxer(g *core.Graph, cfg Options, start string) *relaxer {
	ids := g.StationIDs()
	r := &relaxer{
		g:      g,
		metric: cfg.Metric,
		ids:    ids,
		dist:   make(map[string]float64, len(ids)),
		prev:   make(map[string]string, len(ids)),
	}
	for _, id := range ids {
		r.dist[id] = math.Inf(1)
	}
	r.dist[start] = 0

	return r
}

// pass relaxes every link once and reports whether any distance improved.
func (r *relaxer) pass() bool {
	changed := false
	for _, u := range r.ids {
		du := r.dist[u]
		if math.IsInf(du, 1) {
			continue
		}
		from, _ := r.g.Station(u)
		for _, v := range from.Links {
			to, ok := r.g.Station(v)
			if !ok {
				continue // dangling link
			}
			if nd := du + r.metric(from.Position, to.Position); nd < r.dist[v] {
				r.dist[v] = nd
				r.prev[v] = u
				changed = true
			}
		}
	}

	return changed
}

// reconstruct follows prev from end to start. The walk is bounded by |V|
// steps, so a broken chain can never loop forever.
func (r *relaxer) reconstruct(start, end string) core.Path {
	if math.IsInf(r.dist[end], 1) {
		return core.Path{}
	}

	path := core.Path{end}
	cur := end
	for steps := 0; cur != start; steps++ {
		if steps >= len(r.ids) {
			return core.Path{}
		}
		p, ok := r.prev[cur]
		if !ok {
			return core.Path{}
		}
		path = append(path, p)
		cur = p
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

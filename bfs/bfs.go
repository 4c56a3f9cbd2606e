package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/transitpath/core"
)

// queueItem pairs a station ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if _, err := g.Lookup(startID); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	n := g.StationCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbour. Dangling links are skipped.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}

	st, ok := w.graph.Station(item.id)
	if !ok {
		return
	}
	for _, nbr := range st.Links {
		if w.visited[nbr] || !w.graph.HasStation(nbr) {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}
}

// FewestStops returns a path from start to end with the minimum number of
// links, ignoring distances. It matches the signature of the other engines:
// unknown stations are errors, an unreachable end is an empty path.
func FewestStops(g *core.Graph, start, end string) (core.Path, error) {
	if g != nil {
		if _, err := g.Lookup(end); err != nil {
			return nil, fmt.Errorf("bfs: end: %w", err)
		}
	}

	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	path, err := res.PathTo(end)
	if errors.Is(err, ErrNotReached) {
		return core.Path{}, nil
	}

	return path, err
}

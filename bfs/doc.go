// Package bfs provides breadth-first search over a core.Graph, returning hop
// counts, parent links and visit order, plus FewestStops, a path engine that
// minimises the number of stations travelled through rather than distance.
//
// What
//
//   - Explore stations in non-decreasing hop count from a start station.
//   - BFSResult holds Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the BFS tree).
//   - OnVisit hook (may abort with an error), neighbour filtering and a
//     depth limit.
//
// Why
//
//   - A fewest-stops route is what many riders actually want; comparing it
//     with the distance-optimal engines shows how much detour it costs.
//   - Reachability: a station missing from Depth is in another component.
//
// Determinism
//
//	Links are stored sorted, and BFS enqueues neighbours in that order, so the
//	visit sequence and the chosen parents are fully reproducible.
//
// Complexity (V = stations, E = links)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	)
//	path, err := result.PathTo("dest")
//
// Errors
//
//   - ErrGraphNil                 if the graph pointer is nil.
//   - core.ErrStationNotFound     (wrapped) if the start station does not exist.
//   - ErrOptionViolation          for an invalid Option (negative MaxDepth).
//   - ErrNotReached               from PathTo for an unreached station.
//   - Wrapped hook errors from OnVisit, and ctx.Err() on cancellation.
package bfs

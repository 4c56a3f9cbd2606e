// Package astar finds the shortest path between two stations of a
// core.Graph with A* search.
//
// Entries are prioritised by f = g + h, where g is the accumulated link cost
// and h estimates the remaining cost from a candidate to the destination.
// By default both come from geo.Euclidean: a straight line never exceeds the
// length of any chain of straight links, so h is admissible and consistent
// and the first pop of the destination is optimal.
//
// The search keeps a visited (closed) set only. A station is expanded at
// most once, but may sit in the queue several times with different costs
// before that; stale copies are skipped when popped.
//
// Errors:
//
//   - ErrNilGraph              if the graph pointer is nil.
//   - core.ErrStationNotFound  (wrapped) if start or end is unknown.
//   - ErrNegativeWeight        if the metric yields a negative link cost.
package astar

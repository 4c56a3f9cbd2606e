// Package bellmanford finds the shortest path between two stations of a
// core.Graph by iterative edge relaxation.
//
// It is the slow, exhaustive baseline of the module: |V|-1 full passes over
// every station and every link, O(V·E) regardless of where the destination
// lies. One further pass detects negative cycles. With the default Euclidean
// metric weights are never negative and that branch cannot fire, but it is
// kept so the engine stays correct under any geo.Metric.
//
// Stations are visited in sorted ID order and links in their stored sorted
// order, so the predecessor chosen between equal-cost alternatives is stable.
//
// Path reconstruction walks predecessors back from the destination for at
// most |V| steps and must reach the start; anything else (unreachable end)
// yields an empty path.
//
// Errors:
//
//   - ErrNilGraph              if the graph pointer is nil.
//   - core.ErrStationNotFound  (wrapped) if start or end is unknown.
//   - ErrNegativeCycle         if a reachable negative cycle exists; the
//     returned path is empty.
package bellmanford

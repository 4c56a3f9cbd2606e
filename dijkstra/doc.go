// Package dijkstra finds the shortest path between two stations of a
// core.Graph with Dijkstra's uniform-cost search.
//
// Edge weights are the distance between linked stations under a geo.Metric
// (geo.Euclidean unless WithMetric says otherwise). Weights must be
// non-negative, which is what makes the first pop of the destination optimal:
// the search returns as soon as the end station leaves the queue.
//
// Complexity:
//
//   - Time:  O((V + E) log V) heap operations, plus O(L) per push to copy the
//     path prefix carried by each queue entry (L = path length).
//   - Space: O(V + E) for the best-known cost map and queued entries.
//
// Notes on implementation choices:
//
//   - The queue record is frontier.Entry: ordered by cost, ties broken by
//     insertion order, so equal-cost alternatives resolve the same way every run.
//   - A neighbour is pushed only when its tentative cost strictly improves the
//     best cost recorded for it.
//   - Links to stations missing from the graph are skipped.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - core.ErrStationNotFound (wrapped) if start or end is unknown.
//   - ErrNegativeWeight  if the metric yields a negative edge weight.
//
// Example usage:
//
//	path, err := dijkstra.ShortestPath(g, "Baker Street", "Bank")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path)
package dijkstra

// Package transitpath answers "how do I get from A to B?" on a network of
// named stations, with several shortest-path algorithms side by side.
//
// A network is a set of stations with planar coordinates and undirected
// links between them. A link costs the distance between its endpoints, so
// the best route is the one with the smallest total distance.
//
// What is inside?
//
//	geo/          positions and link metrics (Euclidean, haversine)
//	core/         the thread-safe station Graph and the Path type
//	dijkstra/     Dijkstra's algorithm with a lazy-deletion heap
//	astar/        A* with a straight-line heuristic
//	bellmanford/  Bellman-Ford with negative-cycle detection
//	bfs/          breadth-first traversal and a fewest-stops engine
//	compare/      path length, the shortest/longest/tie verdict, reports
//	runner/       runs engines one by one, timing each (zap logging)
//	builder/      deterministic synthetic networks (path, grid, wheel…)
//	loader/       YAML/JSON network files
//	render/       Graphviz DOT output with the route highlighted
//	cmd/transitpath the command-line tool
//
// Quick start:
//
//	g, _ := loader.LoadFile("london.yaml")
//	ms, _ := runner.New().Run(g, "Baker Street", "Green Park")
//	outcome, _ := compare.Compare(ms)
//	_ = compare.WriteReport(os.Stdout, ms, outcome)
//
// All engines return an empty path (and no error) when the destination is
// unreachable, and fail fast with core.ErrStationNotFound for unknown
// stations.
package transitpath

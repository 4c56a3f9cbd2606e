package runner

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/transitpath/astar"
	"github.com/katalvlaran/transitpath/bellmanford"
	"github.com/katalvlaran/transitpath/bfs"
	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/dijkstra"
	"github.com/katalvlaran/transitpath/geo"
)

// Display names used in reports.
const (
	NameDijkstra    = "Dijkstra's"
	NameAStar       = "A*"
	NameBellmanFord = "Bellman-Ford"
	NameFewestStops = "Fewest stops"
)

// Finder answers one shortest-path query.
type Finder func(g *core.Graph, start, end string) (core.Path, error)

// Engine is a named Finder.
type Engine struct {
	Name string
	Find Finder
}

// DefaultEngines returns Dijkstra's, A* and Bellman-Ford, in that order,
// all costing links with metric.
func DefaultEngines(metric geo.Metric) []Engine {
	return []Engine{
		dijkstraEngine(metric),
		astarEngine(metric),
		bellmanFordEngine(metric),
	}
}

// EngineByName resolves a CLI engine name: "dijkstra", "astar",
// "bellman-ford" or "bfs". Matching ignores case and surrounding spaces.
func EngineByName(name string, metric geo.Metric) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra":
		return dijkstraEngine(metric), nil
	case "astar", "a*":
		return astarEngine(metric), nil
	case "bellman-ford", "bellmanford":
		return bellmanFordEngine(metric), nil
	case "bfs":
		return Engine{Name: NameFewestStops, Find: bfs.FewestStops}, nil
	}

	return Engine{}, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// EnginesByName resolves every name in order; the first failure is returned.
func EnginesByName(names []string, metric geo.Metric) ([]Engine, error) {
	engines := make([]Engine, 0, len(names))
	for _, n := range names {
		e, err := EngineByName(n, metric)
		if err != nil {
			return nil, err
		}
		engines = append(engines, e)
	}

	return engines, nil
}

func dijkstraEngine(metric geo.Metric) Engine {
	return Engine{
		Name: NameDijkstra,
		Find: func(g *core.Graph, start, end string) (core.Path, error) {
			return dijkstra.ShortestPath(g, start, end, dijkstra.WithMetric(metric))
		},
	}
}

func astarEngine(metric geo.Metric) Engine {
	return Engine{
		Name: NameAStar,
		Find: func(g *core.Graph, start, end string) (core.Path, error) {
			return astar.ShortestPath(g, start, end, astar.WithMetric(metric))
		},
	}
}

func bellmanFordEngine(metric geo.Metric) Engine {
	return Engine{
		Name: NameBellmanFord,
		Find: func(g *core.Graph, start, end string) (core.Path, error) {
			return bellmanford.ShortestPath(g, start, end, bellmanford.WithMetric(metric))
		},
	}
}

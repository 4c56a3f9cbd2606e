package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitpath/builder"
	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/dijkstra"
	"github.com/katalvlaran/transitpath/geo"
)

// ------------------------------------------------------------------------
// 1. Validation: unknown stations and nil graphs fail fast.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_UnknownStation(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	_, err = dijkstra.ShortestPath(g, "missing", "2")
	assert.ErrorIs(t, err, core.ErrStationNotFound)

	_, err = dijkstra.ShortestPath(g, "0", "missing")
	assert.ErrorIs(t, err, core.ErrStationNotFound)
	assert.Contains(t, err.Error(), "end")
}

func TestShortestPath_NegativeMetric(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2))
	require.NoError(t, err)

	neg := func(a, b geo.Position) float64 { return -1 }
	_, err = dijkstra.ShortestPath(g, "0", "1", dijkstra.WithMetric(neg))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// ------------------------------------------------------------------------
// 2. Scenarios.
// ------------------------------------------------------------------------

func TestShortestPath_Chain(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	path, err := dijkstra.ShortestPath(g, "0", "4")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"0", "1", "2", "3", "4"}, path)
}

func TestShortestPath_SquareDiagonal(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(2, 2))
	require.NoError(t, err)

	path, err := dijkstra.ShortestPath(g, builder.GridID(0, 0), builder.GridID(1, 1))
	require.NoError(t, err)
	require.Len(t, path, 3)
	// Both corners are one unit away; the tie resolves to the first-queued
	// neighbour ("0,1" sorts before "1,0").
	assert.Equal(t, core.Path{"0,0", "0,1", "1,1"}, path)
}

func TestShortestPath_StartIsEnd(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	path, err := dijkstra.ShortestPath(g, "1", "1")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"1"}, path)
}

func TestShortestPath_Disconnected(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2))
	require.NoError(t, err)
	require.NoError(t, g.AddStation("island", geo.Position{Lon: 9, Lat: 9}))

	path, err := dijkstra.ShortestPath(g, "0", "island")
	require.NoError(t, err)
	assert.True(t, path.Empty())
}

func TestShortestPath_PrefersShorterDetour(t *testing.T) {
	// A direct but long hop A—D versus A—B—C—D hugging the straight line.
	g, err := core.FromStations(
		core.Station{ID: "A", Position: geo.Position{Lon: 0, Lat: 0}, Links: []string{"B", "D"}},
		core.Station{ID: "B", Position: geo.Position{Lon: 1, Lat: 0}, Links: []string{"A", "C"}},
		core.Station{ID: "C", Position: geo.Position{Lon: 2, Lat: 0}, Links: []string{"B", "D"}},
		core.Station{ID: "D", Position: geo.Position{Lon: 3, Lat: 0}, Links: []string{"A", "C"}},
	)
	require.NoError(t, err)

	// With a metric that penalises the A—D hop, the three-hop route wins.
	metric := func(a, b geo.Position) float64 {
		d := geo.Euclidean(a, b)
		if d > 2 {
			return d * 10
		}
		return d
	}
	path, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMetric(metric))
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "C", "D"}, path)

	// Plain Euclidean: the direct hop has the same length and is found first.
	path, err = dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, "A", path[0])
	assert.Equal(t, "D", path[len(path)-1])
}

func TestShortestPath_DanglingLinkTolerated(t *testing.T) {
	g, err := core.FromStations(
		core.Station{ID: "A", Links: []string{"B", "Ghost"}},
		core.Station{ID: "B", Position: geo.Position{Lon: 1}, Links: []string{"A"}},
	)
	require.NoError(t, err)

	path, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B"}, path)
}

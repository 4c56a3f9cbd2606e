package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitpath/bellmanford"
	"github.com/katalvlaran/transitpath/builder"
	"github.com/katalvlaran/transitpath/compare"
	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/dijkstra"
	"github.com/katalvlaran/transitpath/geo"
)

func TestShortestPath_Validation(t *testing.T) {
	_, err := bellmanford.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, bellmanford.ErrNilGraph)

	g, err := builder.BuildGraph(nil, builder.Path(2))
	require.NoError(t, err)
	_, err = bellmanford.ShortestPath(g, "x", "1")
	assert.ErrorIs(t, err, core.ErrStationNotFound)
}

func TestShortestPath_Chain(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	path, err := bellmanford.ShortestPath(g, "0", "4")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"0", "1", "2", "3", "4"}, path)

	// Reverse direction walks the same stations backwards.
	back, err := bellmanford.ShortestPath(g, "4", "0")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"4", "3", "2", "1", "0"}, back)
}

func TestShortestPath_SquareDiagonal(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(2, 2))
	require.NoError(t, err)

	path, err := bellmanford.ShortestPath(g, "0,0", "1,1")
	require.NoError(t, err)
	require.Len(t, path, 3)

	length, err := compare.PathLength(g, path, geo.Euclidean)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, length, 1e-12)
}

func TestShortestPath_StartIsEnd(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(4))
	require.NoError(t, err)

	path, err := bellmanford.ShortestPath(g, builder.CenterStationID, builder.CenterStationID)
	require.NoError(t, err)
	assert.Equal(t, core.Path{builder.CenterStationID}, path)
}

func TestShortestPath_UnreachableEnd(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithPrefixIDs("A")},
		builder.Path(3),
	)
	require.NoError(t, err)
	require.NoError(t, g.AddStation("B0", geo.Position{Lon: 10, Lat: 10}))
	require.NoError(t, g.AddStation("B1", geo.Position{Lon: 11, Lat: 10}))
	require.NoError(t, g.Link("B0", "B1"))

	path, err := bellmanford.ShortestPath(g, "A0", "B1")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestShortestPath_OneSidedLinkNotFollowedBackwards(t *testing.T) {
	// B lists A but A does not list B: B is unreachable from A.
	g, err := core.FromStations(
		core.Station{ID: "A"},
		core.Station{ID: "B", Position: geo.Position{Lon: 1}, Links: []string{"A", "Ghost"}},
	)
	require.NoError(t, err)

	path, err := bellmanford.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = bellmanford.ShortestPath(g, "B", "A")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"B", "A"}, path)
}

func TestShortestPath_NegativeCycle(t *testing.T) {
	// Any negative undirected link is a two-step negative cycle.
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	neg := func(a, b geo.Position) float64 { return -1 }
	path, err := bellmanford.ShortestPath(g, "0", "2", bellmanford.WithMetric(neg))
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
	assert.Empty(t, path)
}

// TestShortestPath_MatchesDijkstra: on non-negative weights Bellman-Ford is
// the ground truth and Dijkstra must agree on every pair's length.
func TestShortestPath_MatchesDijkstra(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomGeometric(12, 0.3),
	)
	require.NoError(t, err)

	ids := g.StationIDs()
	for _, s := range ids {
		for _, e := range ids {
			pb, err := bellmanford.ShortestPath(g, s, e)
			require.NoError(t, err)
			pd, err := dijkstra.ShortestPath(g, s, e)
			require.NoError(t, err)

			lb, _ := compare.PathLength(g, pb, geo.Euclidean)
			ld, _ := compare.PathLength(g, pd, geo.Euclidean)
			assert.Equal(t, pb.Empty(), pd.Empty(), "%s→%s", s, e)
			assert.InDelta(t, lb, ld, 1e-9, "%s→%s", s, e)
		}
	}
}

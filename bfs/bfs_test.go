package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitpath/bfs"
	"github.com/katalvlaran/transitpath/builder"
	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/geo"
)

func TestBFS_Validation(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, core.ErrStationNotFound)

	_, err = bfs.BFS(g, "0", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_OrderAndDepth(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(2, 3))
	require.NoError(t, err)

	res, err := bfs.BFS(g, "0,0")
	require.NoError(t, err)

	assert.Equal(t, []string{"0,0", "0,1", "1,0", "0,2", "1,1", "1,2"}, res.Order)
	assert.Equal(t, 0, res.Depth["0,0"])
	assert.Equal(t, 1, res.Depth["1,0"])
	assert.Equal(t, 3, res.Depth["1,2"])

	path, err := res.PathTo("1,2")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"0,0", "0,1", "0,2", "1,2"}, path)
}

func TestBFS_MaxDepth(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, res.Order)
	assert.False(t, res.Reached("3"))

	_, err = res.PathTo("4")
	assert.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)

	// forbid the 0-1 link so the search must go round the other way
	res, err := bfs.BFS(g, "0", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return !(curr == "0" && nbr == "1")
	}))
	require.NoError(t, err)

	path, err := res.PathTo("1")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"0", "3", "2", "1"}, path)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	stop := errors.New("stop")
	var seen []string
	_, err = bfs.BFS(g, "0", bfs.WithOnVisit(func(id string, _ int) error {
		seen = append(seen, id)
		if id == "1" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"0", "1"}, seen)
}

func TestBFS_Cancelled(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFewestStops(t *testing.T) {
	// A long two-hop detour beats a short three-hop route on stop count.
	g := core.NewGraph()
	require.NoError(t, g.AddStation("A", geo.Position{}))
	require.NoError(t, g.AddStation("B", geo.Position{Lon: 0, Lat: 10}))
	require.NoError(t, g.AddStation("C", geo.Position{Lon: 1, Lat: 0}))
	require.NoError(t, g.AddStation("D", geo.Position{Lon: 2, Lat: 0}))
	require.NoError(t, g.AddStation("E", geo.Position{Lon: 3, Lat: 0}))
	for _, l := range [][2]string{{"A", "B"}, {"B", "E"}, {"A", "C"}, {"C", "D"}, {"D", "E"}} {
		require.NoError(t, g.Link(l[0], l[1]))
	}

	path, err := bfs.FewestStops(g, "A", "E")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "E"}, path)

	path, err = bfs.FewestStops(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A"}, path)
}

func TestFewestStops_Unreachable(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(2))
	require.NoError(t, err)
	require.NoError(t, g.AddStation("island", geo.Position{Lon: 5, Lat: 5}))

	path, err := bfs.FewestStops(g, "0", "island")
	require.NoError(t, err)
	assert.True(t, path.Empty())

	_, err = bfs.FewestStops(g, "0", "nowhere")
	assert.ErrorIs(t, err, core.ErrStationNotFound)
}

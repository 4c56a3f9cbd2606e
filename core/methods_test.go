package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/geo"
)

// buildTriangle returns three linked stations A, B, C on a right triangle.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddStation("A", geo.Position{Lon: 0, Lat: 0}))
	require.NoError(t, g.AddStation("B", geo.Position{Lon: 1, Lat: 0}))
	require.NoError(t, g.AddStation("C", geo.Position{Lon: 0, Lat: 1}))
	require.NoError(t, g.Link("A", "B"))
	require.NoError(t, g.Link("B", "C"))
	require.NoError(t, g.Link("C", "A"))

	return g
}

func TestAddStation_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddStation("", geo.Position{}), core.ErrEmptyStationID)
	require.NoError(t, g.AddStation("A", geo.Position{}))
	assert.ErrorIs(t, g.AddStation("A", geo.Position{Lon: 1}), core.ErrDuplicateStation)
	assert.Equal(t, 1, g.StationCount())
}

func TestLink_MirroredAndIdempotent(t *testing.T) {
	g := buildTriangle(t)

	// Linking again must not duplicate anything.
	require.NoError(t, g.Link("B", "A"))

	nbA, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbA)

	nbB, err := g.Neighbors("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, nbB)

	assert.True(t, g.HasLink("C", "B"))
	assert.Equal(t, 3, g.LinkCount())
}

func TestLink_Errors(t *testing.T) {
	g := buildTriangle(t)

	assert.ErrorIs(t, g.Link("A", "A"), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.Link("A", "Z"), core.ErrStationNotFound)
	assert.ErrorIs(t, g.Link("", "A"), core.ErrEmptyStationID)
}

func TestLookup(t *testing.T) {
	g := buildTriangle(t)

	st, err := g.Lookup("B")
	require.NoError(t, err)
	assert.Equal(t, geo.Position{Lon: 1, Lat: 0}, st.Position)

	_, err = g.Lookup("Nowhere")
	assert.ErrorIs(t, err, core.ErrStationNotFound)
	assert.Contains(t, err.Error(), `"Nowhere"`)

	_, err = g.Neighbors("Nowhere")
	assert.ErrorIs(t, err, core.ErrStationNotFound)
}

func TestStationIDs_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, g.AddStation(id, geo.Position{}))
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, g.StationIDs())
	assert.False(t, g.HasStation(""))
}

func TestFromStations_DanglingLinks(t *testing.T) {
	g, err := core.FromStations(
		core.Station{ID: "A", Links: []string{"B", "Ghost", "B"}},
		core.Station{ID: "B", Links: []string{"A"}},
	)
	require.NoError(t, err)

	nbA, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "Ghost"}, nbA)

	verr := g.Validate()
	require.Error(t, verr)
	assert.ErrorIs(t, verr, core.ErrDanglingLink)
	assert.Contains(t, verr.Error(), `"A" -> "Ghost"`)

	assert.NoError(t, buildTriangle(t).Validate())
}

func TestFromStations_Errors(t *testing.T) {
	_, err := core.FromStations(core.Station{ID: "A", Links: []string{"A"}})
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = core.FromStations(core.Station{ID: "A"}, core.Station{ID: "A"})
	assert.ErrorIs(t, err, core.ErrDuplicateStation)
}

func TestPath_String(t *testing.T) {
	assert.Equal(t, "<none>", core.Path(nil).String())
	assert.True(t, core.Path{}.Empty())
	assert.Equal(t, "A -> B -> C", core.Path{"A", "B", "C"}.String())
}

package loader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitpath/builder"
	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/geo"
	"github.com/katalvlaran/transitpath/loader"
)

const jubilee = `
stations:
  - {id: Baker Street, lon: -0.1571, lat: 51.5226}
  - {id: Bond Street, lon: -0.1494, lat: 51.5142}
  - {id: Green Park, lon: -0.1428, lat: 51.5067}
  - {id: Regent's Park, lon: -0.1466, lat: 51.5234}
lines:
  - name: Jubilee
    stations: [Baker Street, Bond Street, Green Park]
links:
  - [Baker Street, Regent's Park]
`

func TestDecode(t *testing.T) {
	g, err := loader.Decode(strings.NewReader(jubilee))
	require.NoError(t, err)

	assert.Equal(t, 4, g.StationCount())
	assert.Equal(t, 3, g.LinkCount())
	assert.True(t, g.HasLink("Bond Street", "Baker Street"))
	assert.True(t, g.HasLink("Green Park", "Bond Street"))
	assert.True(t, g.HasLink("Regent's Park", "Baker Street"))
	assert.False(t, g.HasLink("Baker Street", "Green Park"))

	st, ok := g.Station("Green Park")
	require.True(t, ok)
	assert.Equal(t, geo.Position{Lon: -0.1428, Lat: 51.5067}, st.Position)
}

func TestDecode_JSON(t *testing.T) {
	in := `{"stations":[{"id":"a","lon":0,"lat":0},{"id":"b","lon":3,"lat":4}],"links":[["a","b"]]}`
	g, err := loader.Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.True(t, g.HasLink("a", "b"))
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", loader.ErrEmptyNetwork},
		{"no stations", "stations: []\n", loader.ErrEmptyNetwork},
		{"duplicate", "stations: [{id: a}, {id: a}]\n", core.ErrDuplicateStation},
		{"blank id", "stations: [{id: ''}]\n", core.ErrEmptyStationID},
		{"line unknown", "stations: [{id: a}]\nlines: [{name: L, stations: [a, b]}]\n", loader.ErrUnknownStation},
		{"link unknown", "stations: [{id: a}]\nlinks: [[a, z]]\n", loader.ErrUnknownStation},
		{"link arity", "stations: [{id: a}, {id: b}]\nlinks: [[a, b, a]]\n", loader.ErrMalformedLink},
		{"self link", "stations: [{id: a}]\nlinks: [[a, a]]\n", core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Decode(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := loader.Decode(strings.NewReader("stations: [{id: a, lng: 1}]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lng")
}

func TestEncode_RoundTrip(t *testing.T) {
	src, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSpacing(0.5)},
		builder.Grid(3, 3),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.Encode(&buf, src))

	got, err := loader.Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, src.StationIDs(), got.StationIDs())
	assert.Equal(t, src.LinkCount(), got.LinkCount())
	for _, id := range src.StationIDs() {
		want, _ := src.Station(id)
		have, _ := got.Station(id)
		assert.Equal(t, want.Position, have.Position, id)
		assert.Equal(t, want.Links, have.Links, id)
	}
}

func TestFromGraph_LinksOnceAndSorted(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3))
	require.NoError(t, err)

	doc := loader.FromGraph(g)
	assert.Equal(t, [][]string{{"0", "1"}, {"0", "2"}, {"1", "2"}}, doc.Links)
	assert.Empty(t, doc.Lines)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, os.WriteFile(path, []byte(jubilee), 0o600))

	g, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.StationCount())

	_, err = loader.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

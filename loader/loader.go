package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/geo"
)

// Decode reads one YAML document from r and builds the graph it describes.
func Decode(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyNetwork
		}
		return nil, fmt.Errorf("loader: decode: %w", err)
	}

	return doc.Graph()
}

// LoadFile opens path and decodes it.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Graph builds a core.Graph from the document: stations first, then line
// links, then extra links.
func (d *Document) Graph() (*core.Graph, error) {
	if len(d.Stations) == 0 {
		return nil, ErrEmptyNetwork
	}

	g := core.NewGraph()
	for _, s := range d.Stations {
		if err := g.AddStation(s.ID, geo.Position{Lon: s.Lon, Lat: s.Lat}); err != nil {
			return nil, fmt.Errorf("loader: station %q: %w", s.ID, err)
		}
	}

	for _, line := range d.Lines {
		for i := 1; i < len(line.Stations); i++ {
			if err := link(g, line.Stations[i-1], line.Stations[i]); err != nil {
				return nil, fmt.Errorf("loader: line %q: %w", line.Name, err)
			}
		}
	}

	for i, l := range d.Links {
		if len(l) != 2 {
			return nil, fmt.Errorf("%w: links[%d] has %d entries", ErrMalformedLink, i, len(l))
		}
		if err := link(g, l[0], l[1]); err != nil {
			return nil, fmt.Errorf("loader: links[%d]: %w", i, err)
		}
	}

	return g, nil
}

func link(g *core.Graph, a, b string) error {
	for _, id := range [...]string{a, b} {
		if !g.HasStation(id) {
			return fmt.Errorf("%w: %q", ErrUnknownStation, id)
		}
	}

	return g.Link(a, b)
}

// FromGraph converts g to a Document. Stations are sorted by ID and each
// link appears once, as [lower, higher]. Dangling links are dropped.
func FromGraph(g *core.Graph) Document {
	ids := g.StationIDs()
	doc := Document{Stations: make([]StationDoc, 0, len(ids))}

	seen := make(map[[2]string]bool)
	for _, id := range ids {
		st, _ := g.Station(id)
		doc.Stations = append(doc.Stations, StationDoc{ID: id, Lon: st.Position.Lon, Lat: st.Position.Lat})
		for _, nb := range st.Links {
			if !g.HasStation(nb) {
				continue
			}
			key := [2]string{id, nb}
			if nb < id {
				key = [2]string{nb, id}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			doc.Links = append(doc.Links, []string{key[0], key[1]})
		}
	}

	sort.Slice(doc.Links, func(i, j int) bool {
		if doc.Links[i][0] != doc.Links[j][0] {
			return doc.Links[i][0] < doc.Links[j][0]
		}
		return doc.Links[i][1] < doc.Links[j][1]
	})

	return doc
}

// Encode writes g to w as YAML.
func Encode(w io.Writer, g *core.Graph) error {
	doc := FromGraph(g)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("loader: encode: %w", err)
	}

	return enc.Close()
}

package loader

import "errors"

var (
	// ErrUnknownStation indicates a line or link naming an undeclared station.
	ErrUnknownStation = errors.New("loader: unknown station")

	// ErrMalformedLink indicates a link entry that is not a pair.
	ErrMalformedLink = errors.New("loader: link must name exactly two stations")

	// ErrEmptyNetwork indicates a document with no stations.
	ErrEmptyNetwork = errors.New("loader: network has no stations")
)

// Document is the on-disk shape of a network.
type Document struct {
	Stations []StationDoc `yaml:"stations"`
	Lines    []LineDoc    `yaml:"lines,omitempty"`
	Links    [][]string   `yaml:"links,omitempty"`
}

// StationDoc is one station entry.
type StationDoc struct {
	ID  string  `yaml:"id" diff:"id,identifier"`
	Lon float64 `yaml:"lon" diff:"lon"`
	Lat float64 `yaml:"lat" diff:"lat"`
}

// LineDoc is a named sequence of stations; each consecutive pair is linked.
type LineDoc struct {
	Name     string   `yaml:"name"`
	Stations []string `yaml:"stations"`
}

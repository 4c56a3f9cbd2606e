package dijkstra

import (
	"errors"

	"github.com/katalvlaran/transitpath/geo"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that the metric produced a negative edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of the Dijkstra search.
//
// Metric – edge weight between two linked stations. Default geo.Euclidean.
type Options struct {
	Metric geo.Metric
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMetric sets the edge-weight function. A nil metric keeps the default.
func WithMetric(m geo.Metric) Option {
	return func(o *Options) {
		if m != nil {
			o.Metric = m
		}
	}
}

// DefaultOptions returns the Options used when no Option is passed.
//
// Defaults:
//   - Metric: geo.Euclidean.
func DefaultOptions() Options {
	return Options{Metric: geo.Euclidean}
}

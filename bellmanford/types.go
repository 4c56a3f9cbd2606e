package bellmanford

import (
	"errors"

	"github.com/katalvlaran/transitpath/geo"
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the start.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")
)

// Options configures the Bellman-Ford search.
type Options struct {
	Metric geo.Metric // link cost; default geo.Euclidean
}

// Option represents a functional option for configuring Bellman-Ford.
type Option func(*Options)

// WithMetric sets the link cost function. Unlike the other engines this one
// accepts metrics that return negative values.
func WithMetric(m geo.Metric) Option {
	return func(o *Options) {
		if m != nil {
			o.Metric = m
		}
	}
}

// DefaultOptions returns Options{Metric: geo.Euclidean}.
func DefaultOptions() Options {
	return Options{Metric: geo.Euclidean}
}

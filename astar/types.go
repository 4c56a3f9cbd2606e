package astar

import (
	"errors"

	"github.com/katalvlaran/transitpath/geo"
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNegativeWeight indicates that the metric produced a negative link cost.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")
)

// Heuristic estimates the remaining cost from a station position to the
// destination position.
type Heuristic func(from, goal geo.Position) float64

// Options defines parameters for the search.
type Options struct {
	// Metric is the link cost. Default geo.Euclidean.
	Metric geo.Metric

	// Heuristic is h. When nil, the Metric is used as heuristic.
	Heuristic Heuristic
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMetric sets the link cost function. Nil keeps the default.
func WithMetric(m geo.Metric) Option {
	return func(o *Options) {
		if m != nil {
			o.Metric = m
		}
	}
}

// WithHeuristic overrides h. The caller is responsible for admissibility;
// an over-estimating heuristic may return a longer path.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

func defaultOptions() Options {
	return Options{Metric: geo.Euclidean}
}

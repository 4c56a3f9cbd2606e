package runner

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/transitpath/geo"
)

var (
	// ErrNilGraph is returned by Run for a nil graph.
	ErrNilGraph = errors.New("runner: graph is nil")

	// ErrUnknownEngine indicates an engine name EngineByName does not know.
	ErrUnknownEngine = errors.New("runner: unknown engine")

	// ErrEnginePanic is recorded in a measurement whose engine panicked.
	ErrEnginePanic = errors.New("runner: engine panicked")
)

// Options configures a Runner.
type Options struct {
	// Logger receives per-engine debug lines and failure warnings.
	Logger *zap.Logger

	// Metric costs links when measuring path lengths, and for the default
	// engines. Default geo.Euclidean.
	Metric geo.Metric

	// Engines to run. Nil means DefaultEngines(Metric).
	Engines []Engine

	// Clock is read before and after each engine.
	Clock func() time.Time

	// Metrics, when set, receives every measurement.
	Metrics *Metrics
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns a no-op logger, the Euclidean metric, the default
// engines and time.Now.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Metric: geo.Euclidean,
		Clock:  time.Now,
	}
}

// WithLogger sets the logger. Nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetric sets the link metric. Nil keeps the default.
func WithMetric(m geo.Metric) Option {
	return func(o *Options) {
		if m != nil {
			o.Metric = m
		}
	}
}

// WithEngines replaces the engine list.
func WithEngines(engines ...Engine) Option {
	return func(o *Options) { o.Engines = engines }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}

// WithMetrics exports measurements through m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

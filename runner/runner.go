package runner

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/transitpath/compare"
	"github.com/katalvlaran/transitpath/core"
)

// Runner runs engines and measures them.
type Runner struct {
	opts Options
	log  *zap.Logger
}

// New returns a Runner configured by opts.
func New(opts ...Option) *Runner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Engines == nil {
		o.Engines = DefaultEngines(o.Metric)
	}

	return &Runner{opts: o, log: o.Logger.Named("runner")}
}

// Engines returns the configured engine names in run order.
func (r *Runner) Engines() []string {
	names := make([]string, len(r.opts.Engines))
	for i, e := range r.opts.Engines {
		names[i] = e.Name
	}

	return names
}

// Run answers start→end with every engine, in order, and returns one
// measurement per engine.
//
// Errors (returned before any engine runs):
//   - ErrNilGraph.
//   - core.ErrStationNotFound (wrapped) for an unknown start or end.
//
// Engine failures are not returned; they are stored in Measurement.Err.
func (r *Runner) Run(g *core.Graph, start, end string) ([]compare.Measurement, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if _, err := g.Lookup(start); err != nil {
		return nil, fmt.Errorf("runner: start: %w", err)
	}
	if _, err := g.Lookup(end); err != nil {
		return nil, fmt.Errorf("runner: end: %w", err)
	}

	log := r.log.With(zap.String("start", start), zap.String("end", end))
	ms := make([]compare.Measurement, 0, len(r.opts.Engines))
	for _, e := range r.opts.Engines {
		m := r.measure(e, g, start, end)
		if m.Err != nil {
			log.Warn("engine failed",
				zap.String("engine", e.Name),
				zap.Duration("elapsed", m.Elapsed),
				zap.Error(m.Err),
			)
		} else {
			log.Debug("engine finished",
				zap.String("engine", e.Name),
				zap.Duration("elapsed", m.Elapsed),
				zap.Float64("length", m.Length),
				zap.Int("stations", len(m.Path)),
			)
		}
		r.opts.Metrics.observe(m)
		ms = append(ms, m)
	}

	return ms, nil
}

// measure times a single engine. Panics become ErrEnginePanic.
func (r *Runner) measure(e Engine, g *core.Graph, start, end string) (m compare.Measurement) {
	m.Algorithm = e.Name
	began := r.opts.Clock()
	defer func() {
		if rec := recover(); rec != nil {
			m.Elapsed = r.opts.Clock().Sub(began)
			m.Path = core.Path{}
			m.Length = 0
			m.Err = fmt.Errorf("%w: %s: %v", ErrEnginePanic, e.Name, rec)
		}
	}()

	path, err := e.Find(g, start, end)
	m.Elapsed = r.opts.Clock().Sub(began)
	if path == nil {
		path = core.Path{}
	}
	m.Path = path
	m.Err = err

	length, lerr := compare.PathLength(g, path, r.opts.Metric)
	if lerr != nil {
		if m.Err == nil {
			m.Err = lerr
		}
		return m
	}
	m.Length = length

	return m
}

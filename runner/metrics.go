package runner

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/transitpath/compare"
)

// Metrics exports per-engine timings and outcomes to Prometheus.
//
//	transitpath_engine_duration_seconds{engine}   histogram of run time
//	transitpath_engine_runs_total{engine,result}  result is ok, no_path or error
//	transitpath_engine_path_length{engine}        length of the last path found
type Metrics struct {
	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
	length   *prometheus.GaugeVec
}

// Result label values.
const (
	resultOK     = "ok"
	resultNoPath = "no_path"
	resultError  = "error"
)

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "transitpath_engine_duration_seconds",
			Help:    "execution time of each shortest-path engine",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"engine"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "transitpath_engine_runs_total",
			Help: "engine runs by result",
		}, []string{"engine", "result"}),
		length: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "transitpath_engine_path_length",
			Help: "length of the most recent path found by each engine",
		}, []string{"engine"}),
	}

	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("runner: register metrics: %w", err)
		}
	}

	return m, nil
}

// Collectors returns the duration, runs and length collectors, in that order.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.duration, m.runs, m.length}
}

// observe records one measurement. A nil receiver does nothing.
func (m *Metrics) observe(ms compare.Measurement) {
	if m == nil {
		return
	}

	m.duration.WithLabelValues(ms.Algorithm).Observe(ms.Elapsed.Seconds())
	switch {
	case ms.Err != nil:
		m.runs.WithLabelValues(ms.Algorithm, resultError).Inc()
	case ms.Path.Empty():
		m.runs.WithLabelValues(ms.Algorithm, resultNoPath).Inc()
	default:
		m.runs.WithLabelValues(ms.Algorithm, resultOK).Inc()
	}
	m.length.WithLabelValues(ms.Algorithm).Set(ms.Length)
}

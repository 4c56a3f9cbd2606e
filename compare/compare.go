package compare

import (
	"fmt"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/geo"
)

// PathLength returns the sum of metric distances between consecutive
// stations of path. Empty and single-station paths have length 0.
// A nil metric means geo.Euclidean.
//
// Errors:
//   - core.ErrStationNotFound (wrapped) if path names an unknown station.
func PathLength(g *core.Graph, path core.Path, metric geo.Metric) (float64, error) {
	if metric == nil {
		metric = geo.Euclidean
	}
	if len(path) < 2 {
		return 0, nil
	}

	prev, err := g.Lookup(path[0])
	if err != nil {
		return 0, fmt.Errorf("compare: path length: %w", err)
	}
	var length float64
	for _, id := range path[1:] {
		cur, err := g.Lookup(id)
		if err != nil {
			return 0, fmt.Errorf("compare: path length: %w", err)
		}
		length += metric(prev.Position, cur.Position)
		prev = cur
	}

	return length, nil
}

// Compare ranks ms by Length. See the package documentation for the rules.
func Compare(ms []Measurement, opts ...Option) (Outcome, error) {
	cfg := Options{Tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(ms) == 0 {
		return Outcome{}, ErrNoMeasurements
	}

	noPath := true
	for _, m := range ms {
		if !m.Path.Empty() {
			noPath = false
			break
		}
	}

	if len(ms) > 1 {
		less := func(a, b float64) bool { return a < b-cfg.Tolerance }
		if i, ok := strictExtreme(ms, less); ok {
			return Outcome{Verdict: Shortest, Algorithm: ms[i].Algorithm, Length: ms[i].Length}, nil
		}
		greater := func(a, b float64) bool { return a > b+cfg.Tolerance }
		if i, ok := strictExtreme(ms, greater); ok {
			return Outcome{Verdict: Longest, Algorithm: ms[i].Algorithm, Length: ms[i].Length}, nil
		}
	}

	return Outcome{Verdict: Tie, Length: ms[0].Length, NoPath: noPath}, nil
}

// strictExtreme returns the index whose Length beats every other Length
// under better, if there is exactly one such index.
func strictExtreme(ms []Measurement, better func(a, b float64) bool) (int, bool) {
	for i := range ms {
		wins := true
		for j := range ms {
			if i != j && !better(ms[i].Length, ms[j].Length) {
				wins = false
				break
			}
		}
		if wins {
			return i, true
		}
	}

	return -1, false
}

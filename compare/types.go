package compare

import (
	"errors"
	"time"

	"github.com/katalvlaran/transitpath/core"
)

// ErrNoMeasurements is returned by Compare for an empty input.
var ErrNoMeasurements = errors.New("compare: no measurements")

// DefaultTolerance is the absolute length difference treated as equal.
const DefaultTolerance = 1e-9

// Measurement is one engine's result for a query.
type Measurement struct {
	Algorithm string        // display name, e.g. "Dijkstra's"
	Path      core.Path     // empty when no path was found or the engine failed
	Elapsed   time.Duration // wall-clock time of the engine call
	Length    float64       // PathLength of Path; 0 for empty paths
	Err       error         // engine failure, if any
}

// Verdict classifies a comparison.
type Verdict int

const (
	// Tie means no algorithm is strictly shortest or strictly longest.
	Tie Verdict = iota
	// Shortest means Outcome.Algorithm is strictly shorter than all others.
	Shortest
	// Longest means Outcome.Algorithm is strictly longer than all others.
	Longest
)

// String returns "tie", "shortest" or "longest".
func (v Verdict) String() string {
	switch v {
	case Shortest:
		return "shortest"
	case Longest:
		return "longest"
	default:
		return "tie"
	}
}

// Outcome is the result of Compare.
type Outcome struct {
	Verdict   Verdict
	Algorithm string  // winner for Shortest/Longest; empty for Tie
	Length    float64 // winner's length; for Tie the common (first) length
	NoPath    bool    // every measurement had an empty path
}

// Options configures Compare.
type Options struct {
	Tolerance float64
}

// Option is a functional option for Compare.
type Option func(*Options)

// WithTolerance sets the absolute equality tolerance. Negative values panic.
func WithTolerance(tol float64) Option {
	if tol < 0 {
		panic("compare: WithTolerance(tol<0)")
	}
	return func(o *Options) { o.Tolerance = tol }
}

// Package compare evaluates the paths produced by the search engines.
//
// PathLength sums the metric over consecutive stations of a path. Compare
// ranks a set of Measurements by length only: a strict unique minimum wins
// "shortest"; failing that, a strict unique maximum is reported as
// "longest"; anything else is a tie. Elapsed time is carried through to the
// report but never ranked.
//
// Lengths within the configured tolerance (default 1e-9) are equal, so two
// optimal paths summed in a different order cannot produce a false winner.
//
// When every measurement holds an empty path the outcome is a tie at length
// zero with NoPath set; WriteReport then adds an explicit "no path" line
// after the tie verdict.
package compare

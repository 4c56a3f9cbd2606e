// Package geo provides station positions and the distance functions used as
// edge weights and as the A* heuristic.
//
// A Position is a planar (Lon, Lat) pair. Euclidean treats it as a point in
// the plane, which is what every engine uses by default; Haversine treats it
// as WGS 84 degrees and returns great-circle kilometres.
//
// Both metrics are symmetric and never negative, which keeps Dijkstra's
// first-pop-is-optimal property and makes the straight-line heuristic
// admissible and consistent.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Position is a station location: Lon is the x axis, Lat the y axis.
type Position struct {
	Lon float64
	Lat float64
}

// Metric returns the distance between two positions.
// Implementations must be pure; engines call them once per edge relaxation.
type Metric func(a, b Position) float64

// Euclidean returns sqrt((b.Lon-a.Lon)^2 + (b.Lat-a.Lat)^2).
// Complexity: O(1).
func Euclidean(a, b Position) float64 {
	return math.Hypot(b.Lon-a.Lon, b.Lat-a.Lat)
}

// Haversine returns the great-circle distance in kilometres between a and b,
// both interpreted as degrees.
func Haversine(a, b Position) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// MetricByName resolves a configuration name to a Metric.
// The empty name selects Euclidean.
func MetricByName(name string) (Metric, bool) {
	switch name {
	case "", "euclidean":
		return Euclidean, true
	case "haversine":
		return Haversine, true
	default:
		return nil, false
	}
}

// Package geo holds the straight-line distance model used as a travel proxy.
package geo

import "math"

const earthRadiusMeters = 6_371_000.0

// Haversine returns the great-circle distance in meters between two points
// given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1r)*math.Cos(lat2r)*sinLon*sinLon

	// Rounding can push a slightly past 1 near antipodal points.
	h := math.Sqrt(a)
	if h > 1 {
		h = 1
	} else if h < -1 {
		h = -1
	}

	return earthRadiusMeters * 2 * math.Asin(h)
}

// TravelMinutes converts a distance into driving minutes at an average speed.
// A non-positive speed yields +Inf: travel time is undefined, callers check
// with math.IsInf.
func TravelMinutes(meters, avgSpeedKmph float64) float64 {
	if avgSpeedKmph <= 0 {
		return math.Inf(1)
	}
	return (meters / 1000 / avgSpeedKmph) * 60
}

package domain

import "stop-route-service/internal/geo"

// Immutable geographic coordinates in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// DistanceTo returns the great-circle distance in meters to other.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	return geo.Haversine(c.Lat, c.Lon, other.Lat, other.Lon)
}

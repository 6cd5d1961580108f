package domain

// Represents a single service location visited by a route.
// A Stop is a value: it is never modified after construction, and its
// identity is StopID. ServiceMinutes is time spent on site excluding travel.
type Stop struct {
	StopID         int
	Name           string
	Location       Coordinates
	ServiceMinutes float64
}

func NewStop(id int, name string, lat, lon float64, serviceMinutes float64) Stop {
	return Stop{
		StopID:         id,
		Name:           name,
		Location:       Coordinates{Lat: lat, Lon: lon},
		ServiceMinutes: serviceMinutes,
	}
}

package domain

import (
	"fmt"

	"stop-route-service/internal/geo"
)

// Route is the ordered visiting sequence of one mobile worker.
//
// Stops may be appended by the caller before the first optimization. The
// optional depot anchors both ends of the tour and is never part of Stops.
type Route struct {
	RouteID int
	Stops   []Stop
	depot   *Stop
}

// NewRoute creates an empty route. A nil depot produces an open path.
func NewRoute(id int, depot *Stop) *Route {
	r := &Route{RouteID: id}
	if depot != nil {
		d := *depot
		r.depot = &d
	}
	return r
}

// Depot returns the route's anchor point, if any.
func (r *Route) Depot() (Stop, bool) {
	if r.depot == nil {
		return Stop{}, false
	}
	return *r.depot, true
}

// Append a single stop to the end of the route.
func (r *Route) AddStop(stop Stop) error {
	if r.depot != nil && r.depot.StopID == stop.StopID {
		return fmt.Errorf("add stop: route %d stop %d: %w", r.RouteID, stop.StopID, ErrDepotStop)
	}
	if r.indexOf(stop.StopID) >= 0 {
		return fmt.Errorf("add stop: route %d stop %d: %w", r.RouteID, stop.StopID, ErrDuplicateStop)
	}
	r.Stops = append(r.Stops, stop)
	return nil
}

// Append multiple stops, stopping at the first rejected one.
func (r *Route) AddStops(stops []Stop) error {
	for _, s := range stops {
		if err := r.AddStop(s); err != nil {
			return err
		}
	}

	return nil
}

// Drop all stops; the depot is kept.
func (r *Route) Clear() {
	r.Stops = nil
}

func (r *Route) indexOf(stopID int) int {
	for i, s := range r.Stops {
		if s.StopID == stopID {
			return i
		}
	}
	return -1
}

// TotalDistanceMeters sums the legs of the route in visiting order.
// With a depot the tour is closed (depot -> stops -> depot); without one it is
// the open path over the stops, which is zero for fewer than two stops.
func (r *Route) TotalDistanceMeters() float64 {
	if len(r.Stops) == 0 {
		return 0
	}

	var total float64
	for i := 1; i < len(r.Stops); i++ {
		total += r.Stops[i-1].Location.DistanceTo(r.Stops[i].Location)
	}

	if r.depot != nil {
		total += r.depot.Location.DistanceTo(r.Stops[0].Location)
		total += r.Stops[len(r.Stops)-1].Location.DistanceTo(r.depot.Location)
	}

	return total
}

// ServiceMinutes is the total on-site time across all stops.
func (r *Route) ServiceMinutes() float64 {
	var total float64
	for _, s := range r.Stops {
		total += s.ServiceMinutes
	}
	return total
}

// TotalTimeMinutes is travel time at avgSpeedKmph plus service time.
// It is +Inf when avgSpeedKmph <= 0.
func (r *Route) TotalTimeMinutes(avgSpeedKmph float64) float64 {
	return geo.TravelMinutes(r.TotalDistanceMeters(), avgSpeedKmph) + r.ServiceMinutes()
}

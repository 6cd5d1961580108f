package domain

import (
	"errors"
	"fmt"
)

// RouteManager owns a set of routes and moves stops between them.
//
// Every stop id is held by at most one route. Moves validate their target
// before taking a stop out of its current route, so a failed move never
// drops a stop. RouteManager is not safe for concurrent use.
type RouteManager struct {
	routes []*Route
}

func NewRouteManager() *RouteManager {
	return &RouteManager{}
}

// Register a route. Its id and any pre-seeded stops must not clash with
// routes already registered.
func (m *RouteManager) AddRoute(route *Route) error {
	if route == nil {
		return errors.New("add route: route must be non-nil")
	}

	for _, r := range m.routes {
		if r.RouteID == route.RouteID {
			return fmt.Errorf("add route %d: %w", route.RouteID, ErrDuplicateRoute)
		}
	}

	seen := make(map[int]struct{}, len(route.Stops))
	for _, s := range route.Stops {
		if route.depot != nil && route.depot.StopID == s.StopID {
			return fmt.Errorf("add route %d: stop %d: %w", route.RouteID, s.StopID, ErrDepotStop)
		}
		if _, ok := seen[s.StopID]; ok {
			return fmt.Errorf("add route %d: stop %d: %w", route.RouteID, s.StopID, ErrDuplicateStop)
		}
		seen[s.StopID] = struct{}{}

		if owner, _ := m.findStop(s.StopID); owner != nil {
			return fmt.Errorf(
				"add route %d: stop %d already on route %d: %w",
				route.RouteID, s.StopID, owner.RouteID, ErrDuplicateStop,
			)
		}
	}

	m.routes = append(m.routes, route)
	return nil
}

// Route looks up a registered route by id.
func (m *RouteManager) Route(routeID int) (*Route, error) {
	for _, r := range m.routes {
		if r.RouteID == routeID {
			return r, nil
		}
	}
	return nil, fmt.Errorf("route %d: %w", routeID, ErrRouteNotFound)
}

// Routes returns the registered routes in registration order.
func (m *RouteManager) Routes() []*Route {
	out := make([]*Route, len(m.routes))
	copy(out, m.routes)
	return out
}

// StopCount is the number of stops held across all routes.
func (m *RouteManager) StopCount() int {
	n := 0
	for _, r := range m.routes {
		n += len(r.Stops)
	}
	return n
}

// AddStopToRoute appends stop to the end of the named route.
//
// On error nothing is retained by the manager and the caller still holds
// the stop.
func (m *RouteManager) AddStopToRoute(routeID int, stop Stop) error {
	target, err := m.Route(routeID)
	if err != nil {
		return fmt.Errorf("add stop %d: %w", stop.StopID, err)
	}

	if owner, _ := m.findStop(stop.StopID); owner != nil {
		return fmt.Errorf(
			"add stop %d: already on route %d: %w",
			stop.StopID, owner.RouteID, ErrDuplicateStop,
		)
	}

	return target.AddStop(stop)
}

// RemoveStopByID takes the stop out of the first route (in registration
// order) that holds it and hands it to the caller.
func (m *RouteManager) RemoveStopByID(stopID int) (Stop, error) {
	owner, idx := m.findStop(stopID)
	if owner == nil {
		return Stop{}, fmt.Errorf("remove stop %d: %w", stopID, ErrStopNotFound)
	}

	stop := owner.Stops[idx]
	owner.Stops = append(owner.Stops[:idx], owner.Stops[idx+1:]...)
	return stop, nil
}

// ReassignStop moves a stop to the end of the target route.
//
// The target is validated first; if it does not exist or cannot accept the
// stop, the stop stays where it was.
func (m *RouteManager) ReassignStop(stopID int, targetRouteID int) error {
	target, err := m.Route(targetRouteID)
	if err != nil {
		return fmt.Errorf("reassign stop %d: %w", stopID, err)
	}

	if target.depot != nil && target.depot.StopID == stopID {
		return fmt.Errorf("reassign stop %d: route %d: %w", stopID, targetRouteID, ErrDepotStop)
	}

	if owner, _ := m.findStop(stopID); owner == nil {
		return fmt.Errorf("reassign stop %d: %w", stopID, ErrStopNotFound)
	}

	stop, err := m.RemoveStopByID(stopID)
	if err != nil {
		return fmt.Errorf("reassign stop %d: %w", stopID, err)
	}
	target.Stops = append(target.Stops, stop)

	return nil
}

// OptimizeAll optimizes each route independently. There is no balancing
// of stops across routes.
func (m *RouteManager) OptimizeAll() {
	for _, r := range m.routes {
		r.Optimize()
	}
}

func (m *RouteManager) findStop(stopID int) (*Route, int) {
	for _, r := range m.routes {
		if i := r.indexOf(stopID); i >= 0 {
			return r, i
		}
	}
	return nil, -1
}

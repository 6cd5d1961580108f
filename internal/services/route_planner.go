package services

import (
	"errors"
	"fmt"
	"math"
	"stop-route-service/internal/domain"
	"stop-route-service/internal/geo"
	"time"
)

// ErrInvalidSpeed is returned when a plan is requested for a non-positive
// average speed, for which travel time is undefined.
var ErrInvalidSpeed = errors.New("average speed must be positive")

// BuildRoutePlan snapshots a route in its current order as a timed schedule.
//
// The route does not have to be optimized; the plan reflects whatever order
// the stops are in. Every leg is timed at avgSpeedKmph and each stop adds its
// service time before the next departure.
func BuildRoutePlan(route *domain.Route, departAt time.Time, avgSpeedKmph float64) (*domain.RoutePlan, error) {
	if route == nil {
		return nil, errors.New("build route plan: route must be non-nil")
	}

	if avgSpeedKmph <= 0 || math.IsNaN(avgSpeedKmph) || math.IsInf(avgSpeedKmph, 0) {
		return nil, fmt.Errorf("build route plan: route %d: %w", route.RouteID, ErrInvalidSpeed)
	}

	plan := &domain.RoutePlan{
		RouteID:      route.RouteID,
		DepartAt:     departAt,
		AvgSpeedKmph: avgSpeedKmph,
		Stops:        make([]domain.RouteStop, 0, len(route.Stops)),
	}

	depot, hasDepot := route.Depot()
	if hasDepot {
		plan.Depot = &depot
	}

	currentTime := departAt
	var prev *domain.Coordinates
	if hasDepot {
		prev = &depot.Location
	}

	for _, s := range route.Stops {
		var leg float64
		if prev != nil {
			leg = prev.DistanceTo(s.Location)
		}

		travel := geo.TravelMinutes(leg, avgSpeedKmph)
		arrive := currentTime.Add(minutes(travel))
		depart := arrive.Add(minutes(s.ServiceMinutes))

		plan.Stops = append(plan.Stops, domain.RouteStop{
			StopID:         s.StopID,
			Name:           s.Name,
			Location:       s.Location,
			LegMeters:      leg,
			ServiceMinutes: s.ServiceMinutes,
			ArriveAt:       arrive,
			DepartAt:       depart,
		})

		plan.TotalDistanceMeters += leg
		plan.TravelMinutes += travel
		plan.ServiceMinutes += s.ServiceMinutes

		currentTime = depart
		loc := s.Location
		prev = &loc
	}

	// Closed tours include the return leg to the depot.
	if hasDepot && len(route.Stops) > 0 {
		back := prev.DistanceTo(depot.Location)
		travel := geo.TravelMinutes(back, avgSpeedKmph)

		plan.TotalDistanceMeters += back
		plan.TravelMinutes += travel
		currentTime = currentTime.Add(minutes(travel))
	}

	plan.ReturnAt = currentTime
	plan.TotalMinutes = plan.TravelMinutes + plan.ServiceMinutes

	return plan, nil
}

// Build plans for every route of the manager, in registration order.
func BuildRoutePlans(manager *domain.RouteManager, departAt time.Time, avgSpeedKmph float64) ([]*domain.RoutePlan, error) {
	if manager == nil {
		return nil, errors.New("build route plans: manager must be non-nil")
	}

	routes := manager.Routes()
	plans := make([]*domain.RoutePlan, 0, len(routes))
	for _, r := range routes {
		plan, err := BuildRoutePlan(r, departAt, avgSpeedKmph)
		if err != nil {
			return nil, fmt.Errorf("build route plans: %w", err)
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}

package services

import (
	"errors"
	"fmt"
	"stop-route-service/internal/domain"
)

// AssignStopsRoundRobin deals stops across routes in turn: stop i goes to
// routeIDs[i % len(routeIDs)].
//
// This is a deterministic starting split, not a balanced assignment; each
// route is optimized on its own afterwards. Assignment fails fast on the
// first stop the manager rejects, leaving earlier stops assigned.
func AssignStopsRoundRobin(manager *domain.RouteManager, routeIDs []int, stops []domain.Stop) error {
	if manager == nil {
		return errors.New("assign stops: manager must be non-nil")
	}

	if len(routeIDs) == 0 {
		return errors.New("assign stops: route list must not be empty")
	}

	for i, s := range stops {
		routeID := routeIDs[i%len(routeIDs)]
		if err := manager.AddStopToRoute(routeID, s); err != nil {
			return fmt.Errorf("assign stops: %w", err)
		}
	}

	return nil
}

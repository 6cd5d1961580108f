package services

import (
	"errors"
	"fmt"
	"stop-route-service/internal/domain"
	"sync"
	"time"
)

// ErrNoRoutes is returned by session edits before any routes were planned.
var ErrNoRoutes = errors.New("no routes planned")

// RouteSession holds the working set of routes between HTTP requests.
//
// The domain types are single-threaded; the session serializes every access
// with a mutex so each request has the RouteManager to itself. Edits keep the
// current stop order; re-optimization is an explicit step.
type RouteSession struct {
	mu           sync.Mutex
	manager      *domain.RouteManager
	departAt     time.Time
	avgSpeedKmph float64
}

func NewRouteSession() *RouteSession {
	return &RouteSession{}
}

// Replace the working routes with a freshly planned set.
func (s *RouteSession) Replace(manager *domain.RouteManager, departAt time.Time, avgSpeedKmph float64) error {
	if manager == nil {
		return errors.New("replace routes: manager must be non-nil")
	}
	if avgSpeedKmph <= 0 {
		return fmt.Errorf("replace routes: %w", ErrInvalidSpeed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.manager = manager
	s.departAt = departAt
	s.avgSpeedKmph = avgSpeedKmph
	return nil
}

// Plans snapshots all working routes as timed schedules.
func (s *RouteSession) Plans() ([]*domain.RoutePlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager == nil {
		return []*domain.RoutePlan{}, nil
	}
	return BuildRoutePlans(s.manager, s.departAt, s.avgSpeedKmph)
}

// Plan snapshots a single working route.
func (s *RouteSession) Plan(routeID int) (*domain.RoutePlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	route, err := s.route(routeID)
	if err != nil {
		return nil, err
	}
	return BuildRoutePlan(route, s.departAt, s.avgSpeedKmph)
}

func (s *RouteSession) AddStop(routeID int, stop domain.Stop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager == nil {
		return ErrNoRoutes
	}
	return s.manager.AddStopToRoute(routeID, stop)
}

func (s *RouteSession) RemoveStop(stopID int) (domain.Stop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager == nil {
		return domain.Stop{}, ErrNoRoutes
	}
	return s.manager.RemoveStopByID(stopID)
}

func (s *RouteSession) ReassignStop(stopID, targetRouteID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager == nil {
		return ErrNoRoutes
	}
	return s.manager.ReassignStop(stopID, targetRouteID)
}

func (s *RouteSession) OptimizeRoute(routeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	route, err := s.route(routeID)
	if err != nil {
		return err
	}
	route.Optimize()
	return nil
}

func (s *RouteSession) OptimizeAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manager == nil {
		return ErrNoRoutes
	}
	s.manager.OptimizeAll()
	return nil
}

// Callers hold s.mu.
func (s *RouteSession) route(routeID int) (*domain.Route, error) {
	if s.manager == nil {
		return nil, ErrNoRoutes
	}
	return s.manager.Route(routeID)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"stop-route-service/internal/domain"
	"stop-route-service/internal/platform/obs"
	"stop-route-service/internal/ports"
)

const MaxRouteCount = 50

type PlanRoutesRequest struct {
	Depot        *domain.Stop
	RouteCount   int
	AvgSpeedKmph float64
}

func (r PlanRoutesRequest) validate() error {
	if r.RouteCount < 1 || r.RouteCount > MaxRouteCount {
		return fmt.Errorf("route count must be between 1 and %d, got %d", MaxRouteCount, r.RouteCount)
	}
	if r.AvgSpeedKmph <= 0 || math.IsNaN(r.AvgSpeedKmph) || math.IsInf(r.AvgSpeedKmph, 0) {
		return ErrInvalidSpeed
	}
	return nil
}

// PlanRoutes loads every stop from the repository, splits them round-robin
// over RouteCount routes (ids 1..n) sharing the depot, and optimizes each
// route independently.
//
// A stored stop with the depot's id is skipped, since the depot is never
// a member of a route.
func PlanRoutes(
	ctx context.Context,
	req PlanRoutesRequest,
	repo ports.StopRepository,
) (_ *domain.RouteManager, err error) {
	defer obs.Time(ctx, "services.PlanRoutes")(&err)

	if repo == nil {
		return nil, errors.New("plan routes: repository must be non-nil")
	}

	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("plan routes: %w", err)
	}

	stops, err := repo.ListStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan routes: list stops: %w", err)
	}

	if req.Depot != nil {
		kept := make([]domain.Stop, 0, len(stops))
		for _, s := range stops {
			if s.StopID != req.Depot.StopID {
				kept = append(kept, s)
			}
		}
		stops = kept
	}

	manager := domain.NewRouteManager()
	routeIDs := make([]int, 0, req.RouteCount)
	for i := 1; i <= req.RouteCount; i++ {
		if err := manager.AddRoute(domain.NewRoute(i, req.Depot)); err != nil {
			return nil, fmt.Errorf("plan routes: %w", err)
		}
		routeIDs = append(routeIDs, i)
	}

	if err := AssignStopsRoundRobin(manager, routeIDs, stops); err != nil {
		return nil, fmt.Errorf("plan routes: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("plan routes: %w", err)
	}

	manager.OptimizeAll()

	return manager, nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stop-route-service/internal/adapters/repositories"
	"stop-route-service/internal/domain"
)

func pittsburghDepot() *domain.Stop {
	d := domain.NewStop(0, "Depot", 40.4406, -79.9959, 0)
	return &d
}

func TestPlanRoutes(t *testing.T) {
	repo := repositories.NewStaticStopRepository(sampleStops())
	req := PlanRoutesRequest{Depot: pittsburghDepot(), RouteCount: 2, AvgSpeedKmph: 35}

	manager, err := PlanRoutes(context.Background(), req, repo)
	require.NoError(t, err)

	routes := manager.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, 7, manager.StopCount())

	// Optimization must never be worse than the naive round-robin split.
	naive := domain.NewRouteManager()
	for i := 1; i <= 2; i++ {
		require.NoError(t, naive.AddRoute(domain.NewRoute(i, req.Depot)))
	}
	require.NoError(t, AssignStopsRoundRobin(naive, []int{1, 2}, sampleStops()))

	for i, r := range routes {
		_, ok := r.Depot()
		assert.True(t, ok)
		assert.Equal(t, i+1, r.RouteID)

		before := naive.Routes()[i]
		assert.ElementsMatch(t, stopIDs(before.Stops), stopIDs(r.Stops))
		assert.LessOrEqual(t, r.TotalDistanceMeters(), before.TotalDistanceMeters())
	}
}

func TestPlanRoutesSkipsDepotStop(t *testing.T) {
	stops := append(sampleStops(), domain.NewStop(0, "Depot", 40.4406, -79.9959, 0))
	repo := repositories.NewStaticStopRepository(stops)

	manager, err := PlanRoutes(context.Background(), PlanRoutesRequest{
		Depot:        pittsburghDepot(),
		RouteCount:   3,
		AvgSpeedKmph: 35,
	}, repo)
	require.NoError(t, err)

	assert.Equal(t, 7, manager.StopCount())
	_, err = manager.RemoveStopByID(0)
	assert.ErrorIs(t, err, domain.ErrStopNotFound)
}

func TestPlanRoutesWithoutDepot(t *testing.T) {
	repo := repositories.NewStaticStopRepository(sampleStops())

	manager, err := PlanRoutes(context.Background(), PlanRoutesRequest{RouteCount: 1, AvgSpeedKmph: 35}, repo)
	require.NoError(t, err)

	r, err := manager.Route(1)
	require.NoError(t, err)
	_, ok := r.Depot()
	assert.False(t, ok)
	assert.Len(t, r.Stops, 7)
}

func TestPlanRoutesErrors(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewStaticStopRepository(sampleStops())

	_, err := PlanRoutes(ctx, PlanRoutesRequest{RouteCount: 0, AvgSpeedKmph: 35}, repo)
	assert.Error(t, err)

	_, err = PlanRoutes(ctx, PlanRoutesRequest{RouteCount: MaxRouteCount + 1, AvgSpeedKmph: 35}, repo)
	assert.Error(t, err)

	_, err = PlanRoutes(ctx, PlanRoutesRequest{RouteCount: 2, AvgSpeedKmph: 0}, repo)
	assert.ErrorIs(t, err, ErrInvalidSpeed)

	_, err = PlanRoutes(ctx, PlanRoutesRequest{RouteCount: 2, AvgSpeedKmph: 35}, nil)
	assert.Error(t, err)

	failing := repositories.NewStaticStopRepository(nil)
	failing.Err = errors.New("db down")
	_, err = PlanRoutes(ctx, PlanRoutesRequest{RouteCount: 2, AvgSpeedKmph: 35}, failing)
	assert.ErrorIs(t, err, failing.Err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = PlanRoutes(cancelled, PlanRoutesRequest{RouteCount: 2, AvgSpeedKmph: 35}, repo)
	assert.ErrorIs(t, err, context.Canceled)
}

package repositories

import (
	"cmp"
	"context"
	"slices"
	"stop-route-service/internal/domain"
)

// StaticStopRepository serves a fixed, in-memory list of stops, ordered by id.
type StaticStopRepository struct {
	stops []domain.Stop
	Err   error
}

func NewStaticStopRepository(stops []domain.Stop) *StaticStopRepository {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b domain.Stop) int {
		return cmp.Compare(a.StopID, b.StopID)
	})
	return &StaticStopRepository{stops: sorted}
}

// Return a copy of the stops, or Err when set.
func (r *StaticStopRepository) ListStops(ctx context.Context) ([]domain.Stop, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.stops), nil
}

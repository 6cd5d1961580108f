package ports

import (
	"context"
	"stop-route-service/internal/domain"
)

// Port: a boundary for retrieving Stop entities from a data source.
type StopRepository interface {
	// Retrieve all stops available for routing, ordered by id.
	ListStops(ctx context.Context) ([]domain.Stop, error)
}

package handlers

import (
	"net/http"
	"stop-route-service/internal/api/dto"
	"stop-route-service/internal/domain"
	"stop-route-service/internal/ports"
	"stop-route-service/internal/services"
	"strings"
	"time"
)

type PlanHandler struct {
	Repo              ports.StopRepository
	Session           *services.RouteSession
	DefaultDepot      domain.Stop
	DefaultRouteCount int
	DefaultSpeedKmph  float64
}

// Plan loads all stops, splits them over the requested number of routes,
// optimizes each route and makes the result the session's working set.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	routeCount := req.RouteCount
	if routeCount == 0 {
		routeCount = h.DefaultRouteCount
	}

	speed := req.AvgSpeedKmph
	if speed == 0 {
		speed = h.DefaultSpeedKmph
	}

	var depot *domain.Stop
	switch {
	case req.NoDepot:
		if req.Depot != nil {
			writeError(w, r, http.StatusBadRequest, "depot and no_depot are mutually exclusive")
			return
		}
	case req.Depot != nil:
		name := strings.TrimSpace(req.Depot.Name)
		if name == "" {
			name = "Depot"
		}
		d := domain.NewStop(h.DefaultDepot.StopID, name, *req.Depot.Lat, *req.Depot.Lon, 0)
		depot = &d
	default:
		d := h.DefaultDepot
		depot = &d
	}

	departAt := time.Now().UTC()
	if req.DepartAt != nil {
		departAt = *req.DepartAt
	}

	svcReq := services.PlanRoutesRequest{
		Depot:        depot,
		RouteCount:   routeCount,
		AvgSpeedKmph: speed,
	}

	manager, err := services.PlanRoutes(r.Context(), svcReq, h.Repo)
	if err != nil {
		writeServiceError(w, r, "plan routes", err)
		return
	}

	plans, err := services.BuildRoutePlans(manager, departAt, speed)
	if err != nil {
		writeServiceError(w, r, "build route plans", err)
		return
	}

	if err := h.Session.Replace(manager, departAt, speed); err != nil {
		writeServiceError(w, r, "replace session", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListPlanResponse(plans))
}

package handlers

import (
	"net/http"
	"stop-route-service/internal/api/dto"
	"stop-route-service/internal/services"
)

// RouteHandler edits the session's working routes. Edits do not
// re-optimize; clients call the optimize endpoints when they are done.
type RouteHandler struct {
	Session *services.RouteSession
}

func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Session.Plans()
	if err != nil {
		writeServiceError(w, r, "list routes", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewListPlanResponse(plans))
}

func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	routeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	h.writePlan(w, r, routeID, http.StatusOK)
}

func (h *RouteHandler) AddStop(w http.ResponseWriter, r *http.Request) {
	routeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.StopRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.Session.AddStop(routeID, req.ToDomain()); err != nil {
		writeServiceError(w, r, "add stop", err)
		return
	}

	h.writePlan(w, r, routeID, http.StatusCreated)
}

func (h *RouteHandler) RemoveStop(w http.ResponseWriter, r *http.Request) {
	stopID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	stop, err := h.Session.RemoveStop(stopID)
	if err != nil {
		writeServiceError(w, r, "remove stop", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RemoveStopResponse{Removed: dto.NewStopResponse(stop)})
}

func (h *RouteHandler) ReassignStop(w http.ResponseWriter, r *http.Request) {
	stopID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.ReassignRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.Session.ReassignStop(stopID, req.RouteID); err != nil {
		writeServiceError(w, r, "reassign stop", err)
		return
	}

	h.writePlan(w, r, req.RouteID, http.StatusOK)
}

func (h *RouteHandler) OptimizeAll(w http.ResponseWriter, r *http.Request) {
	if err := h.Session.OptimizeAll(); err != nil {
		writeServiceError(w, r, "optimize routes", err)
		return
	}
	h.List(w, r)
}

func (h *RouteHandler) OptimizeRoute(w http.ResponseWriter, r *http.Request) {
	routeID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Session.OptimizeRoute(routeID); err != nil {
		writeServiceError(w, r, "optimize route", err)
		return
	}

	h.writePlan(w, r, routeID, http.StatusOK)
}

func (h *RouteHandler) writePlan(w http.ResponseWriter, r *http.Request, routeID int, status int) {
	plan, err := h.Session.Plan(routeID)
	if err != nil {
		writeServiceError(w, r, "route plan", err)
		return
	}
	writeJSON(w, r, status, dto.NewPlanResponse(plan))
}

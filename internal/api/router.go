package api

import (
	"net/http"
	"stop-route-service/internal/api/handlers"
	"stop-route-service/internal/domain"
	"stop-route-service/internal/ports"
	"stop-route-service/internal/services"
)

// RouterConfig carries planning defaults used when a request omits them.
type RouterConfig struct {
	Depot        domain.Stop
	RouteCount   int
	AvgSpeedKmph float64
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.StopRepository, session *services.RouteSession, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	stopHandler := &handlers.StopHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:              repo,
		Session:           session,
		DefaultDepot:      cfg.Depot,
		DefaultRouteCount: cfg.RouteCount,
		DefaultSpeedKmph:  cfg.AvgSpeedKmph,
	}
	routeHandler := &handlers.RouteHandler{Session: session}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /stops", stopHandler.List)
	mux.HandleFunc("POST /plans", planHandler.Plan)

	mux.HandleFunc("GET /routes", routeHandler.List)
	mux.HandleFunc("POST /routes/optimize", routeHandler.OptimizeAll)
	mux.HandleFunc("GET /routes/{id}", routeHandler.Get)
	mux.HandleFunc("POST /routes/{id}/optimize", routeHandler.OptimizeRoute)
	mux.HandleFunc("POST /routes/{id}/stops", routeHandler.AddStop)

	mux.HandleFunc("DELETE /stops/{id}", routeHandler.RemoveStop)
	mux.HandleFunc("POST /stops/{id}/reassign", routeHandler.ReassignStop)

	return requestIDMiddleware(loggingMiddleware(recoveryMiddleware(mux)))
}

package handlers

import (
	"net/http"
	"stop-route-service/internal/api/dto"
	"stop-route-service/internal/ports"
)

// StopHandler exposes read-only stop retrieval endpoints.
type StopHandler struct {
	Repo ports.StopRepository
}

func (h *StopHandler) List(w http.ResponseWriter, r *http.Request) {
	stops, err := h.Repo.ListStops(r.Context())
	if err != nil {
		writeServiceError(w, r, "list stops", err)
		return
	}

	res := dto.ListStopsResponse{
		Stops: make([]dto.StopResponse, 0, len(stops)),
	}
	for _, s := range stops {
		res.Stops = append(res.Stops, dto.NewStopResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

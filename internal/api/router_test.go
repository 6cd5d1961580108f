package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stop-route-service/internal/adapters/repositories"
	"stop-route-service/internal/api/dto"
	"stop-route-service/internal/domain"
	"stop-route-service/internal/services"
)

func sampleStops() []domain.Stop {
	return []domain.Stop{
		domain.NewStop(1, "Pool A", 40.4475, -79.9646, 10),
		domain.NewStop(2, "Pool B", 40.4300, -80.0005, 12),
		domain.NewStop(3, "Pool C", 40.4305, -79.9800, 8),
		domain.NewStop(4, "Pool D", 40.4520, -79.9730, 15),
		domain.NewStop(5, "Pool E", 40.4200, -79.9800, 10),
		domain.NewStop(6, "Pool F", 40.4380, -80.0100, 10),
		domain.NewStop(7, "Pool G", 40.4450, -80.0050, 10),
	}
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T, repo *repositories.StaticStopRepository) *testServer {
	t.Helper()
	h := NewRouter(repo, services.NewRouteSession(), RouterConfig{
		Depot:        domain.NewStop(0, "Depot", 40.4406, -79.9959, 0),
		RouteCount:   2,
		AvgSpeedKmph: 35,
	})
	return &testServer{t: t, handler: h}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func planIDs(p dto.PlanResponse) []int {
	ids := make([]int, 0, len(p.Stops))
	for _, s := range p.Stops {
		ids = append(ids, s.StopID)
	}
	return ids
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, repositories.NewStaticStopRepository(nil))

	rec := s.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	rec = s.do(http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestIDIsPropagated(t *testing.T) {
	s := newTestServer(t, repositories.NewStaticStopRepository(nil))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestListStops(t *testing.T) {
	s := newTestServer(t, repositories.NewStaticStopRepository(sampleStops()))

	rec := s.do(http.MethodGet, "/stops", "")

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dto.ListStopsResponse](t, rec)
	require.Len(t, res.Stops, 7)
	assert.Equal(t, dto.StopResponse{StopID: 1, Name: "Pool A", Lat: 40.4475, Lon: -79.9646, ServiceMinutes: 10}, res.Stops[0])
}

func TestListStopsRepositoryFailure(t *testing.T) {
	repo := repositories.NewStaticStopRepository(nil)
	repo.Err = errors.New("db down")
	s := newTestServer(t, repo)

	rec := s.do(http.MethodGet, "/stops", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestPlanUsesDefaults(t *testing.T) {
	s := newTestServer(t, repositories.NewStaticStopRepository(sampleStops()))

	rec := s.do(http.MethodPost, "/plans", `{"depart_at":"2026-01-01T08:00:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[dto.ListPlanResponse](t, rec)
	require.Len(t, res.Plans, 2)

	depart := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	total := 0
	for i, p := range res.Plans {
		assert.Equal(t, i+1, p.RouteID)
		assert.True(t, p.DepartAt.Equal(depart))
		assert.True(t, p.ReturnAt.After(depart))
		require.NotNil(t, p.Depot)
		assert.Equal(t, "Depot", p.Depot.Name)
		assert.Equal(t, 35.0, p.AvgSpeedKmph)
		assert.InDelta(t, p.TravelMinutes+p.ServiceMinutes, p.TotalMinutes, 1e-9)
		total += len(p.Stops)
	}
	assert.Equal(t, 7, total)

	rec = s.do(http.MethodGet, "/routes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[dto.ListPlanResponse](t, rec).Plans, 2)
}

func TestPlanWithOptions(t *testing.T) {
	s := newTestServer(t, repositories.NewStaticStopRepository(sampleStops()))

	rec := s.do(http.MethodPost, "/plans", `{"route_count":3,"avg_speed_kmph":50,"depot":{"name":"Yard","lat":40.44,"lon":-80.0}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decode[dto.ListPlanResponse](t, rec)
	require.Len(t, res.Plans, 3)
	assert.Equal(t, "Yard", res.Plans[0].Depot.Name)
	assert.Equal(t, 50.0, res.Plans[0].AvgSpeedKmph)

	rec = s.do(http.MethodPost, "/plans", `{"route_count":1,"no_depot":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res = decode[dto.ListPlanResponse](t, rec)
	require.Len(t, res.Plans, 1)
	assert.Nil(t, res.Plans[0].Depot)
	assert.Len(t, res.Plans[0].Stops, 7)
}

func TestPlanRejectsBadRequests(t *testing.T) {
	s := newTestServer(t, repositories.NewStaticStopRepository(sampleStops()))

	bodies := []string{
		`not json`,
		`{"route_count":2}{"route_count":3}`,
		`{"unknown":true}`,
		`{"route_count":51}`,
		`{"avg_speed_kmph":-4}`,
		`{"depot":{"name":"Yard","lat":95,"lon":0}}`,
		`{"depot":{"name":"Yard","lon":0}}`,
		`{"no_depot":true,"depot":{"lat":1,"lon":1}}`,
	}
	for _, body := range bodies {
		rec := s.do(http.MethodPost, "/plans", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestRoutesBeforePlanning(t *testing.T) {
	s := newTestServer(t, repositories.NewStaticStopRepository(sampleStops()))

	rec := s.do(http.MethodGet, "/routes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[dto.ListPlanResponse](t, rec).Plans)

	rec = s.do(http.MethodPost, "/routes/optimize", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/stops/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouteEdits(t *testing.T) {
	s := newTestServer(t, repositories.NewStaticStopRepository(sampleStops()))
	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/plans", `{}`).Code)

	// Add a new stop to route 1.
	rec := s.do(http.MethodPost, "/routes/1/stops", `{"stop_id":99,"name":"Pool Z","lat":40.435,"lon":-79.975,"service_minutes":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	r1 := decode[dto.PlanResponse](t, rec)
	assert.Equal(t, 99, r1.Stops[len(r1.Stops)-1].StopID)

	// The same stop id cannot be held twice.
	rec = s.do(http.MethodPost, "/routes/2/stops", `{"stop_id":99,"name":"Pool Z","lat":40.435,"lon":-79.975}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Unknown route: nothing is retained.
	rec = s.do(http.MethodPost, "/routes/9/stops", `{"stop_id":100,"name":"Pool Y","lat":40.43,"lon":-79.97}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Remove stop 3.
	rec = s.do(http.MethodDelete, "/stops/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Pool C", decode[dto.RemoveStopResponse](t, rec).Removed.Name)

	rec = s.do(http.MethodDelete, "/stops/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Reassigning to a missing route keeps the stop where it is.
	rec = s.do(http.MethodPost, "/stops/2/reassign", `{"route_id":9}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/stops/2/reassign", `{"route_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	r1 = decode[dto.PlanResponse](t, rec)
	assert.Contains(t, planIDs(r1), 2)

	rec = s.do(http.MethodPost, "/routes/optimize", "")
	require.Equal(t, http.StatusOK, rec.Code)
	plans := decode[dto.ListPlanResponse](t, rec).Plans
	require.Len(t, plans, 2)
	assert.ElementsMatch(t, []int{1, 5, 7, 99, 2}, planIDs(plans[0]))
	assert.ElementsMatch(t, []int{4, 6}, planIDs(plans[1]))

	rec = s.do(http.MethodPost, "/routes/2/optimize", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, planIDs(plans[1]), planIDs(decode[dto.PlanResponse](t, rec)))

	rec = s.do(http.MethodGet, "/routes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, planIDs(plans[0]), planIDs(decode[dto.PlanResponse](t, rec)))
}

func TestRouteEditValidation(t *testing.T) {
	s := newTestServer(t, repositories.NewStaticStopRepository(sampleStops()))
	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/plans", `{}`).Code)

	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/routes/abc", "", http.StatusBadRequest},
		{http.MethodGet, "/routes/7", "", http.StatusNotFound},
		{http.MethodPost, "/routes/1/stops", `{"stop_id":0,"name":"Z","lat":1,"lon":1}`, http.StatusBadRequest},
		{http.MethodPost, "/routes/1/stops", `{"stop_id":50,"name":"","lat":1,"lon":1}`, http.StatusBadRequest},
		{http.MethodPost, "/routes/1/stops", `{"stop_id":50,"name":"Z","lat":1}`, http.StatusBadRequest},
		{http.MethodPost, "/routes/1/stops", `{"stop_id":50,"name":"Z","lat":1,"lon":1,"service_minutes":-2}`, http.StatusBadRequest},
		{http.MethodPost, "/stops/1/reassign", `{}`, http.StatusBadRequest},
		{http.MethodPost, "/stops/x/reassign", `{"route_id":1}`, http.StatusBadRequest},
		{http.MethodPost, "/stops/42/reassign", `{"route_id":1}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := s.do(tt.method, tt.path, tt.body)
		assert.Equal(t, tt.want, rec.Code, "%s %s %s", tt.method, tt.path, tt.body)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := recoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

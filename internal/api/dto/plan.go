package dto

import "time"

type DepotRequest struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon  *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
}

type PlanRequest struct {
	RouteCount   int           `json:"route_count" validate:"omitempty,gte=1,lte=50"`
	AvgSpeedKmph float64       `json:"avg_speed_kmph" validate:"omitempty,gt=0"`
	DepartAt     *time.Time    `json:"depart_at"`
	Depot        *DepotRequest `json:"depot"`
	// Plan open paths instead of tours anchored at the depot.
	NoDepot bool `json:"no_depot"`
}

type PlanStopResponse struct {
	StopID         int       `json:"stop_id"`
	Name           string    `json:"name"`
	Lat            float64   `json:"lat"`
	Lon            float64   `json:"lon"`
	LegMeters      float64   `json:"leg_meters"`
	ServiceMinutes float64   `json:"service_minutes"`
	ArriveAt       time.Time `json:"arrive_at"`
	DepartAt       time.Time `json:"depart_at"`
}

type PlanResponse struct {
	RouteID             int                `json:"route_id"`
	DepartAt            time.Time          `json:"depart_at"`
	ReturnAt            time.Time          `json:"return_at"`
	AvgSpeedKmph        float64            `json:"avg_speed_kmph"`
	Depot               *StopResponse      `json:"depot"`
	TotalDistanceMeters float64            `json:"total_distance_meters"`
	TravelMinutes       float64            `json:"travel_minutes"`
	ServiceMinutes      float64            `json:"service_minutes"`
	TotalMinutes        float64            `json:"total_minutes"`
	Stops               []PlanStopResponse `json:"stops"`
}

type ListPlanResponse struct {
	Plans []PlanResponse `json:"plans"`
}

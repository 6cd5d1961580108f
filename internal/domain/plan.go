package domain

import "time"

// Represents a single visit in a planned route.
// ArriveAt and DepartAt are computed from the planned departure, the travel
// time of every leg before it and the service time of every earlier stop.
type RouteStop struct {
	StopID         int
	Name           string
	Location       Coordinates
	LegMeters      float64
	ServiceMinutes float64
	ArriveAt       time.Time
	DepartAt       time.Time
}

// Represents the planned schedule of a single route.
// A RoutePlan is a read-only snapshot of a Route at planning time; later
// edits to the route do not change it.
type RoutePlan struct {
	RouteID             int
	DepartAt            time.Time
	ReturnAt            time.Time
	AvgSpeedKmph        float64
	Depot               *Stop
	Stops               []RouteStop
	TotalDistanceMeters float64
	TravelMinutes       float64
	ServiceMinutes      float64
	TotalMinutes        float64
}

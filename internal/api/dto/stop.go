package dto

type StopRequest struct {
	StopID         int      `json:"stop_id" validate:"gt=0"`
	Name           string   `json:"name" validate:"required"`
	Lat            *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon            *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
	ServiceMinutes float64  `json:"service_minutes" validate:"gte=0"`
}

type StopResponse struct {
	StopID         int     `json:"stop_id"`
	Name           string  `json:"name"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	ServiceMinutes float64 `json:"service_minutes"`
}

type ListStopsResponse struct {
	Stops []StopResponse `json:"stops"`
}

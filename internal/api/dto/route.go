package dto

type ReassignRequest struct {
	RouteID int `json:"route_id" validate:"required"`
}

type RemoveStopResponse struct {
	Removed StopResponse `json:"removed"`
}

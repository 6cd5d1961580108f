package dto

import "stop-route-service/internal/domain"

func NewStopResponse(s domain.Stop) StopResponse {
	return StopResponse{
		StopID:         s.StopID,
		Name:           s.Name,
		Lat:            s.Location.Lat,
		Lon:            s.Location.Lon,
		ServiceMinutes: s.ServiceMinutes,
	}
}

func NewPlanResponse(p *domain.RoutePlan) PlanResponse {
	stops := make([]PlanStopResponse, 0, len(p.Stops))
	for _, s := range p.Stops {
		stops = append(stops, PlanStopResponse{
			StopID:         s.StopID,
			Name:           s.Name,
			Lat:            s.Location.Lat,
			Lon:            s.Location.Lon,
			LegMeters:      s.LegMeters,
			ServiceMinutes: s.ServiceMinutes,
			ArriveAt:       s.ArriveAt,
			DepartAt:       s.DepartAt,
		})
	}

	res := PlanResponse{
		RouteID:             p.RouteID,
		DepartAt:            p.DepartAt,
		ReturnAt:            p.ReturnAt,
		AvgSpeedKmph:        p.AvgSpeedKmph,
		TotalDistanceMeters: p.TotalDistanceMeters,
		TravelMinutes:       p.TravelMinutes,
		ServiceMinutes:      p.ServiceMinutes,
		TotalMinutes:        p.TotalMinutes,
		Stops:               stops,
	}
	if p.Depot != nil {
		d := NewStopResponse(*p.Depot)
		res.Depot = &d
	}
	return res
}

func NewListPlanResponse(plans []*domain.RoutePlan) ListPlanResponse {
	res := ListPlanResponse{Plans: make([]PlanResponse, 0, len(plans))}
	for _, p := range plans {
		res.Plans = append(res.Plans, NewPlanResponse(p))
	}
	return res
}

func (r StopRequest) ToDomain() domain.Stop {
	return domain.NewStop(r.StopID, r.Name, *r.Lat, *r.Lon, r.ServiceMinutes)
}

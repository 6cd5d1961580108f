package domain

import "errors"

var (
	ErrRouteNotFound  = errors.New("route not found")
	ErrStopNotFound   = errors.New("stop not found")
	ErrDuplicateRoute = errors.New("duplicate route id")
	ErrDuplicateStop  = errors.New("duplicate stop id")
	// A route's depot is never one of its stops.
	ErrDepotStop = errors.New("stop id is the route depot")
)

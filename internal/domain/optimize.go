package domain

import (
	"cmp"
	"math"
	"slices"
)

// Minimum length reduction, in meters, for a 2-opt move to count as an improvement.
const improvementEpsilon = 1e-6

// BuildNearestNeighbor reorders Stops with a greedy nearest-neighbor walk.
//
// The walk starts at the depot, or at the first stop when the route has no
// depot (that stop stays first). Each step visits the closest remaining stop;
// ties go to the stop that comes first in the current order, so the result is
// deterministic for a given input order. O(n²).
func (r *Route) BuildNearestNeighbor() {
	if len(r.Stops) == 0 {
		return
	}

	remaining := slices.Clone(r.Stops)
	ordered := make([]Stop, 0, len(remaining))

	var current Coordinates
	if r.depot != nil {
		current = r.depot.Location
	} else {
		current = remaining[0].Location
		ordered = append(ordered, remaining[0])
		remaining = remaining[1:]
	}

	for len(remaining) > 0 {
		best := 0
		bestDist := math.Inf(1)
		for i, s := range remaining {
			if d := current.DistanceTo(s.Location); d < bestDist {
				best = i
				bestDist = d
			}
		}

		next := remaining[best]
		remaining = slices.Delete(remaining, best, best+1)
		ordered = append(ordered, next)
		current = next.Location
	}

	r.Stops = ordered
}

// TwoOpt improves the visiting order by segment reversal until no single
// 2-opt move shortens the route (a local optimum). No-op below three stops.
func (r *Route) TwoOpt() {
	n := len(r.Stops)
	if n < 3 {
		return
	}

	for improved := true; improved; {
		improved = false
		for i := 0; i <= n-3; i++ {
			for k := i + 2; k <= n-1; k++ {
				// Reversing the whole open path only swaps its loose ends.
				if r.depot == nil && i == 0 && k == n-1 {
					continue
				}
				if r.twoOptDelta(i, k) < -improvementEpsilon {
					slices.Reverse(r.Stops[i : k+1])
					improved = true
				}
			}
		}
	}
}

// twoOptDelta is the change in route length from reversing Stops[i..k].
//
// With A before i and D after k, edges A-B and C-D are replaced by A-C and
// B-D. An edge whose outer anchor does not exist (open path end) contributes
// nothing to either side.
func (r *Route) twoOptDelta(i, k int) float64 {
	b := r.Stops[i].Location
	c := r.Stops[k].Location

	var delta float64
	if a, ok := r.anchorBefore(i); ok {
		delta += a.DistanceTo(c) - a.DistanceTo(b)
	}
	if d, ok := r.anchorAfter(k); ok {
		delta += b.DistanceTo(d) - c.DistanceTo(d)
	}

	return delta
}

func (r *Route) anchorBefore(i int) (Coordinates, bool) {
	if i > 0 {
		return r.Stops[i-1].Location, true
	}
	if r.depot != nil {
		return r.depot.Location, true
	}
	return Coordinates{}, false
}

func (r *Route) anchorAfter(k int) (Coordinates, bool) {
	if k < len(r.Stops)-1 {
		return r.Stops[k+1].Location, true
	}
	if r.depot != nil {
		return r.depot.Location, true
	}
	return Coordinates{}, false
}

// Optimize runs nearest-neighbor construction followed by 2-opt.
//
// The stop set is treated as an unordered bag: construction always starts
// from the stops in id order, so repeated calls rebuild the same tour. The
// current order, improved by 2-opt, is kept unless the rebuilt tour is
// strictly shorter. Optimize therefore never lengthens a route and a second
// call leaves the order unchanged.
func (r *Route) Optimize() {
	if len(r.Stops) == 0 {
		return
	}

	current := r.clone()
	current.TwoOpt()

	rebuilt := r.clone()
	slices.SortStableFunc(rebuilt.Stops, func(a, b Stop) int {
		return cmp.Compare(a.StopID, b.StopID)
	})
	rebuilt.BuildNearestNeighbor()
	rebuilt.TwoOpt()

	if rebuilt.TotalDistanceMeters() < current.TotalDistanceMeters()-improvementEpsilon {
		r.Stops = rebuilt.Stops
		return
	}
	r.Stops = current.Stops
}

func (r *Route) clone() *Route {
	return &Route{
		RouteID: r.RouteID,
		Stops:   slices.Clone(r.Stops),
		depot:   r.depot,
	}
}

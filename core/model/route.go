package model

// Coordinate is a route vertex in planner order: longitude first.
type Coordinate struct {
	Lon float64
	Lat float64
}

// LatLng is a position in map order.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LatLng swaps the coordinate into map order.
func (c Coordinate) LatLng() LatLng { return LatLng{Lat: c.Lat, Lng: c.Lon} }

// Route is an ordered polyline. Index order is path order.
type Route []Coordinate

// Empty reports whether the route has no vertex.
func (r Route) Empty() bool { return len(r) == 0 }

// Package routemap places schedule events on the route polyline for map
// overlays.
//
// Positions use a nearest-index approximation: an event's share of the
// trip duration selects a vertex index, with no interpolation between
// neighbouring vertices. On a sparse route several late events collapse
// onto the same or adjacent vertex.
package routemap

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/twpayne/go-polyline"
	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/dutylog/core/model"
)

// Position maps ev to a vertex of route. It returns false for an empty route.
func Position(ev model.Event, route model.Route, tripDurationHours float64) (model.LatLng, bool) {
	if route.Empty() {
		return model.LatLng{}, false
	}
	ratio := 0.0
	if tripDurationHours > 0 && !math.IsNaN(ev.Start) {
		ratio = math.Min(1, ev.Start/tripDurationHours)
	}
	if ratio < 0 {
		ratio = 0
	}
	idx := int(math.Floor(ratio * float64(len(route)-1)))
	return route[idx].LatLng(), true
}

// TripDuration is the latest event end over every day, never below one hour.
func TripDuration(days []model.Day) float64 {
	ends := []float64{1}
	for _, d := range days {
		for _, e := range d.Events {
			if end := e.End(); !math.IsNaN(end) {
				ends = append(ends, end)
			}
		}
	}
	return floats.Max(ends)
}

// Bounds returns the south-west and north-east corners of the route.
func Bounds(route model.Route) (sw, ne model.LatLng, ok bool) {
	if route.Empty() {
		return model.LatLng{}, model.LatLng{}, false
	}
	lats := make([]float64, len(route))
	lngs := make([]float64, len(route))
	for i, c := range route {
		lats[i], lngs[i] = c.Lat, c.Lon
	}
	sw = model.LatLng{Lat: floats.Min(lats), Lng: floats.Min(lngs)}
	ne = model.LatLng{Lat: floats.Max(lats), Lng: floats.Max(lngs)}
	return sw, ne, true
}

// EncodeRoute returns the route as a Google encoded polyline.
func EncodeRoute(route model.Route) string {
	coords := make([][]float64, len(route))
	for i, c := range route {
		coords[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodeRoute parses a Google encoded polyline.
func DecodeRoute(s string) (model.Route, error) {
	coords, rest, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("decode route: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("decode route: %d trailing bytes", len(rest))
	}
	route := make(model.Route, 0, len(coords))
	for _, c := range coords {
		route = append(route, model.Coordinate{Lat: c[0], Lon: c[1]})
	}
	return route, nil
}

// Marker is a point to pin on the map.
type Marker struct {
	Position model.LatLng    `json:"position"`
	Kind     model.EventKind `json:"kind"`
	Label    string          `json:"label"`
	Detail   string          `json:"detail,omitempty"`
	Start    float64         `json:"start"`
}

// Markers returns a start marker followed by one marker per non-drive event.
// Drive events are implied by the route line. An empty route yields nil.
func Markers(trip model.Trip) []Marker {
	if trip.Route.Empty() {
		return nil
	}
	out := []Marker{{Position: trip.Route[0].LatLng(), Label: "Start"}}
	total := TripDuration(trip.Days)
	for _, ev := range trip.Events() {
		if ev.Kind == model.KindDrive {
			continue
		}
		pos, ok := Position(ev, trip.Route, total)
		if !ok {
			continue
		}
		out = append(out, Marker{
			Position: pos,
			Kind:     ev.Kind,
			Label:    label(ev),
			Detail:   fmt.Sprintf("%sh, %.1f mi", strconv.FormatFloat(ev.Duration, 'f', -1, 64), ev.Distance),
			Start:    ev.Start,
		})
	}
	return out
}

func label(ev model.Event) string {
	if !ev.HasLocation() {
		return string(ev.Kind)
	}
	return string(ev.Kind) + " @ " + strings.TrimSpace(ev.Location)
}

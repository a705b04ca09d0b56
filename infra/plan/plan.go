// Package plan decodes trip planner responses into a model.Trip.
package plan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/dutylog/core/model"
	"github.com/kilianp07/dutylog/core/routemap"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrNoRoute is returned by Trip when the response carries no route.
var ErrNoRoute = errors.New("plan: response has no route")

// Response mirrors the planner payload.
type Response struct {
	DistanceMiles float64   `json:"distance_miles" yaml:"distance_miles"`
	DurationHours float64   `json:"duration_hours" yaml:"duration_hours"`
	RouteGeoJSON  *Geometry `json:"route_geojson,omitempty" yaml:"route_geojson,omitempty"`
	RoutePolyline string    `json:"route_polyline,omitempty" yaml:"route_polyline,omitempty"`
	Logs          Logs      `json:"logs" yaml:"logs"`
}

// Geometry is a GeoJSON LineString. Positions are [lon, lat].
type Geometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates [][]float64 `json:"coordinates" yaml:"coordinates"`
}

// Logs accepts either a list of days or an object wrapping it in "days".
// Each day may also carry the flat camelCase header and recap keys
// (totalMileage, shippingDoc, onDutyToday, total8days, availableTomorrow).
type Logs []model.Day

// dayPayload is a day plus the flat keys folded into it by day().
type dayPayload struct {
	model.Day `yaml:",inline"`

	FlatTotalMileage      *float64 `json:"totalMileage" yaml:"totalMileage"`
	FlatShippingDoc       string   `json:"shippingDoc" yaml:"shippingDoc"`
	FlatOnDutyToday       *float64 `json:"onDutyToday" yaml:"onDutyToday"`
	FlatTotalLast8Days    *float64 `json:"total8days" yaml:"total8days"`
	FlatAvailableTomorrow *float64 `json:"availableTomorrow" yaml:"availableTomorrow"`
}

// day folds the flat keys in. Snake_case and nested recap values win.
func (p dayPayload) day() model.Day {
	d := p.Day
	if d.TotalMileage == nil && p.FlatTotalMileage != nil {
		v := *p.FlatTotalMileage
		d.TotalMileage = &v
	}
	if !model.Present(d.ShippingDoc) {
		d.ShippingDoc = p.FlatShippingDoc
	}
	if d.Recap == (model.Recap{}) {
		if p.FlatOnDutyToday != nil {
			d.Recap.OnDutyToday = *p.FlatOnDutyToday
		}
		if p.FlatTotalLast8Days != nil {
			d.Recap.TotalLast8Days = *p.FlatTotalLast8Days
		}
		if p.FlatAvailableTomorrow != nil {
			d.Recap.AvailableTomorrow = *p.FlatAvailableTomorrow
		}
	}
	return d
}

func foldDays(ps []dayPayload) Logs {
	if ps == nil {
		return nil
	}
	days := make(Logs, len(ps))
	for i, p := range ps {
		days[i] = p.day()
	}
	return days
}

type wrappedLogs struct {
	Days []dayPayload `json:"days" yaml:"days"`
}

func (l *Logs) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*l = nil
		return nil
	case b[0] == '[':
		var days []dayPayload
		if err := json.Unmarshal(b, &days); err != nil {
			return err
		}
		*l = foldDays(days)
		return nil
	case b[0] == '{':
		var w wrappedLogs
		if err := json.Unmarshal(b, &w); err != nil {
			return err
		}
		*l = foldDays(w.Days)
		return nil
	default:
		return fmt.Errorf("plan: logs must be a list or an object, got %.20s", b)
	}
}

func (l *Logs) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var days []dayPayload
		if err := n.Decode(&days); err != nil {
			return err
		}
		*l = foldDays(days)
	case yaml.MappingNode:
		var w wrappedLogs
		if err := n.Decode(&w); err != nil {
			return err
		}
		*l = foldDays(w.Days)
	case yaml.ScalarNode:
		if n.Tag != "!!null" {
			return fmt.Errorf("plan: logs must be a list or a mapping (line %d)", n.Line)
		}
		*l = nil
	default:
		return fmt.Errorf("plan: logs must be a list or a mapping (line %d)", n.Line)
	}
	return nil
}

// Route returns the route, from GeoJSON when present, otherwise from the
// encoded polyline.
func (r Response) Route() (model.Route, error) {
	if r.RouteGeoJSON != nil && len(r.RouteGeoJSON.Coordinates) > 0 {
		route := make(model.Route, 0, len(r.RouteGeoJSON.Coordinates))
		for i, p := range r.RouteGeoJSON.Coordinates {
			if len(p) < 2 {
				return nil, fmt.Errorf("plan: route vertex %d has %d values", i, len(p))
			}
			route = append(route, model.Coordinate{Lon: p[0], Lat: p[1]})
		}
		return route, nil
	}
	if strings.TrimSpace(r.RoutePolyline) != "" {
		return routemap.DecodeRoute(strings.TrimSpace(r.RoutePolyline))
	}
	return nil, ErrNoRoute
}

// Trip converts the response. A missing route is not an error: the trip
// still carries its logs.
func (r Response) Trip() (model.Trip, error) {
	route, err := r.Route()
	if err != nil && !errors.Is(err, ErrNoRoute) {
		return model.Trip{}, err
	}
	return model.Trip{
		Route:         route,
		Days:          []model.Day(r.Logs),
		DistanceMiles: r.DistanceMiles,
		DurationHours: r.DurationHours,
	}, nil
}

// Load reads a planner response from a JSON or YAML file, or from stdin
// when path is "-". The format follows the extension and is sniffed
// otherwise.
func Load(path string, stdin io.Reader) (model.Trip, error) {
	var (
		b   []byte
		err error
	)
	if path == Stdin {
		if stdin == nil {
			stdin = os.Stdin
		}
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return model.Trip{}, fmt.Errorf("plan: read %s: %w", path, err)
	}
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	case ".json":
		format = "json"
	default:
		format = sniff(b)
	}
	return Decode(bytes.NewReader(b), format)
}

// Decode reads a planner response from r in the given format.
func Decode(r io.Reader, format string) (model.Trip, error) {
	var resp Response
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&resp); err != nil {
			return model.Trip{}, fmt.Errorf("plan: yaml: %w", err)
		}
	case "json":
		if err := json.NewDecoder(r).Decode(&resp); err != nil {
			return model.Trip{}, fmt.Errorf("plan: json: %w", err)
		}
	default:
		return model.Trip{}, fmt.Errorf("plan: unsupported format: %s", format)
	}
	return resp.Trip()
}

func sniff(b []byte) string {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && (b[0] == '{' || b[0] == '[') {
		return "json"
	}
	return "yaml"
}

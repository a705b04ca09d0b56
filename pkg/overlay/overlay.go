// Package overlay writes map markers for external map consumers.
package overlay

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/dutylog/core/model"
	"github.com/kilianp07/dutylog/core/routemap"
)

// Document is the JSON form of an overlay: the encoded route, its bounds
// and the markers.
type Document struct {
	Polyline string            `json:"polyline"`
	SW       *model.LatLng     `json:"sw,omitempty"`
	NE       *model.LatLng     `json:"ne,omitempty"`
	Markers  []routemap.Marker `json:"markers"`
}

// Build assembles the overlay of a trip.
func Build(trip model.Trip) Document {
	doc := Document{Polyline: routemap.EncodeRoute(trip.Route), Markers: routemap.Markers(trip)}
	if sw, ne, ok := routemap.Bounds(trip.Route); ok {
		doc.SW, doc.NE = &sw, &ne
	}
	if doc.Markers == nil {
		doc.Markers = []routemap.Marker{}
	}
	return doc
}

// WriteJSON writes the overlay of trip to w.
func WriteJSON(w io.Writer, trip model.Trip) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Build(trip))
}

// WriteCSV writes one marker per row.
func WriteCSV(w io.Writer, markers []routemap.Marker) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"lat", "lng", "kind", "start_h", "label", "detail"}); err != nil {
		return err
	}
	for _, m := range markers {
		rec := []string{
			strconv.FormatFloat(m.Position.Lat, 'f', -1, 64),
			strconv.FormatFloat(m.Position.Lng, 'f', -1, 64),
			string(m.Kind),
			strconv.FormatFloat(m.Start, 'f', -1, 64),
			m.Label,
			m.Detail,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package model

import "strings"

// Recap is the 70 hour / 8 day summary printed at the bottom of a log sheet.
type Recap struct {
	OnDutyToday       float64 `json:"on_duty_today" yaml:"on_duty_today"`
	TotalLast8Days    float64 `json:"total_last_8_days" yaml:"total_last_8_days"`
	AvailableTomorrow float64 `json:"available_tomorrow" yaml:"available_tomorrow"`
}

// Day is one 24 hour log sheet of a trip. Text fields left empty are
// considered absent.
type Day struct {
	Date         string   `json:"date" yaml:"date"`
	From         string   `json:"from,omitempty" yaml:"from,omitempty"`
	To           string   `json:"to,omitempty" yaml:"to,omitempty"`
	Carrier      string   `json:"carrier,omitempty" yaml:"carrier,omitempty"`
	Office       string   `json:"office,omitempty" yaml:"office,omitempty"`
	Truck        string   `json:"truck,omitempty" yaml:"truck,omitempty"`
	Trailer      string   `json:"trailer,omitempty" yaml:"trailer,omitempty"`
	Terminal     string   `json:"terminal,omitempty" yaml:"terminal,omitempty"`
	Miles        *float64 `json:"miles,omitempty" yaml:"miles,omitempty"`
	TotalMileage *float64 `json:"total_mileage,omitempty" yaml:"total_mileage,omitempty"`
	Remarks      string   `json:"remarks,omitempty" yaml:"remarks,omitempty"`
	Manifest     string   `json:"manifest,omitempty" yaml:"manifest,omitempty"`
	Commodity    string   `json:"commodity,omitempty" yaml:"commodity,omitempty"`
	ShippingDoc  string   `json:"shipping_doc,omitempty" yaml:"shipping_doc,omitempty"`
	Recap        Recap    `json:"recap" yaml:"recap"`
	Events       []Event  `json:"events" yaml:"events"`
}

// DrivingMiles sums the distance of the day's drive events.
// The boolean is false when no drive event reports a distance.
func (d Day) DrivingMiles() (float64, bool) {
	total := 0.0
	found := false
	for _, e := range d.Events {
		if e.Kind == KindDrive && e.Distance > 0 {
			total += e.Distance
			found = true
		}
	}
	return total, found
}

// Trip is a planned route together with its daily logs. It is replaced
// wholesale on every new plan.
type Trip struct {
	Route         Route   `json:"-" yaml:"-"`
	Days          []Day   `json:"-" yaml:"-"`
	DistanceMiles float64 `json:"distance_miles" yaml:"distance_miles"`
	DurationHours float64 `json:"duration_hours" yaml:"duration_hours"`
}

// Events returns every event of the trip in day order.
func (t Trip) Events() []Event {
	var out []Event
	for _, d := range t.Days {
		out = append(out, d.Events...)
	}
	return out
}

// Present reports whether an optional text field carries a value.
func Present(s string) bool { return strings.TrimSpace(s) != "" }

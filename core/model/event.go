package model

import "strings"

// EventKind is the activity type emitted by the trip planner.
type EventKind string

const (
	KindDrive   EventKind = "drive"
	KindSleep   EventKind = "sleep"
	KindBreak   EventKind = "break"
	KindPickup  EventKind = "pickup"
	KindDropoff EventKind = "dropoff"
	KindFuel    EventKind = "fuel"
	KindOther   EventKind = "other"
)

// Event is a timestamped duty activity.
type Event struct {
	Kind     EventKind `json:"type" yaml:"type"`
	Start    float64   `json:"start" yaml:"start"`       // hours since trip origin, may exceed 24
	Duration float64   `json:"duration" yaml:"duration"` // hours
	Location string    `json:"where,omitempty" yaml:"where,omitempty"`
	Distance float64   `json:"miles,omitempty" yaml:"miles,omitempty"`
}

// End returns Start+Duration.
func (e Event) End() float64 { return e.Start + e.Duration }

// HasLocation reports whether the event carries a non-blank location label.
func (e Event) HasLocation() bool { return strings.TrimSpace(e.Location) != "" }

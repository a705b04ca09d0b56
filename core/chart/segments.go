package chart

import (
	"math"

	"github.com/kilianp07/dutylog/core/model"
)

// Segments derives the duty segments of a day, one per event, in stored
// order. Each event's start is folded into the day with start mod 24 and
// its end is clipped at 24; the remainder belongs to the next day's sheet.
func Segments(day model.Day) []model.DutySegment {
	out := make([]model.DutySegment, 0, len(day.Events))
	for _, ev := range day.Events {
		start := dayHour(ev.Start)
		end := math.Min(HoursPerDay, start+hours(ev.Duration))
		out = append(out, model.DutySegment{Row: Category(ev.Kind), Start: start, End: end})
	}
	return out
}

// dayHour folds an hour offset into [0,24). Non-finite values collapse to 0.
func dayHour(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	s := math.Mod(h, HoursPerDay)
	if s < 0 {
		s += HoursPerDay
	}
	if s >= HoursPerDay {
		s = 0
	}
	return s
}

// hours clamps a duration to be non-negative.
func hours(d float64) float64 {
	if math.IsNaN(d) || d < 0 {
		return 0
	}
	return d
}

// Totals sums the hours of the segments per duty row.
func Totals(segs []model.DutySegment) [model.RowCount]float64 {
	var t [model.RowCount]float64
	for _, s := range segs {
		if s.Row >= 0 && int(s.Row) < model.RowCount {
			t[s.Row] += s.Hours()
		}
	}
	return t
}

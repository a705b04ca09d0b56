package chart

import "github.com/kilianp07/dutylog/core/model"

// HoursPerDay is the width of the chart's time window.
const HoursPerDay = 24

// Layout constants in logical units.
const (
	Width  = 210 * 3.78
	Height = 524.0

	MarginX    = 40.0
	MarginTop  = 24.0
	LabelWidth = 100.0
	HourBand   = 30.0
	RowHeight  = 40.0
	LineHeight = 16.0

	HeaderTop = 50.0
	GridTop   = 124.0

	RemarksTop    = GridTop + HourBand + model.RowCount*RowHeight + 12
	RemarksHeight = 44.0
	ShippingTop   = RemarksTop + RemarksHeight + 10
	BoxHeight     = 40.0
	RecapTop      = ShippingTop + BoxHeight + 10
	SignatureY    = RecapTop + BoxHeight + 30

	TitleSize      = 14.0
	TextSize       = 10.0
	AnnotationSize = 8.0
	SegmentWidth   = 2.0
	ConnectorWidth = 2.0
	GridStroke     = 1.0
)

// Colours used by the chart.
const (
	Black   Color = "#000000"
	White   Color = "#ffffff"
	Duty    Color = "#e11d1d"
	Subtle  Color = "#555555"
	NoColor Color = ""
)

// GridLeft is the x of the first hour column.
const GridLeft = MarginX + LabelWidth

// CellWidth is the width of one hour column.
const CellWidth = (Width - 2*MarginX - LabelWidth) / HoursPerDay

// HourX converts an hour in [0,24] into an x coordinate.
func HourX(h float64) float64 { return GridLeft + h*CellWidth }

// RowTop returns the y of the top edge of a duty row.
func RowTop(r model.DutyRow) float64 {
	return GridTop + HourBand + float64(r)*RowHeight
}

// RowY returns the y of the centre line of a duty row.
func RowY(r model.DutyRow) float64 { return RowTop(r) + RowHeight/2 }

package model

// DutyRow is one of the four regulatory duty statuses drawn as a chart row.
type DutyRow int

const (
	RowOffDuty DutyRow = iota
	RowSleeperBerth
	RowDriving
	RowOnDutyNotDriving
)

// RowCount is the number of fixed duty rows.
const RowCount = 4

// Rows returns the duty rows in display order.
func Rows() []DutyRow {
	return []DutyRow{RowOffDuty, RowSleeperBerth, RowDriving, RowOnDutyNotDriving}
}

// String returns the label printed next to the row on a log sheet.
func (r DutyRow) String() string {
	switch r {
	case RowOffDuty:
		return "Off Duty"
	case RowSleeperBerth:
		return "Sleeper Berth"
	case RowDriving:
		return "Driving"
	case RowOnDutyNotDriving:
		return "On Duty Not Driving"
	default:
		return "unknown"
	}
}

// DutySegment is the portion of an event drawn on one day's chart.
// Start and End are hours within the day and satisfy 0 <= Start <= End <= 24.
type DutySegment struct {
	Row   DutyRow
	Start float64
	End   float64
}

// Hours returns the length of the segment.
func (s DutySegment) Hours() float64 { return s.End - s.Start }

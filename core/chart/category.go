package chart

import "github.com/kilianp07/dutylog/core/model"

// Category maps an event kind to its duty row. Unknown kinds fall back to
// On Duty Not Driving.
func Category(kind model.EventKind) model.DutyRow {
	switch kind {
	case model.KindDrive:
		return model.RowDriving
	case model.KindSleep:
		return model.RowSleeperBerth
	case model.KindBreak:
		return model.RowOffDuty
	case model.KindPickup, model.KindDropoff, model.KindFuel:
		return model.RowOnDutyNotDriving
	default:
		return model.RowOnDutyNotDriving
	}
}

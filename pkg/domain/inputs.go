package domain

import "time"

// PlanningInputs bundles everything the external parser collaborator feeds
// into the core. The core never parses a file or talks to a database to
// obtain these: that is the caller's job.
type PlanningInputs struct {
	Nodes          []Node
	Routes         []Route
	TruckSchedules []TruckSchedule
	LaborDays      []LaborDay
	Forecast       Forecast
	Costs          CostStructure

	InitialInventory     InitialInventory // optional; nil/empty means "cold start"
	InventorySnapshotDate time.Time       // optional; zero value means "unset"
}

// LaborCalendar builds the date-indexed calendar from LaborDays.
func (in PlanningInputs) LaborCalendar() LaborCalendar {
	cal := make(LaborCalendar, len(in.LaborDays))
	for _, d := range in.LaborDays {
		cal[NormalizeDate(d.Date)] = d
	}
	return cal
}

package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DepartureType distinguishes same-day-production-eligible afternoon
// departures from morning departures that can only load the previous day's
// end-of-day inventory.
type DepartureType int

const (
	DepartureMorning DepartureType = iota
	DepartureAfternoon
)

func (d DepartureType) String() string {
	if d == DepartureAfternoon {
		return "afternoon"
	}
	return "morning"
}

// Weekday wraps time.Weekday with an "any" sentinel: an unset day_of_week
// means the schedule is active every day.
type Weekday struct {
	Day   time.Weekday
	IsAny bool
}

// AnyWeekday constructs the wildcard "any day" matcher.
func AnyWeekday() Weekday { return Weekday{IsAny: true} }

// Matches reports whether this weekday constraint is satisfied by date.
func (w Weekday) Matches(date time.Time) bool {
	return w.IsAny || w.Day == date.Weekday()
}

// TruckID identifies a scheduled truck line.
type TruckID string

// TruckSchedule is a recurring truck departure.
type TruckSchedule struct {
	ID                 TruckID
	OriginNodeID       NodeID
	DestinationNodeID  NodeID
	DepartureType      DepartureType
	DayOfWeek          Weekday
	CapacityUnits      int64
	PalletCapacity     int64 // default 44
	CostFixed          decimal.Decimal
	CostPerUnit        decimal.Decimal
	IntermediateStops  []NodeID
}

// IsActive reports whether the schedule departs on date: always when
// DayOfWeek is the any-day wildcard, otherwise only when the weekday matches.
func (t TruckSchedule) IsActive(date time.Time) bool {
	return t.DayOfWeek.Matches(date)
}

// EffectivePalletCapacity returns the configured pallet capacity, defaulting
// to PalletsPerTruck when unset.
func (t TruckSchedule) EffectivePalletCapacity() int64 {
	if t.PalletCapacity <= 0 {
		return PalletsPerTruck
	}
	return t.PalletCapacity
}

// Validate checks structural invariants.
func (t TruckSchedule) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("truck schedule: empty id")
	}
	if t.OriginNodeID == "" || t.DestinationNodeID == "" {
		return fmt.Errorf("truck %s: origin and destination required", t.ID)
	}
	if t.CapacityUnits <= 0 {
		return fmt.Errorf("truck %s: capacity_units must be positive", t.ID)
	}
	return nil
}

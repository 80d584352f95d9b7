package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LaborDay is the labor calendar entry for a single production date.
type LaborDay struct {
	Date          time.Time
	FixedHours    decimal.Decimal
	RegularRate   decimal.Decimal
	OvertimeRate  decimal.Decimal
	NonFixedRate  decimal.Decimal
	MinimumHours  decimal.Decimal
	MaximumHours  decimal.Decimal
}

// IsProductionCapable reports whether any production may occur on this day
// (a day is production-capable iff maximum_hours > 0).
func (d LaborDay) IsProductionCapable() bool {
	return d.MaximumHours.IsPositive()
}

// IsNonFixedDay reports whether this day pays the non-fixed (premium) rate
// for all hours worked (fixed_hours == 0, e.g. a weekend).
func (d LaborDay) IsNonFixedDay() bool {
	return d.FixedHours.IsZero()
}

// Validate checks LaborDay invariants.
func (d LaborDay) Validate() error {
	if d.FixedHours.IsNegative() {
		return fmt.Errorf("labor day %s: fixed_hours must be >= 0", d.Date.Format("2006-01-02"))
	}
	if d.MinimumHours.IsNegative() {
		return fmt.Errorf("labor day %s: minimum_hours must be >= 0", d.Date.Format("2006-01-02"))
	}
	maxAllowed := decimal.NewFromInt(24)
	if d.MaximumHours.GreaterThan(maxAllowed) {
		return fmt.Errorf("labor day %s: maximum_hours must be <= 24", d.Date.Format("2006-01-02"))
	}
	return nil
}

// LaborCalendar maps a date (truncated to midnight UTC) to its LaborDay.
type LaborCalendar map[time.Time]LaborDay

// NormalizeDate truncates a date to midnight UTC so it is usable as a stable
// map key and horizon index across the whole codebase.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Lookup returns the labor day for date, or a zero-capacity default when the
// calendar does not cover it.
func (c LaborCalendar) Lookup(date time.Time) (LaborDay, bool) {
	d, ok := c[NormalizeDate(date)]
	return d, ok
}

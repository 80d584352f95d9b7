// Package temporal implements the temporal scaffolding and forecast
// aggregation component: it chooses the date set the rest of
// the pipeline iterates over, with an optional variable-granularity bucket
// mode for far-term demand.
package temporal

import (
	"sort"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// Horizon is the ordered, deduplicated set of planning dates.
type Horizon struct {
	Dates []time.Time
}

// Contains reports whether date falls within the horizon.
func (h Horizon) Contains(date time.Time) bool {
	date = domain.NormalizeDate(date)
	for _, d := range h.Dates {
		if d.Equal(date) {
			return true
		}
	}
	return false
}

// Start and End return the horizon's bounds; both are zero if the horizon
// is empty.
func (h Horizon) Start() time.Time {
	if len(h.Dates) == 0 {
		return time.Time{}
	}
	return h.Dates[0]
}

func (h Horizon) End() time.Time {
	if len(h.Dates) == 0 {
		return time.Time{}
	}
	return h.Dates[len(h.Dates)-1]
}

// BuildDaily produces a daily horizon over [start, end] inclusive, with an
// optional production buffer of bufferDays prepended to allow for transit
// lead time before the first demand date.
func BuildDaily(start, end time.Time, bufferDays int) Horizon {
	start = domain.NormalizeDate(start)
	end = domain.NormalizeDate(end)
	if bufferDays > 0 {
		start = start.AddDate(0, 0, -bufferDays)
	}
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return Horizon{Dates: dates}
}

// Slice returns the contiguous sub-horizon [from, to] (both inclusive),
// used by the rolling-horizon driver to carve out windows.
func (h Horizon) Slice(from, to time.Time) Horizon {
	from = domain.NormalizeDate(from)
	to = domain.NormalizeDate(to)
	var dates []time.Time
	for _, d := range h.Dates {
		if !d.Before(from) && !d.After(to) {
			dates = append(dates, d)
		}
	}
	return Horizon{Dates: dates}
}

// sortDates is a small helper kept for callers that build a date set out of
// order (e.g. from a map) and need the stable enumeration order 
// requires.
func sortDates(dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
}

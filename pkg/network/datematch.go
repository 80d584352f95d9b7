package network

import (
	"fmt"
	"strings"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// weekdayNames parses the day_of_week domain
// {mon,tue,wed,thu,fri,sat,sun,any} from a constrained string vocabulary
// into a comparable value, with "any" as the open-ended sentinel.
var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
	"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
}

// ParseWeekday converts a spec-vocabulary day-of-week string into a
// domain.Weekday matcher. An empty string or "any" is the wildcard.
func ParseWeekday(s string) (domain.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "any" {
		return domain.AnyWeekday(), nil
	}
	day, ok := weekdayNames[s]
	if !ok {
		return domain.Weekday{}, fmt.Errorf("network: unrecognized day_of_week %q", s)
	}
	return domain.Weekday{Day: day}, nil
}

// ActiveTrucksOn returns every truck schedule on the (origin, dest) leg that
// departs on date, in input order, realized as a filter rather than a
// materialized map, since the date dimension is unbounded but the filter
// is O(trucks-on-leg).
func (idx *Index) ActiveTrucksOn(origin, dest domain.NodeID, date time.Time) []domain.TruckSchedule {
	var active []domain.TruckSchedule
	for _, t := range idx.TrucksForLeg(origin, dest) {
		if t.IsActive(date) {
			active = append(active, t)
		}
	}
	return active
}

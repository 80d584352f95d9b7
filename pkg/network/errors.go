package network

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// InfeasibilityError reports a structural network problem that makes the
// plan infeasible before any solve is attempted.
type InfeasibilityError struct {
	Reason string
}

func (e *InfeasibilityError) Error() string {
	return fmt.Sprintf("network infeasibility: %s", e.Reason)
}

// CheckDemandReachability validates that every demand node is reachable,
// and that its earliest possible arrival state can still satisfy demand
// within the shelf-life window (a node reachable only in a state whose
// max life has already elapsed by the earliest arrival day is, in effect,
// unreachable for demand purposes).
func CheckDemandReachability(idx *Index, r *Reachability) []error {
	var errs []error
	for _, demandID := range idx.DemandNodes {
		if !r.IsReachable(demandID) {
			errs = append(errs, &InfeasibilityError{
				Reason: fmt.Sprintf("demand node %q is not reachable from any manufacturing node", demandID),
			})
			continue
		}
		arrival := r.EarliestArrivalDays[demandID]
		states := r.StatesAtNode[demandID]
		sellable := false
		for state := range states {
			if state == domain.StateFrozen {
				continue // frozen cannot satisfy demand directly
			}
			maxLife := decimalFromInt(state.MaxLifeDays())
			if arrival.LessThan(maxLife) {
				sellable = true
			}
		}
		if !sellable {
			errs = append(errs, &InfeasibilityError{
				Reason: fmt.Sprintf("demand node %q: earliest arrival (%s days) leaves no shelf life in any sellable state", demandID, arrival.String()),
			})
		}
	}
	return errs
}

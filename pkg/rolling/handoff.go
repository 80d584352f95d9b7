package rolling

import (
	"fmt"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/extract"
	"github.com/sverzijl/planning-latest-sub008/pkg/model"
)

// HandoffState is the starting state one window passes to the next: the
// committed region's end-of-day inventory, plus shipments already launched
// but not yet arrived at the boundary: a small keyed accumulator built
// fresh from a prior pass's results and queried by the next.
type HandoffState struct {
	Initial  domain.InitialInventory
	Arrivals map[model.PreArrival]int64
}

// NewHandoffState returns an empty starting state, used for the very first
// window (no prior committed region to hand off).
func NewHandoffState() *HandoffState {
	return &HandoffState{Initial: domain.InitialInventory{}, Arrivals: map[model.PreArrival]int64{}}
}

// BuildHandoff derives the next window's starting state from a solved
// window's extracted Result. On-hand cohorts dated exactly at committedEnd
// become Initial; shipments that departed within the window but arrive
// after committedEnd become Arrivals keyed to their real delivery date, so
// the next window's balance sees them land on schedule rather than
// collapsed onto its first day.
func BuildHandoff(result *extract.Result, committedEnd time.Time) *HandoffState {
	h := NewHandoffState()

	for key, qty := range result.CohortInventory {
		if !key.CurrDate.Equal(committedEnd) {
			continue
		}
		initKey := domain.InitialInventoryKey{NodeID: key.NodeID, ProductID: key.ProductID, State: key.State}
		h.Initial[initKey] += qty
	}

	for _, s := range result.Shipments {
		if s.DepartureDate.After(committedEnd) || !s.DeliveryDate.After(committedEnd) {
			continue
		}
		arrKey := model.PreArrival{NodeID: s.Destination, ProductID: s.ProductID, State: s.ArrivalState, Date: s.DeliveryDate}
		h.Arrivals[arrKey] += s.Quantity
	}

	return h
}

// TotalUnits reports the sum of on-hand plus in-transit quantity this
// state carries forward, a quick sanity figure for logging between
// windows.
func (h *HandoffState) TotalUnits() int64 {
	var total int64
	for _, q := range h.Initial {
		total += q
	}
	for _, q := range h.Arrivals {
		total += q
	}
	return total
}

func (h *HandoffState) String() string {
	return fmt.Sprintf("HandoffState{%d initial cohorts, %d in-transit arrivals, %d total units}",
		len(h.Initial), len(h.Arrivals), h.TotalUnits())
}

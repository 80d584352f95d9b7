package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RouteID identifies a leg for logging and constraint naming purposes; it is
// derived, not stored on input (origin/destination/mode already identify a
// leg uniquely in this network).
type RouteID string

// Route is a single directed transport leg.
type Route struct {
	OriginNodeID      NodeID
	DestinationNodeID NodeID
	TransitDays        decimal.Decimal // 0, 0.5, 1, 1.5, ...: half-integer allowed
	TransportMode      TransportMode
	CostPerUnit        decimal.Decimal
}

// ID returns a stable identifier for this leg.
func (r Route) ID() RouteID {
	return RouteID(fmt.Sprintf("%s->%s:%s", r.OriginNodeID, r.DestinationNodeID, r.TransportMode))
}

// Validate checks Route invariants: transit_days is a non-negative
// integer or half-integer.
func (r Route) Validate() error {
	if r.OriginNodeID == "" || r.DestinationNodeID == "" {
		return fmt.Errorf("route: both endpoints must be set")
	}
	if r.TransitDays.IsNegative() {
		return fmt.Errorf("route %s: transit_days must be >= 0", r.ID())
	}
	halfSteps := r.TransitDays.Mul(decimal.NewFromInt(2))
	if !halfSteps.Equal(halfSteps.Truncate(0)) {
		return fmt.Errorf("route %s: transit_days must be a multiple of 0.5", r.ID())
	}
	return nil
}

// ArrivalState derives the state a shipment on this leg takes on arrival at
// destCapability.
func (r Route) ArrivalState(destCapability StorageMode) CohortState {
	return ArrivalState(r.TransportMode, destCapability)
}

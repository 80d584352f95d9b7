// Package cohort builds the sparse cohort index: the set of
// valid (node, product, production_date, current_date, state) tuples, and
// the parallel sparse sets for shipment and demand-draw cohorts. Iterating
// these sets, instead of the naive node x product x date x date x state
// cartesian product, is what gives the model its 95-99% variable-space
// reduction.
package cohort

import (
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// InventoryCohortKey identifies one inventory_cohort decision variable.
//
// For ambient and frozen states, ProdDate is the original manufacturing
// date. For thawed cohorts, ProdDate is the thaw (arrival) date: thaw on
// arrival creates a new thawed cohort whose prod_date resets to the
// arrival date, so the 14-day post-thaw clock starts then. Carrying that
// reset through the key itself (rather than a separate "effective prod
// date" field) is what lets a single balance rule handle every state
// uniformly.
type InventoryCohortKey struct {
	NodeID     domain.NodeID
	ProductID  domain.ProductID
	ProdDate   time.Time
	CurrDate   time.Time
	State      domain.CohortState
}

// AgeDays returns how many days old the cohort is as of its CurrDate.
func (k InventoryCohortKey) AgeDays() int {
	return int(k.CurrDate.Sub(k.ProdDate).Hours() / 24)
}

// ShipmentCohortKey identifies one shipment_cohort decision variable.
//
// OriginState is the state the cohort is loaded in at departure, determined
// by the leg's transport mode: ambient transport loads an ambient cohort,
// frozen transport loads a frozen one. ArrivalState is what it becomes on
// arrival, which can differ from OriginState when the leg freezes or
// thaws the product in transit.
type ShipmentCohortKey struct {
	Route         domain.RouteID
	Origin        domain.NodeID
	Destination   domain.NodeID
	ProductID     domain.ProductID
	ProdDate      time.Time // the origin inventory cohort's own ProdDate
	DepartureDate time.Time
	DeliveryDate  time.Time
	OriginState   domain.CohortState
	ArrivalState  domain.CohortState
}

// DemandCohortKey identifies one demand_from_cohort decision variable: a
// specific production-dated (or thaw-dated) cohort drawn on to satisfy
// demand at a node on a given date.
type DemandCohortKey struct {
	NodeID    domain.NodeID
	ProductID domain.ProductID
	ProdDate  time.Time
	Date      time.Time
}

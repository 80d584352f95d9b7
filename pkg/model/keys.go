package model

import (
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

type productionKey struct {
	Node    domain.NodeID
	Product domain.ProductID
	Date    time.Time
}

// producesKey identifies the produces[N,t] binary gating whether any
// production occurs at all on a date.
type producesKey struct {
	Node domain.NodeID
	Date time.Time
}

// producesProductKey identifies the produces_P[N,t] per-product binary used
// to count distinct products for the linear changeover approximation.
type producesProductKey struct {
	Node    domain.NodeID
	Product domain.ProductID
	Date    time.Time
}

type shortageKey struct {
	Node    domain.NodeID
	Product domain.ProductID
	Date    time.Time
}

type truckDateKey struct {
	Truck domain.TruckID
	Date  time.Time // departure date
}

type truckLoadKey struct {
	Truck        domain.TruckID
	Product      domain.ProductID
	DeliveryDate time.Time
}

type palletKey struct {
	Truck       domain.TruckID
	Destination domain.NodeID
	Date        time.Time // departure date
}

// invPalletKey identifies the ceil-linked inv_pallets[N,S,date] aggregate
// used for per-pallet-day holding cost.
type invPalletKey struct {
	Node  domain.NodeID
	State domain.CohortState
	Date  time.Time
}

// inventoryLookupKey groups inventory cohorts sharing a (node, product,
// state, prod date) so balance.go can find "yesterday's" cohort quickly.
type inventoryLookupKey struct {
	Node    domain.NodeID
	Product domain.ProductID
	State   domain.CohortState
	ProdDate time.Time
}

type shipmentDestKey struct {
	Dest         domain.NodeID
	Product      domain.ProductID
	ArrivalState domain.CohortState
	DeliveryDate time.Time
}

type shipmentOriginKey struct {
	Origin        domain.NodeID
	Product       domain.ProductID
	OriginState   domain.CohortState
	DepartureDate time.Time
}

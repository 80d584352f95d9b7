package domain

import (
	"fmt"
	"time"
)

// ShipmentID identifies a materialized shipment leg-instance.
type ShipmentID string

// Shipment is one leg of a (possibly multi-leg) journey for a cohort.
// Multi-leg journeys share BatchID.
type Shipment struct {
	ID            ShipmentID
	BatchID       BatchID // empty if no batch could be traced (should not occur in a valid solution)
	ProductID     ProductID
	Origin        NodeID
	Destination   NodeID
	LegRoute      RouteID
	DepartureDate time.Time
	DeliveryDate  time.Time
	Quantity      int64
	ArrivalState  CohortState
}

// NewShipmentID formats a deterministic shipment identifier from its leg and
// departure date, mirroring the batch ID's determinism requirement.
func NewShipmentID(route RouteID, departureDate time.Time, product ProductID) ShipmentID {
	return ShipmentID(fmt.Sprintf("SHIP-%s-%s-%s", departureDate.Format("20060102"), route, product))
}

// InitialInventoryKey identifies a starting inventory position, keyed as
// "(node_id, product_id, state)".
type InitialInventoryKey struct {
	NodeID    NodeID
	ProductID ProductID
	State     CohortState
}

// InitialInventory is the optional starting position supplied by the
// caller, and the hand-off structure the rolling-horizon driver produces
// between windows.
type InitialInventory map[InitialInventoryKey]int64

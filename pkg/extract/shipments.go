package extract

import (
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// extractShipments materializes every shipment_cohort with a positive
// solved value into a Shipment, linking multi-leg journeys by BatchID.
// A cohort's ProdDate survives unchanged across non-thaw hops
// (pkg/cohort/index.go), so the originating batch can always be found by
// (product, prod_date) alone, except for a leg departing a thawed cohort,
// which the network never produces (thaw only occurs at ambient-only
// destinations, which are demand nodes with no further outbound route);
// BatchID is left empty in that case per the field's own doc comment.
func (e *Extractor) extractShipments(batches []domain.ProductionBatch) []domain.Shipment {
	batchIdx := buildBatchIndex(batches)
	shipmentVars := e.builder.ShipmentVars()

	out := make([]domain.Shipment, 0, len(shipmentVars))
	for k, v := range shipmentVars {
		qty := roundUnits(e.solution.Value(v))
		if qty <= 0 {
			continue
		}
		batchID := batchIdx[batchKey{Product: k.ProductID, Date: dateKey(k.ProdDate)}]
		out = append(out, domain.Shipment{
			ID:            domain.NewShipmentID(k.Route, k.DepartureDate, k.ProductID),
			BatchID:       batchID,
			ProductID:     k.ProductID,
			Origin:        k.Origin,
			Destination:   k.Destination,
			LegRoute:      k.Route,
			DepartureDate: k.DepartureDate,
			DeliveryDate:  k.DeliveryDate,
			Quantity:      qty,
			ArrivalState:  k.ArrivalState,
		})
	}
	return out
}

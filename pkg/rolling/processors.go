package rolling

import (
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/extract"
)

// filterForecast keeps only the entries whose date falls within [start, end]
// inclusive, mirroring the committed-region-only aggregation the rest of
// the driver applies to solved output.
func filterForecast(forecast domain.Forecast, start, end time.Time) domain.Forecast {
	var out domain.Forecast
	for _, e := range forecast {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// commitBatches keeps only the batches produced within the window's
// committed region.
func commitBatches(batches []domain.ProductionBatch, w Window) []domain.ProductionBatch {
	var out []domain.ProductionBatch
	for _, b := range batches {
		if b.ProductionDate.Before(w.Start) || b.ProductionDate.After(w.CommittedEnd) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// commitShipments keeps only the shipments that departed within the
// window's committed region. A shipment departing on the last committed
// day but arriving after it is still kept here (its units are carried
// forward by BuildHandoff, not dropped): commit and handoff read the same
// departed-in-window shipments for two different purposes.
func commitShipments(shipments []domain.Shipment, w Window) []domain.Shipment {
	var out []domain.Shipment
	for _, s := range shipments {
		if s.DepartureDate.Before(w.Start) || s.DepartureDate.After(w.CommittedEnd) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// commitCosts restricts a window's cost breakdown to its committed region,
// via the extractor's date-range filter, then folds it into a running
// total. Consecutive windows' committed regions are contiguous and
// non-overlapping by construction (window[n].CommittedEnd immediately
// precedes window[n+1].Start), so summing every window's committed-only
// breakdown double-counts nothing and requires no fractional proration.
func commitCosts(e *extract.Extractor, w Window, running *extract.CostBreakdown) {
	c := e.CostsInRange(w.Start, w.CommittedEnd)
	running.Labor = running.Labor.Add(c.Labor)
	running.Production = running.Production.Add(c.Production)
	running.Transport = running.Transport.Add(c.Transport)
	running.Holding = running.Holding.Add(c.Holding)
	running.Truck = running.Truck.Add(c.Truck)
	running.Shortage = running.Shortage.Add(c.Shortage)
	running.Total = running.Total.Add(c.Total)
}

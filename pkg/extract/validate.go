package extract

import (
	"fmt"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/model"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
)

// validatePackaging checks two post-solve packaging
// invariants: every production quantity is a whole number of cases, and
// every truck-destination-date's pallet count is the ceiling of its loaded
// units. Both are linear-constraint invariants the model already enforces
// (pkg/model/production.go, pkg/model/trucks.go), so a violation here
// indicates numerical slack in the LP solution rather than a modeling gap,
// still worth reporting, since a caller downstream treats these as hard
// physical constraints.
func (e *Extractor) validatePackaging(batches []domain.ProductionBatch) ([]string, bool) {
	var issues []string
	ok := true

	for _, b := range batches {
		if b.Quantity%domain.UnitsPerCase != 0 {
			issues = append(issues, fmt.Sprintf(
				"production %s %s: quantity %d is not a multiple of %d units/case",
				b.ManufacturingNodeID, b.ProductID, b.Quantity, domain.UnitsPerCase))
			ok = false
		}
	}

	type truckDateKey struct {
		truck domain.TruckID
		date  time.Time
	}
	loadedByTruckDelivery := make(map[truckDateKey]int64)
	for _, u := range e.builder.TruckLoadVars() {
		qty := roundUnits(e.solution.Value(u.Var))
		if qty <= 0 {
			continue
		}
		loadedByTruckDelivery[truckDateKey{u.Truck, u.DeliveryDate}] += qty
	}

	transitByOD := make(map[domain.NodeID]map[domain.NodeID]int)
	for _, r := range e.builder.Index.AllRoutes() {
		if transitByOD[r.OriginNodeID] == nil {
			transitByOD[r.OriginNodeID] = make(map[domain.NodeID]int)
		}
		transitByOD[r.OriginNodeID][r.DestinationNodeID] = network.CeilDays(r.TransitDays)
	}

	for _, p := range e.builder.PalletVars() {
		pallets := roundUnits(e.solution.Value(p.Var))
		transit, ok2 := transitByOD[originOf(e.builder, p.Truck)][p.Destination]
		if !ok2 {
			continue
		}
		delivery := p.DepartureDate.AddDate(0, 0, transit)
		loaded := loadedByTruckDelivery[truckDateKey{p.Truck, delivery}]
		want := domain.PalletsForUnits(loaded)
		if pallets != want {
			issues = append(issues, fmt.Sprintf(
				"truck %s -> %s on %s: loaded %d units, expected %d pallets, solved %d",
				p.Truck, p.Destination, p.DepartureDate.Format("2006-01-02"), loaded, want, pallets))
			ok = false
		}
	}

	return issues, ok
}

func originOf(b *model.Builder, truck domain.TruckID) domain.NodeID {
	for _, t := range b.Index.AllTrucks() {
		if t.ID == truck {
			return t.OriginNodeID
		}
	}
	return ""
}

package extract

import (
	"math"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// quantityEpsilon is the rounding tolerance below which a solved variable is
// treated as zero, matching the mass-balance tolerance validated elsewhere
// (1e-6 units).
const quantityEpsilon = 1e-6

func roundUnits(v float64) int64 {
	if v < quantityEpsilon {
		return 0
	}
	return int64(math.Round(v))
}

// extractBatches materializes every production[node,product,date] with a
// positive solved value into a ProductionBatch. Production
// always enters the balance as an ambient cohort (pkg/model/balance.go),
// so InitialState is always ambient here.
func (e *Extractor) extractBatches() []domain.ProductionBatch {
	units := e.builder.ProductionVars()
	out := make([]domain.ProductionBatch, 0, len(units))
	for _, u := range units {
		qty := roundUnits(e.solution.Value(u.Var))
		if qty <= 0 {
			continue
		}
		out = append(out, domain.ProductionBatch{
			ID:                  domain.NewBatchID(u.Date, u.Product, 1),
			ProductionDate:      u.Date,
			ManufacturingNodeID: u.Node,
			ProductID:           u.Product,
			Quantity:            qty,
			InitialState:        domain.StateAmbient,
		})
	}
	return out
}

// batchIndex maps (product, prod_date) to the batch produced for it, the
// lookup extractShipments uses to assign a BatchID to each leg. Batch IDs
// already embed product and date, not node, since manufacturing is
// single-site.
type batchKey struct {
	Product domain.ProductID
	Date    string
}

func buildBatchIndex(batches []domain.ProductionBatch) map[batchKey]domain.BatchID {
	idx := make(map[batchKey]domain.BatchID, len(batches))
	for _, b := range batches {
		idx[batchKey{Product: b.ProductID, Date: dateKey(b.ProductionDate)}] = b.ID
	}
	return idx
}

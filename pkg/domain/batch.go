package domain

import (
	"fmt"
	"time"
)

// BatchID is the deterministic production batch identifier
// ("BATCH-YYYYMMDD-PRODUCT-NNNN").
type BatchID string

// NewBatchID formats a deterministic batch ID. seq is 1-based per
// (date, product) to disambiguate the rare case of more than one batch
// emitted for the same product on the same date (split lots).
func NewBatchID(date time.Time, product ProductID, seq int) BatchID {
	return BatchID(fmt.Sprintf("BATCH-%s-%s-%04d", date.Format("20060102"), product, seq))
}

// ProductionBatch is a materialized production run.
type ProductionBatch struct {
	ID                  BatchID
	ProductionDate      time.Time
	ManufacturingNodeID NodeID
	ProductID           ProductID
	Quantity            int64 // units; always a multiple of UnitsPerCase
	InitialState        CohortState
}

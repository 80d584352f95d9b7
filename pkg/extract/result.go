// Package extract materializes a solved MILP into the output shapes a
// downstream reporting collaborator needs: production batches, shipments,
// the cohort inventory trajectory, a cost breakdown, and a post-solve
// validation report.
package extract

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// CostBreakdown sums the objective's components over realized (solved)
// values: production, transport, holding, labor, truck, and shortage.
type CostBreakdown struct {
	Labor      decimal.Decimal
	Production decimal.Decimal
	Transport  decimal.Decimal
	Holding    decimal.Decimal
	Truck      decimal.Decimal
	Shortage   decimal.Decimal
	Total      decimal.Decimal
}

// CohortInventoryKey is the output key shape:
// "(node, product, prod_date, curr_date, state)".
type CohortInventoryKey struct {
	NodeID    domain.NodeID
	ProductID domain.ProductID
	ProdDate  time.Time
	CurrDate  time.Time
	State     domain.CohortState
}

// ValidationReport is the post-solve packaging/mass-balance check.
type ValidationReport struct {
	PackagingOK    bool
	MassBalanceOK  bool
	Issues         []string
}

// OK reports whether every post-solve check passed.
func (r ValidationReport) OK() bool {
	return r.PackagingOK && r.MassBalanceOK
}

// Result is the full materialized solve output.
type Result struct {
	Batches         []domain.ProductionBatch
	Shipments       []domain.Shipment
	CohortInventory map[CohortInventoryKey]int64
	CostBreakdown   CostBreakdown
	Validation      ValidationReport
}

package planner

import (
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/extract"
	"github.com/sverzijl/planning-latest-sub008/pkg/events"
	"github.com/sverzijl/planning-latest-sub008/pkg/rolling"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
)

// Options gates the recognized configuration knobs. Not every field
// changes this implementation's behavior: UseBatchTracking's false branch
// ("an aggregated legacy formulation") is not implemented, so Solve
// rejects it rather than silently ignoring it.
type Options struct {
	UseBatchTracking            bool
	EnforceShelfLife             bool
	AllowShortages                bool
	EnableProductionSmoothing    bool
	EnforcePackagingConstraints  bool
	UsePalletHolding              bool
}

// DefaultOptions returns the documented default option set.
func DefaultOptions() Options {
	return Options{
		UseBatchTracking:            true,
		EnforceShelfLife:             true,
		AllowShortages:                false,
		EnableProductionSmoothing:    true,
		EnforcePackagingConstraints:  true,
	}
}

// SolverSummary mirrors the documented "solver_status" output shape.
type SolverSummary struct {
	Termination solver.Status
	Gap         float64
	WallTime    time.Duration
}

// PlanResult is the orchestrator's combined output: one struct naming every
// collaborator's contribution plus a few roll-up fields for a caller that
// only wants the headline numbers.
type PlanResult struct {
	Batches         []domain.ProductionBatch
	Shipments       []domain.Shipment
	CohortInventory map[extract.CohortInventoryKey]int64
	CostBreakdown   extract.CostBreakdown
	Solver          SolverSummary
	Validation      extract.ValidationReport
	Warnings        []Warning
	Timeline        []events.Event

	// Windows is non-nil only for a rolling-horizon solve, one entry per
	// window solved.
	Windows []rolling.WindowResult
}

// Package model builds the MILP: it declares every
// decision variable over the sparse cohort set, wires the unified inventory
// balance, demand satisfaction, production/labor, and truck-loading
// constraints, and assembles the cost-minimizing objective. This is the
// dominant component by volume in the pipeline: the rest of the system
// exists to feed it a network, a horizon, and a cohort index, and to carry
// its solution back out (pkg/extract).
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/cohort"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
	"github.com/sverzijl/planning-latest-sub008/pkg/temporal"
)

// Builder accumulates variables and constraints into an algebra.Problem.
// Its shape, one struct holding the raw inputs plus a growing set of
// name-to-VarID maps, with one method per constraint family, mirrors the
// orchestrator shape used elsewhere in this pipeline: hold references to
// every collaborating service and call them in a fixed sequence.
type Builder struct {
	Index    *network.Index
	Cohorts  *cohort.Index
	Horizon  temporal.Horizon
	Products []domain.ProductID
	Labor    domain.LaborCalendar
	Costs    domain.CostStructure
	Initial  domain.InitialInventory
	Forecast domain.Forecast

	// PreArrivals injects a fixed external inflow into a specific
	// (node, product, state, date) cohort's balance row, on top of the
	// ordinary production/shipment inflows: the rolling-horizon driver's
	// mechanism (pkg/rolling) for handing a shipment still in transit at a
	// window boundary to the next window on its real arrival date, rather
	// than collapsing it into day-one initial inventory.
	// Nil is equivalent to an empty map.
	PreArrivals map[PreArrival]int64

	// ShortagesAllowed gates whether a shortage variable is declared per
	// (demand node, product, date); when false, unmet demand makes the
	// problem infeasible instead of paying the shortage penalty.
	ShortagesAllowed bool

	// UsePalletHolding switches the holding-cost term to the per-pallet-day
	// rate (and introduces the ceil-linked pallet count variables) when the
	// cost structure configures it.
	UsePalletHolding bool

	problem *algebra.Problem

	productionVars map[productionKey]algebra.VarID
	productionCasesVars map[productionKey]algebra.VarID
	producesVars   map[producesKey]algebra.VarID
	producesProductVars map[producesProductKey]algebra.VarID

	inventoryVars map[cohort.InventoryCohortKey]algebra.VarID
	shipmentVars  map[cohort.ShipmentCohortKey]algebra.VarID
	demandVars    map[cohort.DemandCohortKey]algebra.VarID
	shortageVars  map[shortageKey]algebra.VarID

	truckUsedVars map[truckDateKey]algebra.VarID
	truckLoadVars map[truckLoadKey]algebra.VarID
	palletVars    map[palletKey]algebra.VarID
	invPalletVars map[invPalletKey]algebra.VarID

	laborFixedVars    map[time.Time]algebra.VarID
	laborOvertimeVars map[time.Time]algebra.VarID
	laborNonFixedVars map[time.Time]algebra.VarID

	// index helpers built once in variables.go, reused by later passes
	inventoryByNodeProductDate map[inventoryLookupKey][]cohort.InventoryCohortKey
	shipmentsByDestArrival     map[shipmentDestKey][]cohort.ShipmentCohortKey
	shipmentsByOrigin          map[shipmentOriginKey][]cohort.ShipmentCohortKey
}

// New constructs a Builder over already-built inputs. Callers run C1-C4
// (pkg/domain, pkg/network, pkg/temporal, pkg/cohort) first and pass the
// results in here.
func New(idx *network.Index, cohorts *cohort.Index, horizon temporal.Horizon, products []domain.ProductID, labor domain.LaborCalendar, costs domain.CostStructure, initial domain.InitialInventory, forecast domain.Forecast) *Builder {
	return &Builder{
		Index: idx, Cohorts: cohorts, Horizon: horizon, Products: products,
		Labor: labor, Costs: costs, Initial: initial, Forecast: forecast,
		ShortagesAllowed: true,
	}
}

// Build runs the full pipeline and returns the assembled problem.
func (b *Builder) Build() (*algebra.Problem, error) {
	b.problem = algebra.NewProblem()

	b.indexCohorts()
	if err := b.declareVariables(); err != nil {
		return nil, fmt.Errorf("model: declaring variables: %w", err)
	}
	if err := b.addBalanceConstraints(); err != nil {
		return nil, fmt.Errorf("model: balance constraints: %w", err)
	}
	if err := b.addDemandConstraints(); err != nil {
		return nil, fmt.Errorf("model: demand constraints: %w", err)
	}
	if err := b.addProductionConstraints(); err != nil {
		return nil, fmt.Errorf("model: production constraints: %w", err)
	}
	if err := b.addTruckConstraints(); err != nil {
		return nil, fmt.Errorf("model: truck constraints: %w", err)
	}
	b.addObjective()

	return b.problem, nil
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

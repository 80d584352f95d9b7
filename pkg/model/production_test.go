package model

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/cohort"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
	"github.com/sverzijl/planning-latest-sub008/pkg/temporal"
)

// TestNonFixedDayMinimumHoursFloor pins down the piecewise labor-hours
// rule: a non-fixed day (fixed_hours=0) with a minimum_hours floor pays
// that floor in full the moment any production happens, even when the
// units produced would need only a fraction of it. Only one day in the
// calendar is production-capable, so the solver has no cheaper day to
// shift the batch to.
func TestNonFixedDayMinimumHoursFloor(t *testing.T) {
	idx := smallNetwork(t)
	offsets := cohort.ComputeOffsets(idx)
	horizon := temporal.BuildDaily(day(1), day(10), 0)
	ci := cohort.Build(idx, offsets, horizon, []domain.ProductID{"P"})

	onlyDay := day(5)
	labor := make(domain.LaborCalendar)
	labor[domain.NormalizeDate(onlyDay)] = domain.LaborDay{
		Date: onlyDay, FixedHours: decimal.Zero, RegularRate: decimal.NewFromInt(25),
		OvertimeRate: decimal.NewFromInt(37), NonFixedRate: decimal.NewFromInt(80),
		MinimumHours: decimal.NewFromInt(4), MaximumHours: decimal.NewFromInt(14),
	}

	forecast := domain.Forecast{
		{LocationID: "Sp", ProductID: "P", Date: day(6), Quantity: 1000},
	}

	costs := domain.CostStructure{
		ProductionCostPerUnit:        decimal.NewFromFloat(0.5),
		TransportCostPerUnitAmbient:  decimal.NewFromFloat(0.1),
		HoldingCostPerUnitDayAmbient: decimal.NewFromFloat(0.01),
		ShortagePenaltyPerUnit:       decimal.NewFromInt(1000),
	}

	b := New(idx, ci, horizon, []domain.ProductID{"P"}, labor, costs, domain.InitialInventory{}, forecast)
	problem, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	adapter := solver.NewAdapter(nil, nil)
	sol, err := adapter.Solve(problem, solver.DefaultConfig())
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !sol.Status.IsSuccess() {
		t.Fatalf("expected a successful solve, got %s", sol.Status)
	}

	nonFixedVarName := fmt.Sprintf("labor_non_fixed.%s", dateKey(onlyDay))
	nonFixedVar, ok := problem.VarByName(nonFixedVarName)
	if !ok {
		t.Fatalf("expected variable %s to exist", nonFixedVarName)
	}

	const wantHours = 4.0
	gotHours := sol.Value(nonFixedVar)
	if gotHours < wantHours-1e-6 {
		t.Errorf("non-fixed hours paid = %v, want at least the %v-hour floor", gotHours, wantHours)
	}
	// Production of 1000 units at 1000/hr plus 1hr startup/shutdown overhead
	// needs only ~2 hours of capacity; the floor, not actual usage, should
	// be what's binding, so the solver should not pay more than the floor.
	if gotHours > wantHours+1e-6 {
		t.Errorf("non-fixed hours paid = %v, want exactly the %v-hour floor (no reason to pay more)", gotHours, wantHours)
	}
}

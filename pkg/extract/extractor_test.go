package extract

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/cohort"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/model"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
	"github.com/sverzijl/planning-latest-sub008/pkg/temporal"
)

func day(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }

func tinyNetwork(t *testing.T) *network.Index {
	in := domain.PlanningInputs{
		Nodes: []domain.Node{
			{ID: "M", Capabilities: domain.NodeCapabilities{
				CanManufacture: true, ProductionRatePerHr: 1000, CanStore: true,
				StorageMode: domain.StorageAmbient, DailyStartupHours: 0.5, DailyShutdownHours: 0.5, DefaultChangeoverHrs: 1,
			}},
			{ID: "Sp", Capabilities: domain.NodeCapabilities{HasDemand: true, CanStore: true, StorageMode: domain.StorageAmbient}},
		},
		Routes: []domain.Route{
			{OriginNodeID: "M", DestinationNodeID: "Sp", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportAmbient},
		},
	}
	idx, err := network.Build(in)
	if err != nil {
		t.Fatalf("network.Build: %v", err)
	}
	return idx
}

func solveTiny(t *testing.T) (*model.Builder, *algebra.Problem, *solver.Solution) {
	idx := tinyNetwork(t)
	offsets := cohort.ComputeOffsets(idx)
	horizon := temporal.BuildDaily(day(1), day(6), 0)
	ci := cohort.Build(idx, offsets, horizon, []domain.ProductID{"P"})

	labor := make(domain.LaborCalendar)
	for _, d := range horizon.Dates {
		labor[domain.NormalizeDate(d)] = domain.LaborDay{
			Date: d, FixedHours: decimal.NewFromInt(12), RegularRate: decimal.NewFromInt(25),
			OvertimeRate: decimal.NewFromInt(37), NonFixedRate: decimal.NewFromInt(40),
			MinimumHours: decimal.NewFromInt(4), MaximumHours: decimal.NewFromInt(14),
		}
	}

	forecast := domain.Forecast{
		{LocationID: "Sp", ProductID: "P", Date: day(5), Quantity: 100},
	}

	costs := domain.CostStructure{
		ProductionCostPerUnit:        decimal.NewFromFloat(0.5),
		TransportCostPerUnitAmbient:  decimal.NewFromFloat(0.1),
		HoldingCostPerUnitDayAmbient: decimal.NewFromFloat(0.01),
		ShortagePenaltyPerUnit:       decimal.NewFromInt(100),
	}

	b := model.New(idx, ci, horizon, []domain.ProductID{"P"}, labor, costs, domain.InitialInventory{}, forecast)
	problem, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	adapter := solver.NewAdapter(nil, nil)
	cfg := solver.DefaultConfig()
	cfg.TimeLimit = 5 * time.Second
	sol, err := adapter.Solve(problem, cfg)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return b, problem, sol
}

func TestExtractProducesBatchesAndShipments(t *testing.T) {
	b, problem, sol := solveTiny(t)
	if !sol.Status.IsSuccess() {
		t.Fatalf("expected a successful solve, got %v", sol.Status)
	}

	result, err := New(b, problem, sol).Extract()
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(result.Batches) == 0 {
		t.Error("expected at least one production batch to cover demand")
	}
	var totalProduced int64
	for _, batch := range result.Batches {
		if batch.Quantity%domain.UnitsPerCase != 0 {
			t.Errorf("batch %s: quantity %d not a multiple of a case", batch.ID, batch.Quantity)
		}
		totalProduced += batch.Quantity
	}
	if totalProduced < 100 {
		t.Errorf("expected production to cover the 100-unit forecast, got %d", totalProduced)
	}

	if !result.Validation.PackagingOK {
		t.Errorf("packaging validation failed: %v", result.Validation.Issues)
	}
	if !result.Validation.MassBalanceOK {
		t.Errorf("mass balance validation failed: %v", result.Validation.Issues)
	}
}

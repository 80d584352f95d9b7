package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/cohort"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
	"github.com/sverzijl/planning-latest-sub008/pkg/temporal"
)

func day(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }

func smallNetwork(t *testing.T) *network.Index {
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

func TestBuilderBuildProducesNonEmptyProblem(t *testing.T) {
	idx := smallNetwork(t)
	offsets := cohort.ComputeOffsets(idx)
	horizon := temporal.BuildDaily(day(1), day(10), 0)
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
		ProductionCostPerUnit:       decimal.NewFromFloat(0.5),
		TransportCostPerUnitAmbient: decimal.NewFromFloat(0.1),
		HoldingCostPerUnitDayAmbient: decimal.NewFromFloat(0.01),
		ShortagePenaltyPerUnit:      decimal.NewFromInt(100),
	}

	b := New(idx, ci, horizon, []domain.ProductID{"P"}, labor, costs, domain.InitialInventory{}, forecast)
	problem, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if problem.NumVars() == 0 {
		t.Error("expected a non-empty problem")
	}
	if problem.NumConstraints() == 0 {
		t.Error("expected at least one constraint")
	}

	if _, ok := problem.VarByName("shortage.Sp.P.2026-01-05"); !ok {
		t.Error("expected a shortage variable for the forecast entry on 2026-01-05")
	}
}

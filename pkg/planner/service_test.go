package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
)

func pday(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }

func smallInputs() domain.PlanningInputs {
	return domain.PlanningInputs{
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
		LaborDays: []domain.LaborDay{
			{Date: pday(1), FixedHours: decimal.NewFromInt(12), RegularRate: decimal.NewFromInt(25), OvertimeRate: decimal.NewFromInt(37), NonFixedRate: decimal.NewFromInt(40), MinimumHours: decimal.NewFromInt(4), MaximumHours: decimal.NewFromInt(14)},
			{Date: pday(2), FixedHours: decimal.NewFromInt(12), RegularRate: decimal.NewFromInt(25), OvertimeRate: decimal.NewFromInt(37), NonFixedRate: decimal.NewFromInt(40), MinimumHours: decimal.NewFromInt(4), MaximumHours: decimal.NewFromInt(14)},
		},
		Forecast: domain.Forecast{
			{LocationID: "Sp", ProductID: "P", Date: pday(2), Quantity: 100},
		},
		Costs: domain.CostStructure{
			ProductionCostPerUnit:        decimal.NewFromFloat(0.5),
			TransportCostPerUnitAmbient:  decimal.NewFromFloat(0.1),
			HoldingCostPerUnitDayAmbient: decimal.NewFromFloat(0.01),
			ShortagePenaltyPerUnit:       decimal.NewFromInt(100),
		},
	}
}

func TestPlanningServiceSolveHappyPath(t *testing.T) {
	svc := NewPlanningService(solver.NewAdapter(nil, nil), nil, nil)
	cfg := solver.DefaultConfig()
	cfg.TimeLimit = 5 * time.Second

	result, err := svc.Solve(context.Background(), smallInputs(), DefaultOptions(), cfg)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !result.Validation.OK() {
		t.Errorf("expected a valid solution, got issues: %v", result.Validation.Issues)
	}
	if len(result.Batches) == 0 {
		t.Error("expected at least one production batch")
	}
	if result.Solver.Termination != solver.Optimal && result.Solver.Termination != solver.FeasibleWithGap {
		t.Errorf("expected a successful termination, got %s", result.Solver.Termination)
	}
}

func TestPlanningServiceSolveRejectsInvalidInput(t *testing.T) {
	svc := NewPlanningService(solver.NewAdapter(nil, nil), nil, nil)
	in := smallInputs()
	in.Forecast = domain.Forecast{{LocationID: "unknown-node", ProductID: "P", Date: pday(2), Quantity: 100}}

	_, err := svc.Solve(context.Background(), in, DefaultOptions(), solver.DefaultConfig())
	var inputErr *InputValidationError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected an InputValidationError, got %v", err)
	}
}

func TestPlanningServiceSolveRejectsUnreachableDemand(t *testing.T) {
	svc := NewPlanningService(solver.NewAdapter(nil, nil), nil, nil)
	in := smallInputs()
	in.Routes = nil // Sp is no longer reachable from M

	_, err := svc.Solve(context.Background(), in, DefaultOptions(), solver.DefaultConfig())
	var netErr *NetworkInfeasibilityError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected a NetworkInfeasibilityError, got %v", err)
	}
}

func TestPlanningServiceSolveRollingCoversHorizon(t *testing.T) {
	svc := NewPlanningService(solver.NewAdapter(nil, nil), nil, nil)
	in := smallInputs()
	in.Forecast = domain.Forecast{
		{LocationID: "Sp", ProductID: "P", Date: pday(5), Quantity: 50},
		{LocationID: "Sp", ProductID: "P", Date: pday(12), Quantity: 50},
	}
	for d := 1; d <= 15; d++ {
		in.LaborDays = append(in.LaborDays, domain.LaborDay{
			Date: pday(d), FixedHours: decimal.NewFromInt(12), RegularRate: decimal.NewFromInt(25),
			OvertimeRate: decimal.NewFromInt(37), NonFixedRate: decimal.NewFromInt(40),
			MinimumHours: decimal.NewFromInt(4), MaximumHours: decimal.NewFromInt(14),
		})
	}

	cfg := solver.DefaultConfig()
	cfg.TimeLimit = 5 * time.Second

	result, err := svc.SolveRolling(context.Background(), in, DefaultOptions(), cfg, 8, 2)
	if err != nil {
		t.Fatalf("SolveRolling: %v", err)
	}
	if len(result.Windows) < 2 {
		t.Errorf("expected at least 2 windows over a 9-day horizon with an 8-day window, got %d", len(result.Windows))
	}
	if !result.Validation.OK() {
		t.Errorf("expected valid committed output, got issues: %v", result.Validation.Issues)
	}
}

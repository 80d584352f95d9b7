package scenario_test

import (
	"context"
	"testing"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/planner"
	"github.com/sverzijl/planning-latest-sub008/pkg/scenario"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
)

func solveScenario(t *testing.T, sc scenario.Scenario, opts planner.Options) *planner.PlanResult {
	t.Helper()
	svc := planner.NewPlanningService(solver.NewAdapter(nil, nil), nil, nil)
	result, err := svc.Solve(context.Background(), sc.Inputs, opts, solver.DefaultConfig())
	if err != nil {
		t.Fatalf("scenario %s: Solve: %v", sc.Name, err)
	}
	if !result.Solver.Termination.IsSuccess() {
		t.Fatalf("scenario %s: solver terminated %s, expected a usable solution", sc.Name, result.Solver.Termination)
	}
	return result
}

func sumShipmentQty(shipments []domain.Shipment) int64 {
	var total int64
	for _, s := range shipments {
		total += s.Quantity
	}
	return total
}

func TestScenarioADirectAmbient(t *testing.T) {
	sc := scenario.A()
	result := solveScenario(t, sc, planner.DefaultOptions())

	if !result.Validation.OK() {
		t.Errorf("validation failed: %v", result.Validation.Issues)
	}
	if !result.CostBreakdown.Shortage.IsZero() {
		t.Errorf("expected zero shortage cost, got %s", result.CostBreakdown.Shortage)
	}

	var production int64
	for _, batch := range result.Batches {
		production += batch.Quantity
	}
	if production != 6000 {
		t.Errorf("total production = %d, want 6000", production)
	}

	wantArrival := sc.Inputs.Forecast[0].Date
	wantDeparture := wantArrival.AddDate(0, 0, -1)

	for _, s := range result.Shipments {
		if s.Origin != "M" || s.Destination != "Dn" {
			t.Errorf("unexpected shipment leg %s->%s", s.Origin, s.Destination)
			continue
		}
		if !s.DepartureDate.Equal(wantDeparture) {
			t.Errorf("shipment departs %s, want %s", s.DepartureDate, wantDeparture)
		}
		if !s.DeliveryDate.Equal(wantArrival) {
			t.Errorf("shipment arrives %s, want %s", s.DeliveryDate, wantArrival)
		}
	}
	if shipped := sumShipmentQty(result.Shipments); shipped != 6000 {
		t.Errorf("total shipped = %d, want 6000", shipped)
	}

	for key, qty := range result.CohortInventory {
		if key.State == domain.StateFrozen && qty > 0 {
			t.Errorf("unexpected frozen cohort %+v with qty %d", key, qty)
		}
	}
}

func TestScenarioBHubSpokeSameBatch(t *testing.T) {
	sc := scenario.B()
	result := solveScenario(t, sc, planner.DefaultOptions())

	if !result.Validation.OK() {
		t.Errorf("validation failed: %v", result.Validation.Issues)
	}
	if len(result.Shipments) != 2 {
		t.Fatalf("expected exactly 2 shipments (M->H, H->Sp), got %d", len(result.Shipments))
	}

	batchID := result.Shipments[0].BatchID
	if batchID == "" {
		t.Fatal("shipment has no batch_id")
	}
	for _, s := range result.Shipments {
		if s.BatchID != batchID {
			t.Errorf("shipment %s carries batch %s, want the single batch %s shared across both legs", s.ID, s.BatchID, batchID)
		}
	}

	var spokeLeg *domain.Shipment
	for i, s := range result.Shipments {
		if s.Destination == "Sp" {
			spokeLeg = &result.Shipments[i]
		}
	}
	if spokeLeg == nil {
		t.Fatal("expected a shipment arriving at Sp")
	}
	if spokeLeg.Quantity < 2500 {
		t.Errorf("demand at Sp not fully covered: shipped %d, want >= 2500", spokeLeg.Quantity)
	}
	wantArrival := sc.Inputs.Forecast[0].Date
	if !spokeLeg.DeliveryDate.Equal(wantArrival) {
		t.Errorf("H->Sp delivers %s, want %s", spokeLeg.DeliveryDate, wantArrival)
	}
}

func TestScenarioCFrozenThawOnArrival(t *testing.T) {
	sc := scenario.C()
	result := solveScenario(t, sc, planner.DefaultOptions())

	if !result.Validation.OK() {
		t.Errorf("validation failed: %v", result.Validation.Issues)
	}

	var finalLeg *domain.Shipment
	for i, s := range result.Shipments {
		if s.Origin == "L" && s.Destination == "Wn" {
			finalLeg = &result.Shipments[i]
		}
	}
	if finalLeg == nil {
		t.Fatal("expected a shipment from Lineage L to Wn")
	}
	if finalLeg.ArrivalState != domain.StateThawed {
		t.Errorf("L->Wn arrival state = %s, want thawed", finalLeg.ArrivalState)
	}
	wantArrival := sc.Inputs.Forecast[0].Date
	if !finalLeg.DeliveryDate.Equal(wantArrival) {
		t.Errorf("L->Wn delivers %s, want %s", finalLeg.DeliveryDate, wantArrival)
	}

	var thawedAtArrival int64
	for key, qty := range result.CohortInventory {
		if key.NodeID == "Wn" && key.State == domain.StateThawed && key.ProdDate.Equal(wantArrival) {
			thawedAtArrival += qty
		}
	}
	if thawedAtArrival == 0 {
		t.Error("expected positive thawed inventory at Wn with prod_date reset to the arrival date")
	}

	if result.CostBreakdown.Holding.IsZero() {
		t.Error("expected nonzero holding cost from frozen storage at Lineage L")
	}
}

func TestScenarioDTrucksRunWeekdaysOnly(t *testing.T) {
	sc := scenario.D()
	opts := planner.DefaultOptions()
	opts.AllowShortages = true
	result := solveScenario(t, sc, opts)

	for _, s := range result.Shipments {
		wd := s.DepartureDate.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Errorf("shipment %s departs on %s, but trucks only run Mon-Fri", s.ID, wd)
		}
	}
	if shipped := sumShipmentQty(result.Shipments); shipped != sc.Inputs.Forecast[0].Quantity {
		t.Errorf("total shipped = %d, want %d (demand fully covered without needing a weekend departure)", shipped, sc.Inputs.Forecast[0].Quantity)
	}
}

func TestScenarioEPackagingWholePallet(t *testing.T) {
	sc := scenario.E()
	result := solveScenario(t, sc, planner.DefaultOptions())

	if !result.Validation.OK() {
		t.Errorf("validation failed: %v", result.Validation.Issues)
	}

	var production int64
	for _, batch := range result.Batches {
		production += batch.Quantity
	}
	if production%10 != 0 {
		t.Errorf("production %d is not a whole number of cases (multiple of 10)", production)
	}
	if production != 320 && production != 330 {
		t.Errorf("production = %d, want 320 (case count 32) or 330 (case count 33)", production)
	}

	shipped := sumShipmentQty(result.Shipments)
	if pallets := domain.PalletsForUnits(shipped); pallets != 2 {
		t.Errorf("pallets loaded for %d shipped units = %d, want 2", shipped, pallets)
	}
}

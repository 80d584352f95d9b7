package network

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

func hubSpokeInputs() domain.PlanningInputs {
	mfg := domain.Node{ID: "M", Capabilities: domain.NodeCapabilities{
		CanManufacture: true, ProductionRatePerHr: 1400, CanStore: true, StorageMode: domain.StorageAmbient,
	}}
	hub := domain.Node{ID: "H", Capabilities: domain.NodeCapabilities{
		CanStore: true, StorageMode: domain.StorageAmbient,
	}}
	spoke := domain.Node{ID: "Sp", Capabilities: domain.NodeCapabilities{
		HasDemand: true, CanStore: true, StorageMode: domain.StorageAmbient,
	}}
	return domain.PlanningInputs{
		Nodes: []domain.Node{mfg, hub, spoke},
		Routes: []domain.Route{
			{OriginNodeID: "M", DestinationNodeID: "H", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportAmbient},
			{OriginNodeID: "H", DestinationNodeID: "Sp", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportAmbient},
		},
	}
}

func TestBuildClassifiesNodes(t *testing.T) {
	idx, err := Build(hubSpokeInputs())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(idx.ManufacturingNodes) != 1 || idx.ManufacturingNodes[0] != "M" {
		t.Errorf("ManufacturingNodes = %v, want [M]", idx.ManufacturingNodes)
	}
	if len(idx.DemandNodes) != 1 || idx.DemandNodes[0] != "Sp" {
		t.Errorf("DemandNodes = %v, want [Sp]", idx.DemandNodes)
	}
	if len(idx.HubNodes) != 1 || idx.HubNodes[0] != "H" {
		t.Errorf("HubNodes = %v, want [H]", idx.HubNodes)
	}
}

func TestReachabilityHubSpoke(t *testing.T) {
	idx, err := Build(hubSpokeInputs())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	r := Compute(idx)
	if !r.IsReachable("Sp") {
		t.Fatalf("Sp should be reachable")
	}
	want := decimal.NewFromInt(2)
	if got := r.EarliestArrivalDays["Sp"]; !got.Equal(want) {
		t.Errorf("earliest arrival at Sp = %s, want %s", got, want)
	}
}

func TestCheckDemandReachabilityUnreachable(t *testing.T) {
	in := hubSpokeInputs()
	// Sever the only path by dropping the H->Sp leg.
	in.Routes = in.Routes[:1]
	idx, err := Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	r := Compute(idx)
	errs := CheckDemandReachability(idx, r)
	if len(errs) != 1 {
		t.Fatalf("expected 1 infeasibility error, got %d: %v", len(errs), errs)
	}
}

func TestActiveTrucksOn(t *testing.T) {
	in := hubSpokeInputs()
	wd, err := ParseWeekday("mon")
	if err != nil {
		t.Fatalf("ParseWeekday: %v", err)
	}
	in.TruckSchedules = []domain.TruckSchedule{
		{ID: "T1", OriginNodeID: "M", DestinationNodeID: "H", DayOfWeek: wd, CapacityUnits: domain.UnitsPerTruck},
	}
	idx, err := Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	monday := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC) // a Monday
	tuesday := monday.AddDate(0, 0, 1)
	if len(idx.ActiveTrucksOn("M", "H", monday)) != 1 {
		t.Errorf("expected truck active on Monday")
	}
	if len(idx.ActiveTrucksOn("M", "H", tuesday)) != 0 {
		t.Errorf("expected no truck active on Tuesday")
	}
}

package cohort

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
)

func thawNetworkInputs() domain.PlanningInputs {
	mfg := domain.Node{ID: "M", Capabilities: domain.NodeCapabilities{CanManufacture: true, StorageMode: domain.StorageAmbient, CanStore: true}}
	hub := domain.Node{ID: "H", Capabilities: domain.NodeCapabilities{CanStore: true, StorageMode: domain.StorageFrozen}}
	spoke := domain.Node{ID: "Sp", Capabilities: domain.NodeCapabilities{HasDemand: true, CanStore: true, StorageMode: domain.StorageAmbient}}

	return domain.PlanningInputs{
		Nodes: []domain.Node{mfg, hub, spoke},
		Routes: []domain.Route{
			{OriginNodeID: "M", DestinationNodeID: "H", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportFrozen},
			{OriginNodeID: "H", DestinationNodeID: "Sp", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportFrozen},
		},
	}
}

func TestComputeOffsetsThawOnArrival(t *testing.T) {
	in := thawNetworkInputs()
	idx, err := network.Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	offsets := ComputeOffsets(idx)

	if d, ok := offsets.Lookup("H", domain.StateFrozen); !ok || d != 1 {
		t.Errorf("H frozen offset = %d, ok=%v, want 1", d, ok)
	}
	if _, ok := offsets.Lookup("Sp", domain.StateFrozen); ok {
		t.Error("Sp should not be reachable in frozen state (ambient-only storage)")
	}
	if d, ok := offsets.Lookup("Sp", domain.StateThawed); !ok || d != 2 {
		t.Errorf("Sp thawed offset = %d, ok=%v, want 2", d, ok)
	}
}

func TestComputeOffsetsResetsAfterThaw(t *testing.T) {
	// Extend the network with a further hop out of the thaw node, to check
	// that onward offsets are measured from the thaw point, not from
	// original production.
	in := thawNetworkInputs()
	in.Nodes = append(in.Nodes, domain.Node{ID: "Leaf", Capabilities: domain.NodeCapabilities{HasDemand: true, CanStore: true, StorageMode: domain.StorageAmbient}})
	in.Routes = append(in.Routes, domain.Route{
		OriginNodeID: "Sp", DestinationNodeID: "Leaf", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportAmbient,
	})

	idx, err := network.Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	offsets := ComputeOffsets(idx)

	d, ok := offsets.Lookup("Leaf", domain.StateAmbient)
	if !ok {
		t.Fatal("Leaf should be reachable in ambient state")
	}
	if d != 1 {
		t.Errorf("Leaf ambient offset = %d, want 1 (measured from Sp's thaw point, not from M)", d)
	}
}

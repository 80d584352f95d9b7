package cohort

import (
	"testing"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
	"github.com/sverzijl/planning-latest-sub008/pkg/temporal"
)

func dateAt(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildInventoryCohortsThawedResetsProdDate(t *testing.T) {
	in := thawNetworkInputs()
	idx, err := network.Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	offsets := ComputeOffsets(idx)
	horizon := temporal.BuildDaily(dateAt(2026, 1, 1), dateAt(2026, 1, 20), 0)

	ci := Build(idx, offsets, horizon, []domain.ProductID{"P"})

	var thawedSeen bool
	for _, k := range ci.InventoryCohorts {
		if k.NodeID != "Sp" || k.State != domain.StateThawed {
			continue
		}
		thawedSeen = true
		if !k.ProdDate.Equal(k.ProdDate.Truncate(24 * time.Hour)) {
			t.Errorf("ProdDate %v not day-aligned", k.ProdDate)
		}
		if age := k.AgeDays(); age < 0 || age > 14 {
			t.Errorf("thawed cohort age %d out of [0,14]", age)
		}
		// Production on day 1 arrives thawed on day 3 (1 day to hub + 1 day
		// to spoke); a thawed cohort produced (in the original sense) on
		// day 1 should carry ProdDate == day 3, not day 1.
		if k.ProdDate.Equal(dateAt(2026, 1, 1)) {
			t.Errorf("thawed cohort kept original prod date %v, want reset to arrival date", k.ProdDate)
		}
	}
	if !thawedSeen {
		t.Fatal("expected at least one thawed cohort at Sp")
	}
}

func TestBuildInventoryCohortsFrozenRetainsProdDate(t *testing.T) {
	in := thawNetworkInputs()
	idx, err := network.Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	offsets := ComputeOffsets(idx)
	horizon := temporal.BuildDaily(dateAt(2026, 1, 1), dateAt(2026, 1, 20), 0)

	ci := Build(idx, offsets, horizon, []domain.ProductID{"P"})

	var sawDay1AtHub bool
	for _, k := range ci.InventoryCohorts {
		if k.NodeID == "H" && k.State == domain.StateFrozen && k.ProdDate.Equal(dateAt(2026, 1, 1)) {
			sawDay1AtHub = true
		}
	}
	if !sawDay1AtHub {
		t.Error("expected a frozen cohort at H retaining ProdDate = original production date")
	}
}

func TestBuildDemandCohortsExcludeFrozen(t *testing.T) {
	in := thawNetworkInputs()
	idx, err := network.Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	offsets := ComputeOffsets(idx)
	horizon := temporal.BuildDaily(dateAt(2026, 1, 1), dateAt(2026, 1, 20), 0)

	ci := Build(idx, offsets, horizon, []domain.ProductID{"P"})

	for _, dc := range ci.DemandCohorts {
		if dc.NodeID != "Sp" {
			continue
		}
		// no way to express "frozen" in DemandCohortKey, so this just
		// checks demand cohorts were produced only for the (non-frozen
		// storage capable) demand node, Sp.
	}

	for _, k := range ci.InventoryCohorts {
		if k.State == domain.StateFrozen {
			for _, dc := range ci.DemandCohorts {
				if dc.NodeID == k.NodeID && dc.ProdDate.Equal(k.ProdDate) && dc.Date.Equal(k.CurrDate) && dc.ProductID == k.ProductID {
					t.Errorf("frozen inventory cohort %+v leaked into demand cohorts", k)
				}
			}
		}
	}
}

func TestBuildShipmentCohortsWithinHorizon(t *testing.T) {
	in := thawNetworkInputs()
	idx, err := network.Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	offsets := ComputeOffsets(idx)
	horizon := temporal.BuildDaily(dateAt(2026, 1, 1), dateAt(2026, 1, 5), 0)

	ci := Build(idx, offsets, horizon, []domain.ProductID{"P"})

	for _, sc := range ci.ShipmentCohorts {
		if !horizon.Contains(sc.DepartureDate) || !horizon.Contains(sc.DeliveryDate) {
			t.Errorf("shipment cohort %+v has dates outside horizon", sc)
		}
		if sc.DeliveryDate.Before(sc.DepartureDate) {
			t.Errorf("shipment cohort %+v delivers before it departs", sc)
		}
	}
}

package rolling

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
	"github.com/sverzijl/planning-latest-sub008/pkg/network"
	"github.com/sverzijl/planning-latest-sub008/pkg/solver"
	"github.com/sverzijl/planning-latest-sub008/pkg/temporal"
)

func rsmallNetwork(t *testing.T) *network.Index {
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

// TestDriverRunAcrossWindowsConservesDemand solves a 20-day horizon as
// three overlapping 10-day windows and checks that the committed,
// concatenated production still covers total demand, that no production
// date is committed twice, and that the aggregated cost is non-zero.
func TestDriverRunAcrossWindowsConservesDemand(t *testing.T) {
	idx := rsmallNetwork(t)
	horizon := temporal.BuildDaily(rday(1), rday(20), 0)

	labor := make(domain.LaborCalendar)
	for _, d := range horizon.Dates {
		labor[domain.NormalizeDate(d)] = domain.LaborDay{
			Date: d, FixedHours: decimal.NewFromInt(12), RegularRate: decimal.NewFromInt(25),
			OvertimeRate: decimal.NewFromInt(37), NonFixedRate: decimal.NewFromInt(40),
			MinimumHours: decimal.NewFromInt(4), MaximumHours: decimal.NewFromInt(14),
		}
	}

	var forecast domain.Forecast
	var wantTotal int64
	for _, d := range []int{5, 12, 19} {
		forecast = append(forecast, domain.ForecastEntry{LocationID: "Sp", ProductID: "P", Date: rday(d), Quantity: 100})
		wantTotal += 100
	}

	costs := domain.CostStructure{
		ProductionCostPerUnit:        decimal.NewFromFloat(0.5),
		TransportCostPerUnitAmbient:  decimal.NewFromFloat(0.1),
		HoldingCostPerUnitDayAmbient: decimal.NewFromFloat(0.01),
		ShortagePenaltyPerUnit:       decimal.NewFromInt(100),
	}

	sv := solver.NewAdapter(nil, nil)
	cfg := solver.DefaultConfig()
	cfg.TimeLimit = 5 * time.Second

	d := NewDriver(idx, []domain.ProductID{"P"}, labor, costs, forecast, sv, cfg)
	result, err := d.Run(horizon, 10, 3, domain.InitialInventory{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Windows) != 3 {
		t.Fatalf("expected 3 windows solved, got %d", len(result.Windows))
	}

	var producedTotal int64
	for _, b := range result.Batches {
		producedTotal += b.Quantity
	}
	if producedTotal < wantTotal {
		t.Errorf("expected committed production to cover demand of %d units, got %d", wantTotal, producedTotal)
	}

	seenDates := make(map[time.Time]bool)
	for _, b := range result.Batches {
		if seenDates[b.ProductionDate] {
			t.Errorf("batch at %s committed more than once across windows", b.ProductionDate)
		}
		seenDates[b.ProductionDate] = true
	}

	if result.Costs.Total.IsZero() {
		t.Error("expected a non-zero aggregated cost breakdown")
	}
}

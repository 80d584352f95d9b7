// Package scenario builds six literal end-to-end scenarios illustrating
// the model, as in-memory domain.PlanningInputs fixtures. `cmd/planner
// demo` runs every scenario through the full pipeline and reports the
// outcome; `example/` walks through Scenario A step by step.
package scenario

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// Scenario names a runnable fixture and the inputs that realize it.
type Scenario struct {
	Name        string
	Description string
	Inputs      domain.PlanningInputs
}

// All returns every scenario in A-F order.
func All() []Scenario {
	return []Scenario{A(), B(), C(), D(), E(), F()}
}

func day(base time.Time, offset int) time.Time {
	return base.AddDate(0, 0, offset)
}

func fullLaborDays(base time.Time, count int, rate decimal.Decimal) []domain.LaborDay {
	days := make([]domain.LaborDay, 0, count)
	for i := 0; i < count; i++ {
		days = append(days, domain.LaborDay{
			Date:         day(base, i),
			FixedHours:   decimal.NewFromInt(14),
			RegularRate:  rate,
			OvertimeRate: rate.Mul(decimal.NewFromFloat(1.5)),
			NonFixedRate: rate.Mul(decimal.NewFromInt(2)),
			MinimumHours: decimal.Zero,
			MaximumHours: decimal.NewFromInt(14),
		})
	}
	return days
}

func defaultCosts() domain.CostStructure {
	return domain.CostStructure{
		ProductionCostPerUnit:        decimal.NewFromFloat(0.5),
		TransportCostPerUnitAmbient:  decimal.NewFromFloat(0.1),
		TransportCostPerUnitFrozen:   decimal.NewFromFloat(0.15),
		HoldingCostPerUnitDayAmbient: decimal.NewFromFloat(0.01),
		HoldingCostPerUnitDayFrozen:  decimal.NewFromFloat(0.02),
		ShortagePenaltyPerUnit:       decimal.NewFromInt(1000),
		TruckCostFixedDefault:        decimal.NewFromInt(200),
		TruckCostPerUnitDefault:      decimal.NewFromFloat(0.02),
	}
}

var base2026 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// A is "direct ambient": a manufacturing site one ambient day from a single
// demand node.
func A() Scenario {
	rate := decimal.NewFromInt(25)
	manuf := domain.Node{ID: "M", Capabilities: domain.NodeCapabilities{
		CanManufacture: true, ProductionRatePerHr: 1400, CanStore: true, StorageMode: domain.StorageAmbient,
		DailyStartupHours: 0.5, DailyShutdownHours: 0.5, DefaultChangeoverHrs: 1,
	}}
	demand := domain.Node{ID: "Dn", Capabilities: domain.NodeCapabilities{
		HasDemand: true, CanStore: true, StorageMode: domain.StorageAmbient,
	}}

	labor := fullLaborDays(base2026, 4, rate)
	labor[1].FixedHours = decimal.NewFromInt(5)
	labor[1].MaximumHours = decimal.NewFromInt(14)

	return Scenario{
		Name:        "A",
		Description: "direct ambient: M ships one day to demand node Dn",
		Inputs: domain.PlanningInputs{
			Nodes: []domain.Node{manuf, demand},
			Routes: []domain.Route{
				{OriginNodeID: "M", DestinationNodeID: "Dn", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportAmbient},
			},
			LaborDays: labor,
			Forecast: domain.Forecast{
				{LocationID: "Dn", ProductID: "P", Date: day(base2026, 2), Quantity: 6000},
			},
			Costs: defaultCosts(),
		},
	}
}

// B is "hub spoke ambient": M -> Hub H -> Spoke Sp, one ambient day per leg.
func B() Scenario {
	rate := decimal.NewFromInt(25)
	manuf := domain.Node{ID: "M", Capabilities: domain.NodeCapabilities{
		CanManufacture: true, ProductionRatePerHr: 1400, CanStore: true, StorageMode: domain.StorageAmbient,
		DailyStartupHours: 0.5, DailyShutdownHours: 0.5, DefaultChangeoverHrs: 1,
	}}
	hub := domain.Node{ID: "H", Capabilities: domain.NodeCapabilities{CanStore: true, StorageMode: domain.StorageAmbient}}
	spoke := domain.Node{ID: "Sp", Capabilities: domain.NodeCapabilities{HasDemand: true, CanStore: true, StorageMode: domain.StorageAmbient}}

	return Scenario{
		Name:        "B",
		Description: "hub spoke ambient: M -> H -> Sp, same batch on both shipments",
		Inputs: domain.PlanningInputs{
			Nodes: []domain.Node{manuf, hub, spoke},
			Routes: []domain.Route{
				{OriginNodeID: "M", DestinationNodeID: "H", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportAmbient},
				{OriginNodeID: "H", DestinationNodeID: "Sp", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportAmbient},
			},
			LaborDays: fullLaborDays(base2026, 5, rate),
			Forecast: domain.Forecast{
				{LocationID: "Sp", ProductID: "P", Date: day(base2026, 3), Quantity: 2500},
			},
			Costs: defaultCosts(),
		},
	}
}

// C is "frozen via Lineage with thaw at destination": M -> Lineage L
// (frozen storage, 0.5d ambient transit that freezes on arrival) -> Wn
// (ambient-only, 3d frozen transit that thaws on arrival).
func C() Scenario {
	rate := decimal.NewFromInt(25)
	manuf := domain.Node{ID: "M", Capabilities: domain.NodeCapabilities{
		CanManufacture: true, ProductionRatePerHr: 1400, CanStore: true, StorageMode: domain.StorageAmbient,
		DailyStartupHours: 0.5, DailyShutdownHours: 0.5, DefaultChangeoverHrs: 1,
	}}
	lineage := domain.Node{ID: "L", Capabilities: domain.NodeCapabilities{CanStore: true, StorageMode: domain.StorageFrozen}}
	wn := domain.Node{ID: "Wn", Capabilities: domain.NodeCapabilities{HasDemand: true, CanStore: true, StorageMode: domain.StorageAmbient}}

	return Scenario{
		Name:        "C",
		Description: "frozen via Lineage with thaw at destination",
		Inputs: domain.PlanningInputs{
			Nodes: []domain.Node{manuf, lineage, wn},
			Routes: []domain.Route{
				{OriginNodeID: "M", DestinationNodeID: "L", TransitDays: decimal.NewFromFloat(0.5), TransportMode: domain.TransportAmbient},
				{OriginNodeID: "L", DestinationNodeID: "Wn", TransitDays: decimal.NewFromInt(3), TransportMode: domain.TransportFrozen},
			},
			LaborDays: fullLaborDays(base2026, 9, rate),
			Forecast: domain.Forecast{
				{LocationID: "Wn", ProductID: "P", Date: day(base2026, 7), Quantity: 3000},
			},
			Costs: defaultCosts(),
		},
	}
}

// D is "truck day-of-week": trucks from M to Hub H run Monday-Friday only,
// so a Tuesday demand that would otherwise require Sunday production-then-
// ship forces either earlier production or a shortage.
func D() Scenario {
	rate := decimal.NewFromInt(25)
	manuf := domain.Node{ID: "M", Capabilities: domain.NodeCapabilities{
		CanManufacture: true, ProductionRatePerHr: 1400, CanStore: true, StorageMode: domain.StorageAmbient,
		DailyStartupHours: 0.5, DailyShutdownHours: 0.5, DefaultChangeoverHrs: 1,
		RequiresTruckSchedules: true,
	}}
	hub := domain.Node{ID: "H", Capabilities: domain.NodeCapabilities{HasDemand: true, CanStore: true, StorageMode: domain.StorageAmbient}}

	// base2026 is a Thursday; day(base,3) is a Sunday, day(base,5) a Tuesday.
	labor := fullLaborDays(base2026, 10, rate)

	weekdayTruck := domain.TruckSchedule{
		ID: "T-MF", OriginNodeID: "M", DestinationNodeID: "H",
		DepartureType: domain.DepartureAfternoon,
		CapacityUnits: 14080, PalletCapacity: 44,
		CostFixed: decimal.NewFromInt(200), CostPerUnit: decimal.NewFromFloat(0.02),
	}

	var trucks []domain.TruckSchedule
	for _, wd := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		t := weekdayTruck
		t.ID = domain.TruckID("T-" + wd.String())
		t.DayOfWeek = domain.Weekday{Day: wd}
		trucks = append(trucks, t)
	}

	return Scenario{
		Name:        "D",
		Description: "truck day-of-week: Mon-Fri only trucks force earlier production or shortage",
		Inputs: domain.PlanningInputs{
			Nodes:          []domain.Node{manuf, hub},
			Routes:         []domain.Route{{OriginNodeID: "M", DestinationNodeID: "H", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportAmbient}},
			TruckSchedules: trucks,
			LaborDays:      labor,
			Forecast: domain.Forecast{
				{LocationID: "H", ProductID: "P", Date: day(base2026, 5), Quantity: 4000},
			},
			Costs: defaultCosts(),
		},
	}
}

// E is "packaging": a demand of 325 units forces a whole-case, whole-pallet
// production/shortage trade-off.
func E() Scenario {
	rate := decimal.NewFromInt(25)
	manuf := domain.Node{ID: "M", Capabilities: domain.NodeCapabilities{
		CanManufacture: true, ProductionRatePerHr: 1400, CanStore: true, StorageMode: domain.StorageAmbient,
		DailyStartupHours: 0.5, DailyShutdownHours: 0.5, DefaultChangeoverHrs: 1,
	}}
	demand := domain.Node{ID: "Dn", Capabilities: domain.NodeCapabilities{HasDemand: true, CanStore: true, StorageMode: domain.StorageAmbient}}

	return Scenario{
		Name:        "E",
		Description: "packaging: 325-unit demand forces a whole-case production decision",
		Inputs: domain.PlanningInputs{
			Nodes:     []domain.Node{manuf, demand},
			Routes:    []domain.Route{{OriginNodeID: "M", DestinationNodeID: "Dn", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportAmbient}},
			LaborDays: fullLaborDays(base2026, 4, rate),
			Forecast: domain.Forecast{
				{LocationID: "Dn", ProductID: "P", Date: day(base2026, 2), Quantity: 325},
			},
			Costs: defaultCosts(),
		},
	}
}

// F is "labor piecewise": a non-fixed Sunday (fixed_hours=0) with a steep
// non_fixed_rate still pays its minimum_hours floor even for a few minutes
// of actual work.
func F() Scenario {
	regularRate := decimal.NewFromInt(25)
	manuf := domain.Node{ID: "M", Capabilities: domain.NodeCapabilities{
		CanManufacture: true, ProductionRatePerHr: 1400, CanStore: true, StorageMode: domain.StorageAmbient,
		DailyStartupHours: 0.5, DailyShutdownHours: 0.5, DefaultChangeoverHrs: 1,
	}}
	demand := domain.Node{ID: "Dn", Capabilities: domain.NodeCapabilities{HasDemand: true, CanStore: true, StorageMode: domain.StorageAmbient}}

	// base2026 is a Thursday; day(base,3) is a Sunday.
	sunday := day(base2026, 3)
	labor := fullLaborDays(base2026, 5, regularRate)
	for i := range labor {
		if labor[i].Date.Equal(sunday) {
			labor[i].FixedHours = decimal.Zero
			labor[i].MinimumHours = decimal.NewFromInt(4)
			labor[i].NonFixedRate = decimal.NewFromInt(80)
		}
	}

	return Scenario{
		Name:        "F",
		Description: "labor piecewise: Sunday minimum-hours floor applies even to a fractional shift",
		Inputs: domain.PlanningInputs{
			Nodes:     []domain.Node{manuf, demand},
			Routes:    []domain.Route{{OriginNodeID: "M", DestinationNodeID: "Dn", TransitDays: decimal.NewFromInt(1), TransportMode: domain.TransportAmbient}},
			LaborDays: labor,
			Forecast: domain.Forecast{
				{LocationID: "Dn", ProductID: "P", Date: day(base2026, 4), Quantity: 1000},
			},
			Costs: defaultCosts(),
		},
	}
}

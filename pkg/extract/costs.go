package extract

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// extractCosts sums the objective's components over every realized value
// in the solve.
func (e *Extractor) extractCosts() CostBreakdown {
	return e.CostsInRange(time.Time{}, time.Time{})
}

// CostsInRange sums the objective's components restricted to the dates
// each term is attributed to (production date, shipment departure date,
// inventory current date, truck departure/delivery date, shortage date)
// falling within [start, end] inclusive. A zero start/end disables
// filtering on that bound: CostsInRange(time.Time{}, time.Time{}) is the
// whole-solve breakdown extractCosts uses.
//
// pkg/rolling calls this per window, restricted to the committed region,
// to aggregate costs across windows without re-counting a date from two
// overlapping solves.
func (e *Extractor) CostsInRange(start, end time.Time) CostBreakdown {
	in := func(d time.Time) bool {
		if !start.IsZero() && d.Before(start) {
			return false
		}
		if !end.IsZero() && d.After(end) {
			return false
		}
		return true
	}

	var breakdown CostBreakdown

	for _, lu := range e.builder.LaborVars() {
		if !in(lu.Date) {
			continue
		}
		day, ok := e.builder.Labor.Lookup(lu.Date)
		if !ok {
			continue
		}
		if lu.HasFixed {
			breakdown.Labor = breakdown.Labor.Add(day.RegularRate.Mul(decimal.NewFromFloat(e.solution.Value(lu.Fixed))))
		}
		if lu.HasOT {
			breakdown.Labor = breakdown.Labor.Add(day.OvertimeRate.Mul(decimal.NewFromFloat(e.solution.Value(lu.Overtime))))
		}
		if lu.HasNonFix {
			breakdown.Labor = breakdown.Labor.Add(day.NonFixedRate.Mul(decimal.NewFromFloat(e.solution.Value(lu.NonFixed))))
		}
	}

	for _, u := range e.builder.ProductionVars() {
		if !in(u.Date) {
			continue
		}
		breakdown.Production = breakdown.Production.Add(
			e.builder.Costs.ProductionCostPerUnit.Mul(decimal.NewFromFloat(e.solution.Value(u.Var))))
	}

	routesByID := make(map[domain.RouteID]domain.Route)
	for _, r := range e.builder.Index.AllRoutes() {
		routesByID[r.ID()] = r
	}
	for k, v := range e.builder.ShipmentVars() {
		if !in(k.DepartureDate) {
			continue
		}
		rate := e.builder.Costs.TransportCostPerUnitAmbient
		if k.OriginState == domain.StateFrozen {
			rate = e.builder.Costs.TransportCostPerUnitFrozen
		}
		if r, ok := routesByID[k.Route]; ok && r.CostPerUnit.IsPositive() {
			rate = r.CostPerUnit
		}
		breakdown.Transport = breakdown.Transport.Add(rate.Mul(decimal.NewFromFloat(e.solution.Value(v))))
	}

	for k, v := range e.builder.InventoryVars() {
		if !in(k.CurrDate) {
			continue
		}
		rate := e.builder.Costs.HoldingRateUnitDay(k.State)
		breakdown.Holding = breakdown.Holding.Add(rate.Mul(decimal.NewFromFloat(e.solution.Value(v))))
	}

	trucksByID := make(map[domain.TruckID]domain.TruckSchedule)
	for _, t := range e.builder.Index.AllTrucks() {
		trucksByID[t.ID] = t
	}
	for _, u := range e.builder.TruckUsedVars() {
		if !in(u.Date) {
			continue
		}
		rate := e.builder.Costs.TruckCostFixedDefault
		if t, ok := trucksByID[u.Truck]; ok && t.CostFixed.IsPositive() {
			rate = t.CostFixed
		}
		breakdown.Truck = breakdown.Truck.Add(rate.Mul(decimal.NewFromFloat(e.solution.Value(u.Var))))
	}
	for _, u := range e.builder.TruckLoadVars() {
		if !in(u.DeliveryDate) {
			continue
		}
		rate := e.builder.Costs.TruckCostPerUnitDefault
		if t, ok := trucksByID[u.Truck]; ok && t.CostPerUnit.IsPositive() {
			rate = t.CostPerUnit
		}
		breakdown.Truck = breakdown.Truck.Add(rate.Mul(decimal.NewFromFloat(e.solution.Value(u.Var))))
	}

	for _, u := range e.builder.ShortageVars() {
		if !in(u.Date) {
			continue
		}
		breakdown.Shortage = breakdown.Shortage.Add(
			e.builder.Costs.ShortagePenaltyPerUnit.Mul(decimal.NewFromFloat(e.solution.Value(u.Var))))
	}

	breakdown.Total = breakdown.Labor.Add(breakdown.Production).Add(breakdown.Transport).
		Add(breakdown.Holding).Add(breakdown.Truck).Add(breakdown.Shortage)

	return breakdown
}

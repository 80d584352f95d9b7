package model

import (
	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// addObjective assembles the cost-minimizing objective:
// labor, production, transport, holding, truck, and shortage-penalty terms.
func (b *Builder) addObjective() {
	obj := algebra.NewExpr()

	for _, date := range b.Horizon.Dates {
		day, ok := b.Labor.Lookup(date)
		if !ok {
			continue
		}
		if v, ok := b.laborFixedVars[date]; ok {
			obj.Add(v, toFloat(day.RegularRate))
		}
		if v, ok := b.laborOvertimeVars[date]; ok {
			obj.Add(v, toFloat(day.OvertimeRate))
		}
		if v, ok := b.laborNonFixedVars[date]; ok {
			obj.Add(v, toFloat(day.NonFixedRate))
		}
	}

	for _, v := range b.productionVars {
		obj.Add(v, toFloat(b.Costs.ProductionCostPerUnit))
	}

	routesByID := make(map[domain.RouteID]domain.Route)
	for _, r := range b.Index.AllRoutes() {
		routesByID[r.ID()] = r
	}
	for k, v := range b.shipmentVars {
		rate := toFloat(b.Costs.TransportCostPerUnitAmbient)
		if k.OriginState == domain.StateFrozen {
			rate = toFloat(b.Costs.TransportCostPerUnitFrozen)
		}
		if r, ok := routesByID[k.Route]; ok && r.CostPerUnit.IsPositive() {
			rate = toFloat(r.CostPerUnit)
		}
		obj.Add(v, rate)
	}

	if b.UsePalletHolding {
		for k, v := range b.invPalletVars {
			rate := b.Costs.HoldingRatePalletDay(k.State)
			if rate.IsPositive() {
				obj.Add(v, toFloat(rate))
			}
		}
	} else {
		for k, v := range b.inventoryVars {
			rate := b.Costs.HoldingRateUnitDay(k.State)
			obj.Add(v, toFloat(rate))
		}
	}

	for truckDate, v := range b.truckUsedVars {
		rate := b.Costs.TruckCostFixedDefault
		if truck, ok := b.truckByID(truckDate.Truck); ok && truck.CostFixed.IsPositive() {
			rate = truck.CostFixed
		}
		obj.Add(v, toFloat(rate))
	}
	for loadKey, v := range b.truckLoadVars {
		rate := b.Costs.TruckCostPerUnitDefault
		if truck, ok := b.truckByID(loadKey.Truck); ok && truck.CostPerUnit.IsPositive() {
			rate = truck.CostPerUnit
		}
		obj.Add(v, toFloat(rate))
	}

	for _, v := range b.shortageVars {
		obj.Add(v, toFloat(b.Costs.ShortagePenaltyPerUnit))
	}

	b.problem.SetObjective(obj, algebra.Minimize)
}

func (b *Builder) truckByID(id domain.TruckID) (domain.TruckSchedule, bool) {
	for _, t := range b.Index.AllTrucks() {
		if t.ID == id {
			return t, true
		}
	}
	return domain.TruckSchedule{}, false
}

package model

import (
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/algebra"
	"github.com/sverzijl/planning-latest-sub008/pkg/cohort"
	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// The accessors below hand pkg/extract read access to the variable maps
// Build assembled, keyed by the same (unexported, but field-exported)
// structs variables.go used to declare them. Extract never needs to name
// these key types, only range over the maps and read their fields, the
// same "index built once, read by a later pass" pattern balance.go and
// demand.go already use internally.

// ProductionUnits reports production[node,product,date] for every declared
// triple, in units.
type ProductionUnits struct {
	Node    domain.NodeID
	Product domain.ProductID
	Date    time.Time
	Var     algebra.VarID
}

// ProductionVars returns every declared production variable.
func (b *Builder) ProductionVars() []ProductionUnits {
	out := make([]ProductionUnits, 0, len(b.productionVars))
	for k, v := range b.productionVars {
		out = append(out, ProductionUnits{Node: k.Node, Product: k.Product, Date: k.Date, Var: v})
	}
	return out
}

// ShipmentVars returns the shipment_cohort variable for every declared
// shipment cohort key.
func (b *Builder) ShipmentVars() map[cohort.ShipmentCohortKey]algebra.VarID {
	return b.shipmentVars
}

// InventoryVars returns the inventory_cohort variable for every declared
// inventory cohort key.
func (b *Builder) InventoryVars() map[cohort.InventoryCohortKey]algebra.VarID {
	return b.inventoryVars
}

// DemandVars returns the demand_from_cohort variable for every declared
// demand cohort key.
func (b *Builder) DemandVars() map[cohort.DemandCohortKey]algebra.VarID {
	return b.demandVars
}

// ShortageUnits pairs a (node, product, date) shortage variable with its
// identifying key fields, mirroring ProductionUnits.
type ShortageUnits struct {
	Node    domain.NodeID
	Product domain.ProductID
	Date    time.Time
	Var     algebra.VarID
}

// ShortageVars returns every declared shortage variable.
func (b *Builder) ShortageVars() []ShortageUnits {
	out := make([]ShortageUnits, 0, len(b.shortageVars))
	for k, v := range b.shortageVars {
		out = append(out, ShortageUnits{Node: k.Node, Product: k.Product, Date: k.Date, Var: v})
	}
	return out
}

// TruckLoadUnits pairs a truck_load[truck,product,delivery_date] variable
// with its identifying fields.
type TruckLoadUnits struct {
	Truck        domain.TruckID
	Product      domain.ProductID
	DeliveryDate time.Time
	Var          algebra.VarID
}

// TruckLoadVars returns every declared truck_load variable.
func (b *Builder) TruckLoadVars() []TruckLoadUnits {
	out := make([]TruckLoadUnits, 0, len(b.truckLoadVars))
	for k, v := range b.truckLoadVars {
		out = append(out, TruckLoadUnits{Truck: k.Truck, Product: k.Product, DeliveryDate: k.DeliveryDate, Var: v})
	}
	return out
}

// PalletUnits pairs a pallets_loaded[truck,destination,departure_date]
// variable with its identifying fields.
type PalletUnits struct {
	Truck         domain.TruckID
	Destination   domain.NodeID
	DepartureDate time.Time
	Var           algebra.VarID
}

// PalletVars returns every declared pallets_loaded variable.
func (b *Builder) PalletVars() []PalletUnits {
	out := make([]PalletUnits, 0, len(b.palletVars))
	for k, v := range b.palletVars {
		out = append(out, PalletUnits{Truck: k.Truck, Destination: k.Destination, DepartureDate: k.Date, Var: v})
	}
	return out
}

// TruckUsedUnits pairs a truck_used[truck,date] binary with its
// identifying fields.
type TruckUsedUnits struct {
	Truck domain.TruckID
	Date  time.Time
	Var   algebra.VarID
}

// TruckUsedVars returns every declared truck_used variable.
func (b *Builder) TruckUsedVars() []TruckUsedUnits {
	out := make([]TruckUsedUnits, 0, len(b.truckUsedVars))
	for k, v := range b.truckUsedVars {
		out = append(out, TruckUsedUnits{Truck: k.Truck, Date: k.Date, Var: v})
	}
	return out
}

// LaborHoursUnits reports the three piecewise labor-hour variables for one
// date.
type LaborHoursUnits struct {
	Date      time.Time
	Fixed     algebra.VarID
	Overtime  algebra.VarID
	NonFixed  algebra.VarID
	HasFixed  bool
	HasOT     bool
	HasNonFix bool
}

// LaborVars returns the labor-hours variables declared for every date in
// the horizon that has at least one.
func (b *Builder) LaborVars() []LaborHoursUnits {
	dates := make(map[time.Time]*LaborHoursUnits)
	get := func(d time.Time) *LaborHoursUnits {
		u, ok := dates[d]
		if !ok {
			u = &LaborHoursUnits{Date: d}
			dates[d] = u
		}
		return u
	}
	for d, v := range b.laborFixedVars {
		u := get(d)
		u.Fixed, u.HasFixed = v, true
	}
	for d, v := range b.laborOvertimeVars {
		u := get(d)
		u.Overtime, u.HasOT = v, true
	}
	for d, v := range b.laborNonFixedVars {
		u := get(d)
		u.NonFixed, u.HasNonFix = v, true
	}
	out := make([]LaborHoursUnits, 0, len(dates))
	for _, u := range dates {
		out = append(out, *u)
	}
	return out
}

package domain

import "github.com/shopspring/decimal"

// CostStructure holds the per-unit/per-day rates that feed the objective.
type CostStructure struct {
	ProductionCostPerUnit decimal.Decimal

	TransportCostPerUnitFrozen  decimal.Decimal
	TransportCostPerUnitAmbient decimal.Decimal // route.CostPerUnit overrides when set

	// Holding cost: per-unit-day rates are always defined; per-pallet-day
	// rates, when provided (non-zero), take precedence.
	HoldingCostPerUnitDayFrozen  decimal.Decimal
	HoldingCostPerUnitDayAmbient decimal.Decimal
	HoldingCostPerPalletDayFrozen  decimal.Decimal
	HoldingCostPerPalletDayAmbient decimal.Decimal

	ShortagePenaltyPerUnit decimal.Decimal

	TruckCostFixedDefault   decimal.Decimal
	TruckCostPerUnitDefault decimal.Decimal

	WasteCostMultiplier decimal.Decimal
}

// UsesPalletHolding reports whether per-pallet-day holding should be charged
// for the given state instead of the per-unit-day rate.
func (c CostStructure) UsesPalletHolding(s CohortState) bool {
	switch s {
	case StateFrozen:
		return c.HoldingCostPerPalletDayFrozen.IsPositive()
	default:
		return c.HoldingCostPerPalletDayAmbient.IsPositive()
	}
}

// HoldingRateUnitDay returns the applicable per-unit-day rate for a state (zero
// when only per-pallet-day is configured; the caller charges pallets
// separately in that case).
func (c CostStructure) HoldingRateUnitDay(s CohortState) decimal.Decimal {
	if s == StateFrozen {
		return c.HoldingCostPerUnitDayFrozen
	}
	return c.HoldingCostPerUnitDayAmbient
}

// HoldingRatePalletDay returns the applicable per-pallet-day rate for a state.
func (c CostStructure) HoldingRatePalletDay(s CohortState) decimal.Decimal {
	if s == StateFrozen {
		return c.HoldingCostPerPalletDayFrozen
	}
	return c.HoldingCostPerPalletDayAmbient
}

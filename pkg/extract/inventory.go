package extract

// extractCohortInventory materializes every inventory_cohort's solved value
// into the trajectory map, keyed as "(node, product, prod_date, curr_date,
// state)". Zero-valued cohorts are kept out of the map rather than reported
// as explicit zeros, matching the sparse-by-construction spirit of the
// rest of the model.
func (e *Extractor) extractCohortInventory() map[CohortInventoryKey]int64 {
	inventoryVars := e.builder.InventoryVars()
	out := make(map[CohortInventoryKey]int64, len(inventoryVars))
	for k, v := range inventoryVars {
		qty := roundUnits(e.solution.Value(v))
		if qty <= 0 {
			continue
		}
		out[CohortInventoryKey{
			NodeID:    k.NodeID,
			ProductID: k.ProductID,
			ProdDate:  k.ProdDate,
			CurrDate:  k.CurrDate,
			State:     k.State,
		}] = qty
	}
	return out
}

package domain

import (
	"fmt"
	"time"
)

// ForecastEntry is a single daily demand observation. Entries outside the
// planning horizon are ignored by the core (not an error), see
// pkg/temporal.
type ForecastEntry struct {
	LocationID NodeID
	ProductID  ProductID
	Date       time.Time
	Quantity   int64
}

// Validate checks the non-negativity invariant; horizon membership is
// checked later by pkg/temporal, not here, since this type has no horizon
// context.
func (f ForecastEntry) Validate() error {
	if f.Quantity < 0 {
		return fmt.Errorf("forecast %s/%s/%s: quantity must be >= 0",
			f.LocationID, f.ProductID, f.Date.Format("2006-01-02"))
	}
	return nil
}

// Forecast is an ordered collection of demand entries.
type Forecast []ForecastEntry

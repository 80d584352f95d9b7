package model

import (
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// PreArrival identifies a fixed inbound delivery landing at a cohort on a
// specific date, independent of the day-one Initial inventory snapshot.
type PreArrival struct {
	NodeID    domain.NodeID
	ProductID domain.ProductID
	State     domain.CohortState
	Date      time.Time
}

package extract

import "time"

// dateKey formats a date for use as a map key and report key, matching the
// format pkg/model's own dateKey helper and domain.BatchID use throughout.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

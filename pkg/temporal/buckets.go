package temporal

import (
	"fmt"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// GranularityConfig selects the variable-granularity bucket mode: the near
// term is planned one day at a time, the far term is grouped into
// fixed-size buckets.
type GranularityConfig struct {
	NearTermDays    int
	NearGranularity int // always 1 currently, kept explicit for clarity
	FarGranularity  int // one of {1,2,3,7}
}

// Bucket is a contiguous run of one or more calendar days planned as a unit.
type Bucket struct {
	Index int
	Dates []time.Time
}

// Start and End return the bucket's date bounds.
func (b Bucket) Start() time.Time { return b.Dates[0] }
func (b Bucket) End() time.Time   { return b.Dates[len(b.Dates)-1] }

var validFarGranularities = map[int]bool{1: true, 2: true, 3: true, 7: true}

// BuildBuckets partitions horizon into buckets per cfg: the first
// cfg.NearTermDays days each become a single-day bucket, and the remainder
// is grouped into cfg.FarGranularity-day buckets (the last bucket may be
// short if the horizon doesn't divide evenly).
func BuildBuckets(h Horizon, cfg GranularityConfig) ([]Bucket, error) {
	if cfg.FarGranularity != 0 && !validFarGranularities[cfg.FarGranularity] {
		return nil, fmt.Errorf("temporal: far_granularity must be one of {1,2,3,7}, got %d", cfg.FarGranularity)
	}
	far := cfg.FarGranularity
	if far == 0 {
		far = 1
	}

	var buckets []Bucket
	i := 0
	for i < len(h.Dates) {
		size := 1
		if i >= cfg.NearTermDays {
			size = far
		}
		end := i + size
		if end > len(h.Dates) {
			end = len(h.Dates)
		}
		buckets = append(buckets, Bucket{Index: len(buckets), Dates: append([]time.Time(nil), h.Dates[i:end]...)})
		i = end
	}
	return buckets, nil
}

// BucketForDate returns the bucket containing date, and whether one was
// found.
func BucketForDate(buckets []Bucket, date time.Time) (Bucket, bool) {
	date = domain.NormalizeDate(date)
	for _, b := range buckets {
		for _, d := range b.Dates {
			if d.Equal(date) {
				return b, true
			}
		}
	}
	return Bucket{}, false
}

package temporal

import (
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

// demandKey groups forecast entries by location/product for aggregation.
type demandKey struct {
	Location domain.NodeID
	Product  domain.ProductID
}

// BucketDemand is one aggregated (location, product, bucket) demand figure.
type BucketDemand struct {
	LocationID domain.NodeID
	ProductID  domain.ProductID
	Bucket     Bucket
	Quantity   int64
}

// AggregateForecast sums daily demand into buckets per (location, product).
// Forecast entries whose date falls outside every bucket are dropped,
// callers are expected to have already restricted the forecast to the
// horizon.
//
// Invariant: sum(bucket_demand)
// == sum(daily_demand) bit-for-bit. Because quantities are int64 units, not
// floats, this holds by construction: integer addition has no rounding.
func AggregateForecast(forecast domain.Forecast, buckets []Bucket) []BucketDemand {
	totals := make(map[demandKey]map[int]int64)
	for _, entry := range forecast {
		bucket, ok := BucketForDate(buckets, entry.Date)
		if !ok {
			continue
		}
		key := demandKey{entry.LocationID, entry.ProductID}
		if totals[key] == nil {
			totals[key] = make(map[int]int64)
		}
		totals[key][bucket.Index] += entry.Quantity
	}

	var result []BucketDemand
	for key, byBucket := range totals {
		for bucketIdx, qty := range byBucket {
			result = append(result, BucketDemand{
				LocationID: key.Location,
				ProductID:  key.Product,
				Bucket:     buckets[bucketIdx],
				Quantity:   qty,
			})
		}
	}
	return result
}

// DisaggregateForecast splits a bucket-level plan (quantities keyed the
// same way AggregateForecast produces them) back into daily entries,
// proportional to the original daily forecast within each bucket. When the original forecast had zero total demand
// in a bucket the disaggregated quantity is split evenly across the
// bucket's days instead of dividing by zero.
func DisaggregateForecast(bucketed []BucketDemand, original domain.Forecast) domain.Forecast {
	dailyOriginal := make(map[demandKey]map[time.Time]int64)
	for _, entry := range original {
		key := demandKey{entry.LocationID, entry.ProductID}
		if dailyOriginal[key] == nil {
			dailyOriginal[key] = make(map[time.Time]int64)
		}
		dailyOriginal[key][domain.NormalizeDate(entry.Date)] += entry.Quantity
	}

	var out domain.Forecast
	for _, bd := range bucketed {
		key := demandKey{bd.LocationID, bd.ProductID}
		byDay := dailyOriginal[key]

		var bucketTotal int64
		for _, d := range bd.Bucket.Dates {
			bucketTotal += byDay[d]
		}

		if bucketTotal == 0 {
			out = append(out, evenSplit(bd)...)
			continue
		}

		var allocated int64
		for i, d := range bd.Bucket.Dates {
			var qty int64
			if i == len(bd.Bucket.Dates)-1 {
				qty = bd.Quantity - allocated // remainder to the last day, preserves exact total
			} else {
				qty = bd.Quantity * byDay[d] / bucketTotal
			}
			allocated += qty
			out = append(out, domain.ForecastEntry{
				LocationID: bd.LocationID,
				ProductID:  bd.ProductID,
				Date:       d,
				Quantity:   qty,
			})
		}
	}
	return out
}

func evenSplit(bd BucketDemand) domain.Forecast {
	n := int64(len(bd.Bucket.Dates))
	if n == 0 {
		return nil
	}
	base := bd.Quantity / n
	remainder := bd.Quantity % n
	out := make(domain.Forecast, 0, n)
	for i, d := range bd.Bucket.Dates {
		qty := base
		if int64(i) < remainder {
			qty++
		}
		out = append(out, domain.ForecastEntry{
			LocationID: bd.LocationID,
			ProductID:  bd.ProductID,
			Date:       d,
			Quantity:   qty,
		})
	}
	return out
}

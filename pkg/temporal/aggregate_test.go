package temporal

import (
	"testing"
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/domain"
)

func dateAt(day int) time.Time {
	return time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC)
}

func TestAggregateForecastExactTotal(t *testing.T) {
	h := BuildDaily(dateAt(1), dateAt(10), 0)
	buckets, err := BuildBuckets(h, GranularityConfig{NearTermDays: 3, FarGranularity: 7})
	if err != nil {
		t.Fatalf("BuildBuckets: %v", err)
	}

	forecast := domain.Forecast{
		{LocationID: "Sp", ProductID: "P", Date: dateAt(1), Quantity: 10},
		{LocationID: "Sp", ProductID: "P", Date: dateAt(2), Quantity: 20},
		{LocationID: "Sp", ProductID: "P", Date: dateAt(4), Quantity: 7},
		{LocationID: "Sp", ProductID: "P", Date: dateAt(5), Quantity: 3},
		{LocationID: "Sp", ProductID: "P", Date: dateAt(10), Quantity: 100},
	}

	var dailyTotal int64
	for _, f := range forecast {
		dailyTotal += f.Quantity
	}

	bucketed := AggregateForecast(forecast, buckets)
	var bucketTotal int64
	for _, b := range bucketed {
		bucketTotal += b.Quantity
	}

	if bucketTotal != dailyTotal {
		t.Errorf("bucket total = %d, want %d (bit-for-bit )", bucketTotal, dailyTotal)
	}
}

func TestDisaggregateRoundTripUniformDemand(t *testing.T) {
	h := BuildDaily(dateAt(1), dateAt(7), 0)
	buckets, err := BuildBuckets(h, GranularityConfig{NearTermDays: 0, FarGranularity: 7})
	if err != nil {
		t.Fatalf("BuildBuckets: %v", err)
	}

	// Uniform demand: 14 units/day for 7 days.
	var forecast domain.Forecast
	for i := 1; i <= 7; i++ {
		forecast = append(forecast, domain.ForecastEntry{LocationID: "Sp", ProductID: "P", Date: dateAt(i), Quantity: 14})
	}

	bucketed := AggregateForecast(forecast, buckets)
	disagg := DisaggregateForecast(bucketed, forecast)

	if len(disagg) != len(forecast) {
		t.Fatalf("disaggregated entry count = %d, want %d", len(disagg), len(forecast))
	}
	for _, entry := range disagg {
		if entry.Quantity != 14 {
			t.Errorf("disaggregated quantity on %s = %d, want 14 (uniform round trip)", entry.Date, entry.Quantity)
		}
	}
}

func TestBuildBucketsRejectsInvalidGranularity(t *testing.T) {
	h := BuildDaily(dateAt(1), dateAt(5), 0)
	if _, err := BuildBuckets(h, GranularityConfig{FarGranularity: 4}); err == nil {
		t.Error("expected error for far_granularity=4")
	}
}

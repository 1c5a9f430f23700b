package core

import (
	"github.com/masterputra169/cryptography-website-sub002/core/algo"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// AnalyzeTrends fits a linear trend over the day, week and month bucket
// series. A period is skipped entirely (not zero-filled) when the record set
// is below minDataPoints system-wide or the period produced fewer than two
// buckets.
func AnalyzeTrends(records []schema.MetricRecord, minDataPoints int) []schema.TrendResult {
	if len(records) < minDataPoints {
		return nil
	}

	results := make([]schema.TrendResult, 0, len(schema.TrendPeriods))
	for _, period := range schema.TrendPeriods {
		buckets := BucketByPeriod(records, period)
		if len(buckets) < 2 {
			continue
		}
		results = append(results, fitTrend(period, buckets))
	}
	return results
}

// fitTrend runs an ordinary least squares fit over bucket index vs average
// execution time and classifies the direction from the fitted percent change
// across the series.
func fitTrend(period schema.Period, buckets []schema.TimeBucket) schema.TrendResult {
	ys := make([]float64, len(buckets))
	sumY := 0.0
	for i, b := range buckets {
		ys[i] = b.AvgTime
		sumY += b.AvgTime
	}

	slope := algo.Slope(ys)

	// change is the fitted delta across the whole series relative to the
	// series mean. A zero-sum series has no meaningful baseline; treat it
	// as flat instead of dividing by zero.
	var change float64
	if sumY != 0 {
		n := float64(len(buckets))
		meanY := sumY / n
		change = slope * (n - 1) / meanY * 100
	}

	trend := schema.TrendStable
	switch {
	case change > schema.TrendIncreaseThreshold:
		trend = schema.TrendIncreasing
	case change < schema.TrendDecreaseThreshold:
		trend = schema.TrendDecreasing
	}

	return schema.TrendResult{
		Period: period,
		Data:   buckets,
		Trend:  trend,
		Change: change,
		Slope:  slope,
	}
}

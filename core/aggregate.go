// Package core has the analytics pipeline: aggregation, bucketing, trend
// fitting, insight heuristics, prediction, comparison and report assembly.
package core

import (
	"github.com/masterputra169/cryptography-website-sub002/core/algo"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// AggregateByAlgorithm groups records by exact algorithm name and computes
// per-algorithm summary statistics. Records whose execution time does not
// parse are excluded from that algorithm's computation set; an algorithm
// with no valid records at all is absent from the output rather than stored
// with a zero count.
//
// The returned Order slice preserves first-seen algorithm order from the
// input sequence, which downstream consumers use for deterministic
// tie-breaking.
func AggregateByAlgorithm(records []schema.MetricRecord) *schema.AggregateOutput {
	times := make(map[string][]float64)
	order := make([]string, 0)

	for _, r := range records {
		if _, seen := times[r.Algorithm]; !seen {
			times[r.Algorithm] = nil
			order = append(order, r.Algorithm)
		}
		v, ok := r.ParseExecutionTime()
		if !ok {
			continue
		}
		times[r.Algorithm] = append(times[r.Algorithm], v)
	}

	stats := make(map[string]schema.AggregatedStat, len(times))
	kept := make([]string, 0, len(order))
	for _, name := range order {
		vals := times[name]
		if len(vals) == 0 {
			continue // All records unparseable; drop the algorithm entirely
		}
		stats[name] = computeStat(vals)
		kept = append(kept, name)
	}

	return &schema.AggregateOutput{Stats: stats, Order: kept}
}

// computeStat derives the full AggregatedStat for one algorithm's execution
// times. All formulas are symmetric in the value multiset, so aggregation is
// independent of record order.
func computeStat(vals []float64) schema.AggregatedStat {
	total := 0.0
	minV, maxV := vals[0], vals[0]
	for _, v := range vals {
		total += v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	mean := total / float64(len(vals))

	return schema.AggregatedStat{
		Count:     len(vals),
		TotalTime: total,
		AvgTime:   mean,
		MinTime:   minV,
		MaxTime:   maxV,
		StdDev:    algo.StdDev(vals, mean),
		Median:    algo.Median(vals),
		P25:       algo.Percentile(vals, 25),
		P75:       algo.Percentile(vals, 75),
		P95:       algo.Percentile(vals, 95),
	}
}

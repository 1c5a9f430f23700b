package core

import (
	"fmt"
	"time"

	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// BuildReport composes the derived analytics plus summary metadata into a
// single report. The date range reads the first and last record timestamps
// in the supplied order; callers supply records newest-first so the range
// runs from most recent to oldest.
func BuildReport(
	records []schema.MetricRecord,
	output *schema.AggregateOutput,
	trends []schema.TrendResult,
	insights []schema.Insight,
	predictions map[string]schema.Prediction,
	period schema.Period,
) schema.Report {
	var dateRange schema.DateRange
	if len(records) > 0 {
		dateRange.Start = records[0].Timestamp
		dateRange.End = records[len(records)-1].Timestamp
	}

	algorithms := map[string]schema.AggregatedStat{}
	totalOps := 0
	if output != nil {
		algorithms = output.Stats
		totalOps = output.TotalOperations()
	}

	return schema.Report{
		GeneratedAt: time.Now().UTC(),
		Period:      period,
		Summary: schema.ReportSummary{
			TotalOperations: totalOps,
			Algorithms:      len(algorithms),
			Period:          period,
			DateRange:       dateRange,
		},
		Algorithms:      algorithms,
		Trends:          trends,
		Insights:        insights,
		Predictions:     predictions,
		Recommendations: buildRecommendations(output, insights),
	}
}

// buildRecommendations derives an action list from the current insights and
// the identity of the fastest algorithm. The output is a pure function of
// its inputs; no randomness, no external state.
func buildRecommendations(output *schema.AggregateOutput, insights []schema.Insight) []string {
	recs := make([]string, 0)

	for _, in := range insights {
		switch {
		case in.Type == schema.WarningInsight && in.Title == "High Variability":
			if name, ok := in.Data["algorithm"].(string); ok {
				recs = append(recs, fmt.Sprintf("Investigate %s: its execution times vary widely between runs", name))
			}
		case in.Type == schema.WarningInsight && in.Title == "Performance Degradation":
			if period, ok := in.Data["period"].(string); ok {
				recs = append(recs, fmt.Sprintf("Review recent changes: %s execution times are trending upward", period))
			}
		case in.Type == schema.InfoInsight && in.Title == "Optimization Opportunity":
			if name, ok := in.Data["algorithm"].(string); ok {
				recs = append(recs, fmt.Sprintf("Consider optimizing %s or reserving it for smaller inputs", name))
			}
		}
	}

	if fastest := fastestAlgorithm(output); fastest != "" {
		recs = append(recs, fmt.Sprintf("Use %s for time-sensitive operations", fastest))
	}
	return recs
}

// fastestAlgorithm returns the algorithm with the minimum average time,
// first-seen order breaking ties, or "" for an empty output.
func fastestAlgorithm(output *schema.AggregateOutput) string {
	if output == nil {
		return ""
	}
	best := ""
	bestAvg := 0.0
	for _, name := range output.Order {
		s := output.Stats[name]
		if best == "" || s.AvgTime < bestAvg {
			best = name
			bestAvg = s.AvgTime
		}
	}
	return best
}

package core

import (
	"fmt"

	"github.com/masterputra169/cryptography-website-sub002/core/algo"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// GenerateInsights applies the fixed heuristic set to the current aggregate
// output and trend results. The heuristic order is part of the contract:
// best performer, variability, low usage, degradation, optimization
// opportunity. Each heuristic emits independently and there is no
// deduplication across refreshes.
//
// Returns nil when fewer than minDataPoints operations are present.
// Ties for best performer resolve to the first-seen algorithm.
func GenerateInsights(output *schema.AggregateOutput, trends []schema.TrendResult, minDataPoints int) []schema.Insight {
	if output == nil || output.TotalOperations() < minDataPoints {
		return nil
	}

	var insights []schema.Insight
	insights = append(insights, bestPerformanceInsights(output)...)
	insights = append(insights, variabilityInsights(output)...)
	insights = append(insights, lowUsageInsights(output)...)
	insights = append(insights, degradationInsights(trends)...)
	insights = append(insights, optimizationInsights(output, minDataPoints)...)
	return insights
}

// bestPerformanceInsights emits exactly one success insight naming the
// algorithm with the minimum average time. First-seen order breaks ties.
func bestPerformanceInsights(output *schema.AggregateOutput) []schema.Insight {
	best := ""
	bestAvg := 0.0
	for _, name := range output.Order {
		s := output.Stats[name]
		if best == "" || s.AvgTime < bestAvg {
			best = name
			bestAvg = s.AvgTime
		}
	}
	if best == "" {
		return nil
	}
	return []schema.Insight{{
		Type:    schema.SuccessInsight,
		Title:   "Best Performance",
		Message: fmt.Sprintf("%s is the fastest algorithm with an average of %.2fms", best, bestAvg),
		Data: map[string]any{
			"algorithm": best,
			"avgTime":   bestAvg,
		},
	}}
}

// variabilityInsights flags every algorithm whose coefficient of variation
// exceeds HighVariabilityCV.
func variabilityInsights(output *schema.AggregateOutput) []schema.Insight {
	var insights []schema.Insight
	for _, name := range output.Order {
		s := output.Stats[name]
		cv := s.CV()
		if cv <= schema.HighVariabilityCV {
			continue
		}
		insights = append(insights, schema.Insight{
			Type:    schema.WarningInsight,
			Title:   "High Variability",
			Message: fmt.Sprintf("%s shows inconsistent performance (CV %.1f%%)", name, cv),
			Data: map[string]any{
				"algorithm": name,
				"cv":        cv,
				"stdDev":    s.StdDev,
				"avgTime":   s.AvgTime,
			},
		})
	}
	return insights
}

// lowUsageInsights flags algorithms used in under LowUsageSharePercent of
// operations, once they have more than LowUsageMinCount runs.
func lowUsageInsights(output *schema.AggregateOutput) []schema.Insight {
	total := output.TotalOperations()
	if total == 0 {
		return nil
	}

	var insights []schema.Insight
	for _, name := range output.Order {
		s := output.Stats[name]
		share := float64(s.Count) / float64(total) * 100
		if share >= schema.LowUsageSharePercent || s.Count <= schema.LowUsageMinCount {
			continue
		}
		insights = append(insights, schema.Insight{
			Type:    schema.InfoInsight,
			Title:   "Low Usage",
			Message: fmt.Sprintf("%s accounts for only %.1f%% of operations", name, share),
			Data: map[string]any{
				"algorithm": name,
				"share":     share,
				"count":     float64(s.Count),
			},
		})
	}
	return insights
}

// degradationInsights flags every increasing trend whose fitted change
// exceeds DegradationChangePercent.
func degradationInsights(trends []schema.TrendResult) []schema.Insight {
	var insights []schema.Insight
	for _, tr := range trends {
		if tr.Trend != schema.TrendIncreasing || tr.Change <= schema.DegradationChangePercent {
			continue
		}
		insights = append(insights, schema.Insight{
			Type:    schema.WarningInsight,
			Title:   "Performance Degradation",
			Message: fmt.Sprintf("Execution times are trending up %.1f%% per %s series", tr.Change, tr.Period),
			Data: map[string]any{
				"period": string(tr.Period),
				"change": tr.Change,
				"slope":  tr.Slope,
			},
		})
	}
	return insights
}

// optimizationInsights flags algorithms running slower than
// OptimizationFactor times the overall average, once they have more than
// minDataPoints runs of their own.
func optimizationInsights(output *schema.AggregateOutput, minDataPoints int) []schema.Insight {
	avgs := make([]float64, 0, output.Len())
	for _, name := range output.Order {
		avgs = append(avgs, output.Stats[name].AvgTime)
	}
	overallAvg := algo.Mean(avgs)

	var insights []schema.Insight
	for _, name := range output.Order {
		s := output.Stats[name]
		if s.AvgTime <= overallAvg*schema.OptimizationFactor || s.Count <= minDataPoints {
			continue
		}
		insights = append(insights, schema.Insight{
			Type:    schema.InfoInsight,
			Title:   "Optimization Opportunity",
			Message: fmt.Sprintf("%s averages %.2fms, well above the overall average of %.2fms", name, s.AvgTime, overallAvg),
			Data: map[string]any{
				"algorithm":  name,
				"avgTime":    s.AvgTime,
				"overallAvg": overallAvg,
			},
		})
	}
	return insights
}

package core

import (
	"fmt"
	"math"

	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// ErrUnknownAlgorithm reports a comparison against a name absent from the
// current aggregate output. It is returned, never panicked, across the
// public surface.
type ErrUnknownAlgorithm struct {
	Name string
}

func (e *ErrUnknownAlgorithm) Error() string {
	return fmt.Sprintf("unknown algorithm %q", e.Name)
}

// CompareAlgorithms compares two named algorithms across average time,
// consistency (standard deviation) and usage (record count). Lower wins for
// the first two, higher wins for usage, and the overall winner is the
// average-time winner. The analysis sentence quantifies the average-time
// improvement as (max-min)/max, rounded to one decimal.
func CompareAlgorithms(output *schema.AggregateOutput, name1, name2 string) (*schema.ComparisonResult, error) {
	s1, ok := output.Get(name1)
	if !ok {
		return nil, &ErrUnknownAlgorithm{Name: name1}
	}
	s2, ok := output.Get(name2)
	if !ok {
		return nil, &ErrUnknownAlgorithm{Name: name2}
	}

	avgTime := compareMetric(name1, name2, s1.AvgTime, s2.AvgTime, false)
	consistency := compareMetric(name1, name2, s1.StdDev, s2.StdDev, false)
	usage := compareMetric(name1, name2, float64(s1.Count), float64(s2.Count), true)

	winner := avgTime.Winner
	loser := name2
	if winner == name2 {
		loser = name1
	}

	maxAvg := math.Max(s1.AvgTime, s2.AvgTime)
	improvement := 0.0
	if maxAvg > 0 {
		improvement = (maxAvg - math.Min(s1.AvgTime, s2.AvgTime)) / maxAvg * 100
	}

	return &schema.ComparisonResult{
		Algorithm1: name1,
		Algorithm2: name2,
		Metrics: schema.ComparisonMetrics{
			AvgTime:     avgTime,
			Consistency: consistency,
			Usage:       usage,
		},
		Winner:   winner,
		Analysis: fmt.Sprintf("%s performs %.1f%% better on average than %s", winner, improvement, loser),
	}, nil
}

// compareMetric builds a single sub-comparison. Ties go to the first
// algorithm so repeated comparisons stay deterministic.
func compareMetric(name1, name2 string, v1, v2 float64, higherWins bool) schema.MetricComparison {
	winner := name1
	if higherWins {
		if v2 > v1 {
			winner = name2
		}
	} else if v2 < v1 {
		winner = name2
	}
	return schema.MetricComparison{
		Algorithm1: v1,
		Algorithm2: v2,
		Winner:     winner,
		Difference: math.Abs(v1 - v2),
	}
}

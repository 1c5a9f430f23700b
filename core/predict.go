package core

import (
	"fmt"

	"github.com/masterputra169/cryptography-website-sub002/core/algo"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// GeneratePredictions forecasts the next execution time per algorithm as a
// moving average over that algorithm's minDataPoints most recent records.
// Records must be supplied newest-first; "most recent" means closest to the
// front of the sequence.
//
// Returns nil when the record set is smaller than minDataPoints*2.
// Algorithms with fewer than minDataPoints parseable records of their own
// are omitted, not zero-filled.
func GeneratePredictions(records []schema.MetricRecord, output *schema.AggregateOutput, minDataPoints int) map[string]schema.Prediction {
	if output == nil || len(records) < minDataPoints*2 {
		return nil
	}

	recent := make(map[string][]float64)
	for _, r := range records {
		if len(recent[r.Algorithm]) >= minDataPoints {
			continue
		}
		if v, ok := r.ParseExecutionTime(); ok {
			recent[r.Algorithm] = append(recent[r.Algorithm], v)
		}
	}

	predictions := make(map[string]schema.Prediction)
	for _, name := range output.Order {
		vals := recent[name]
		if len(vals) < minDataPoints {
			continue
		}
		stat := output.Stats[name]
		confidence := 100 - stat.CV()
		if confidence < 0 {
			confidence = 0
		}
		predictions[name] = schema.Prediction{
			NextExecutionTime: algo.Mean(vals),
			Confidence:        fmt.Sprintf("%.1f", confidence),
			BasedOn:           len(vals),
		}
	}
	if len(predictions) == 0 {
		return nil
	}
	return predictions
}

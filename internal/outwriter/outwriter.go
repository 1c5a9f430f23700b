// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteStats prints per-algorithm aggregate stats using the configured output format.
func (ow *OutWriter) WriteStats(output *schema.AggregateOutput, cfg *contract.Config, duration time.Duration) error {
	return WriteStatsResults(output, cfg, duration)
}

// WriteTrends prints trend analysis results using the configured output format.
func (ow *OutWriter) WriteTrends(trends []schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return WriteTrendResults(trends, cfg, duration)
}

// WriteInsights prints heuristic insights using the configured output format.
func (ow *OutWriter) WriteInsights(insights []schema.Insight, cfg *contract.Config, duration time.Duration) error {
	return WriteInsightResults(insights, cfg, duration)
}

// WritePredictions prints per-algorithm predictions using the configured output format.
func (ow *OutWriter) WritePredictions(predictions map[string]schema.Prediction, order []string, cfg *contract.Config, duration time.Duration) error {
	return WritePredictionResults(predictions, order, cfg, duration)
}

// WriteComparison prints a head-to-head comparison using the configured output format.
func (ow *OutWriter) WriteComparison(result *schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return WriteComparisonResults(result, cfg, duration)
}

// WriteReport prints a composed analytics report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	return WriteReportResults(report, cfg, duration)
}

package schema

import "time"

// DateRange spans the record set from the most recent to the oldest record.
// Callers supply records newest-first, so Start is the newest timestamp.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ReportSummary has the headline numbers for a report.
type ReportSummary struct {
	TotalOperations int       `json:"totalOperations"`
	Algorithms      int       `json:"algorithms"`
	Period          Period    `json:"period"`
	DateRange       DateRange `json:"dateRange"`
}

// Report is the single composed artifact bundling all derived analytics for
// one refresh. Predictions is nil when prediction is disabled or no algorithm
// has enough records.
type Report struct {
	GeneratedAt     time.Time                 `json:"generatedAt"`
	Period          Period                    `json:"period"`
	Summary         ReportSummary             `json:"summary"`
	Algorithms      map[string]AggregatedStat `json:"algorithms"`
	Trends          []TrendResult             `json:"trends"`
	Insights        []Insight                 `json:"insights"`
	Predictions     map[string]Prediction     `json:"predictions"`
	Recommendations []string                  `json:"recommendations"`
}

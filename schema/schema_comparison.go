package schema

// MetricComparison holds one sub-comparison between two algorithms.
// Winner names the algorithm, not a positional index.
type MetricComparison struct {
	Algorithm1 float64 `json:"algorithm1"` // Value for the first algorithm
	Algorithm2 float64 `json:"algorithm2"` // Value for the second algorithm
	Winner     string  `json:"winner"`
	Difference float64 `json:"difference"` // Absolute difference between the values
}

// ComparisonMetrics groups the three fixed sub-comparisons.
// Lower wins for avgTime and consistency (stdDev); higher wins for usage.
type ComparisonMetrics struct {
	AvgTime     MetricComparison `json:"avgTime"`
	Consistency MetricComparison `json:"consistency"`
	Usage       MetricComparison `json:"usage"`
}

// ComparisonResult is the on-demand pairwise comparison of two algorithms.
// The overall winner is the avgTime winner; Analysis is a templated sentence
// quantifying the average-time improvement.
type ComparisonResult struct {
	Algorithm1 string            `json:"algorithm1"`
	Algorithm2 string            `json:"algorithm2"`
	Metrics    ComparisonMetrics `json:"metrics"`
	Winner     string            `json:"winner"`
	Analysis   string            `json:"analysis"`
}

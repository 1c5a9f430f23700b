// Package schema has configs, models and shared constants for all parts of ciphermetrics.
package schema

import "strconv"

// MetricRecord represents one timed execution of a cipher algorithm.
// Records are produced by the cipher runners of the surrounding application
// and are treated as immutable input; the engine only reads them.
// Numeric-looking fields arrive as strings because the upstream exporter
// serializes everything as text.
type MetricRecord struct {
	Algorithm     string `json:"algorithm"`     // Name of the cipher algorithm (e.g. "caesar", "vigenere")
	Timestamp     string `json:"timestamp"`     // ISO-8601 timestamp of the run
	ExecutionTime string `json:"executionTime"` // Execution time in milliseconds, as a numeric string
	InputSize     int    `json:"inputSize"`     // Plaintext size in bytes
	OutputSize    int    `json:"outputSize"`    // Ciphertext size in bytes
	Throughput    string `json:"throughput"`    // Reported throughput (opaque display string)
	Efficiency    string `json:"efficiency"`    // Reported efficiency (opaque display string)
}

// ParseExecutionTime parses the record's execution time into milliseconds.
// The second return value is false when the field is not a valid number;
// such records are excluded from every statistic rather than poisoning
// an algorithm's computation set with NaN.
func (r MetricRecord) ParseExecutionTime() (float64, bool) {
	v, err := strconv.ParseFloat(r.ExecutionTime, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AggregatedStat holds the summary statistics for one algorithm's records.
// Zero-count stats are never stored; an algorithm without valid records is
// simply absent from the aggregate output.
type AggregatedStat struct {
	Count     int     `json:"count"`     // Number of records with a parseable execution time
	TotalTime float64 `json:"totalTime"` // Sum of execution times (ms)
	AvgTime   float64 `json:"avgTime"`   // Arithmetic mean (ms)
	MinTime   float64 `json:"minTime"`   // Fastest run (ms)
	MaxTime   float64 `json:"maxTime"`   // Slowest run (ms)
	StdDev    float64 `json:"stdDev"`    // Population standard deviation (ms)
	Median    float64 `json:"median"`    // 50th percentile (ms)
	P25       float64 `json:"p25"`       // 25th percentile (ms)
	P75       float64 `json:"p75"`       // 75th percentile (ms)
	P95       float64 `json:"p95"`       // 95th percentile (ms)
}

// CV returns the coefficient of variation as a percentage.
// A CV above HighVariabilityCV flags an inconsistent algorithm.
func (s AggregatedStat) CV() float64 {
	if s.AvgTime == 0 {
		return 0
	}
	return s.StdDev / s.AvgTime * 100
}

// AggregateOutput is the result of grouping records by algorithm.
// Order preserves first-seen algorithm order from the input sequence so that
// downstream tie-breaks (e.g. best performer) stay deterministic; Go map
// iteration order is not.
type AggregateOutput struct {
	Stats map[string]AggregatedStat `json:"stats"`
	Order []string                  `json:"order"`
}

// Get returns the stats for an algorithm and whether it is present.
func (o *AggregateOutput) Get(name string) (AggregatedStat, bool) {
	s, ok := o.Stats[name]
	return s, ok
}

// TotalOperations returns the number of records counted across all algorithms.
func (o *AggregateOutput) TotalOperations() int {
	total := 0
	for _, s := range o.Stats {
		total += s.Count
	}
	return total
}

// Len returns the number of distinct algorithms present.
func (o *AggregateOutput) Len() int {
	return len(o.Stats)
}

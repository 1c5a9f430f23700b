package schema

// TimeBucket is one time-window grouping of records for a given period.
// Date encodes the bucket key losslessly for its granularity (see the key
// formats in core bucketing); buckets for unrelated periods never collide.
type TimeBucket struct {
	Date      string  `json:"date"`      // Bucket key (e.g. "2024-03-07", "2024-03-W1")
	Count     int     `json:"count"`     // Records in the bucket
	AvgTime   float64 `json:"avgTime"`   // Mean execution time within the bucket (ms)
	TotalTime float64 `json:"totalTime"` // Sum of execution times within the bucket (ms)
}

// TrendResult is the fitted trend for one period's bucket series.
// Data keeps the buckets in first-seen order, which is the order the fit ran
// over; consumers that need chronological order must sort explicitly.
type TrendResult struct {
	Period Period         `json:"period"`
	Data   []TimeBucket   `json:"data"`
	Trend  TrendDirection `json:"trend"`
	Change float64        `json:"change"` // Fitted change across the series, percent
	Slope  float64        `json:"slope"`  // Least-squares slope (ms per bucket index)
}

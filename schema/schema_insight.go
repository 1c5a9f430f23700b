package schema

// Insight is a short, classified, human-readable observation derived from
// aggregated stats and trends. Data carries the numbers that triggered the
// heuristic so consumers never need to recompute them. Values stored in Data
// are limited to strings and float64 so insights survive a JSON round trip
// structurally unchanged.
type Insight struct {
	Type    InsightType    `json:"type"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// Prediction is a short-horizon forecast of an algorithm's next execution
// time, computed as a moving average over its most recent records.
type Prediction struct {
	NextExecutionTime float64 `json:"nextExecutionTime"` // Forecast (ms)
	Confidence        string  `json:"confidence"`        // max(0, 100-CV%), one decimal
	BasedOn           int     `json:"basedOn"`           // Records used for the average
}

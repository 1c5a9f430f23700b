package schema

import "time"

// Timestamp layouts accepted from upstream exporters. The primary producer
// emits RFC3339 with milliseconds; older exports lack the zone suffix.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a record timestamp. The second return value is false
// when none of the accepted layouts match; such records are skipped by the
// time bucketer instead of landing in a garbage bucket.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

package core

import (
	"fmt"
	"time"

	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// BucketByPeriod groups records into period buckets and computes per-bucket
// totals and averages. Buckets come back in first-seen order of their keys,
// NOT chronological order: trend fitting runs over this insertion order and
// sorting here would change trend-direction outcomes. Callers that need
// chronological buckets must sort explicitly.
//
// Records with an unparseable timestamp or execution time are skipped.
func BucketByPeriod(records []schema.MetricRecord, period schema.Period) []schema.TimeBucket {
	index := make(map[string]int)
	buckets := make([]schema.TimeBucket, 0)

	for _, r := range records {
		ts, ok := schema.ParseTimestamp(r.Timestamp)
		if !ok {
			continue
		}
		v, ok := r.ParseExecutionTime()
		if !ok {
			continue
		}

		key := bucketKey(ts, period)
		i, seen := index[key]
		if !seen {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, schema.TimeBucket{Date: key})
		}
		buckets[i].Count++
		buckets[i].TotalTime += v
	}

	for i := range buckets {
		buckets[i].AvgTime = buckets[i].TotalTime / float64(buckets[i].Count)
	}
	return buckets
}

// bucketKey encodes the bucket for a timestamp at the given granularity.
// Keys are lossless per period: two timestamps share a key only when they
// fall in the same hour, day, week-of-month or month.
//
// Week keys use floor(day-of-month/7) rather than ISO week numbering. That
// makes week boundaries inconsistent across month edges; it is the upstream
// exporter's convention and is kept for behavioral parity.
func bucketKey(ts time.Time, period schema.Period) string {
	switch period {
	case schema.HourPeriod:
		return ts.Format("2006-01-02 15:00")
	case schema.WeekPeriod:
		return fmt.Sprintf("%s-W%d", ts.Format("2006-01"), ts.Day()/7)
	case schema.MonthPeriod:
		return ts.Format("2006-01")
	default: // DayPeriod
		return ts.Format("2006-01-02")
	}
}

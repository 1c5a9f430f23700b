// Package contract provides interfaces and shared utilities for the
// ciphermetrics CLI's internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// RecordStore defines durable storage for metric records and refresh-run
// tracking. This allows the storage layer to be mocked for testing.
type RecordStore interface {
	// LoadRecords returns all stored records ordered newest-first, which is
	// the order the analytics engine expects.
	LoadRecords(ctx context.Context) ([]schema.MetricRecord, error)

	// SaveRecords appends records to the store.
	SaveRecords(ctx context.Context, records []schema.MetricRecord) error

	// CountRecords returns the number of stored records.
	CountRecords(ctx context.Context) (int, error)

	// ClearRecords removes all stored records.
	ClearRecords(ctx context.Context) error

	// BeginRun records the start of an analysis run and returns its ID,
	// or 0 when run tracking is disabled.
	BeginRun(start time.Time, params map[string]any) (int64, error)

	// EndRun finalizes an analysis run with its end time and the number of
	// records analyzed.
	EndRun(id int64, end time.Time, records int) error

	Close() error
}

// StoreManager hands out the record store. It exists so commands and the
// MCP server share one initialized store without import cycles.
type StoreManager interface {
	GetRecordStore() RecordStore
}

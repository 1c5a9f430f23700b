package recstore

import (
	"context"
	"testing"
	"time"

	"github.com/masterputra169/cryptography-website-sub002/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStore_NoneBackend(t *testing.T) {
	store, err := NewRecordStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	ctx := context.Background()

	// All operations are no-ops on the disabled store
	records, err := store.LoadRecords(ctx)
	assert.NoError(t, err)
	assert.Nil(t, records)

	err = store.SaveRecords(ctx, []schema.MetricRecord{{Algorithm: "caesar"}})
	assert.NoError(t, err)

	count, err := store.CountRecords(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	// BeginRun should return 0 for NoneBackend
	runID, err := store.BeginRun(time.Now(), map[string]any{"period": "day"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	err = store.EndRun(1, time.Now(), 10)
	assert.NoError(t, err)

	err = store.ClearRecords(ctx)
	assert.NoError(t, err)

	err = store.Close()
	assert.NoError(t, err)
}

func TestRecordStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewRecordStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	ctx := context.Background()

	records := []schema.MetricRecord{
		{
			Algorithm:     "caesar",
			Timestamp:     "2026-01-02T10:00:00Z",
			ExecutionTime: "12.5",
			InputSize:     256,
			OutputSize:    256,
			Throughput:    "20.48 KB/s",
			Efficiency:    "1.00",
		},
		{
			Algorithm:     "vigenere",
			Timestamp:     "2026-01-01T10:00:00Z",
			ExecutionTime: "30.0",
			InputSize:     512,
			OutputSize:    512,
		},
	}
	err = store.SaveRecords(ctx, records)
	require.NoError(t, err)

	count, err := store.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	loaded, err := store.LoadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Newest-first ordering regardless of insert order
	assert.Equal(t, "caesar", loaded[0].Algorithm)
	assert.Equal(t, "vigenere", loaded[1].Algorithm)
	assert.Equal(t, "12.5", loaded[0].ExecutionTime)
	assert.Equal(t, 256, loaded[0].InputSize)
	assert.Equal(t, "20.48 KB/s", loaded[0].Throughput)

	err = store.ClearRecords(ctx)
	require.NoError(t, err)

	count, err = store.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRecordStore_SQLiteRunTracking(t *testing.T) {
	store, err := NewRecordStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	configParams := map[string]any{
		"period":     "day",
		"min-points": 5,
	}
	runID, err := store.BeginRun(time.Now(), configParams)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	err = store.EndRun(runID, time.Now(), 42)
	assert.NoError(t, err)

	// A zero run ID is the disabled-tracking sentinel and must not error
	err = store.EndRun(0, time.Now(), 0)
	assert.NoError(t, err)
}

func TestRecordStore_SaveEmpty(t *testing.T) {
	store, err := NewRecordStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	assert.NoError(t, store.SaveRecords(ctx, nil))

	count, err := store.CountRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRecordStore_UnsupportedBackend(t *testing.T) {
	_, err := NewRecordStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

func TestNextIDUnique(t *testing.T) {
	seen := make(map[int64]struct{})
	for range 100 {
		id := nextID()
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

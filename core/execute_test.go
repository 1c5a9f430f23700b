package core

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory RecordStore for executor tests.
type fakeStore struct {
	records   []schema.MetricRecord
	runsBegun int
	runsEnded int
}

func (f *fakeStore) LoadRecords(context.Context) ([]schema.MetricRecord, error) {
	return f.records, nil
}

func (f *fakeStore) SaveRecords(_ context.Context, records []schema.MetricRecord) error {
	f.records = append(records, f.records...)
	return nil
}

func (f *fakeStore) CountRecords(context.Context) (int, error) {
	return len(f.records), nil
}

func (f *fakeStore) ClearRecords(context.Context) error {
	f.records = nil
	return nil
}

func (f *fakeStore) BeginRun(time.Time, map[string]any) (int64, error) {
	f.runsBegun++
	return int64(f.runsBegun), nil
}

func (f *fakeStore) EndRun(int64, time.Time, int) error {
	f.runsEnded++
	return nil
}

func (f *fakeStore) Close() error { return nil }

// fakeManager hands out a fixed store.
type fakeManager struct {
	store *fakeStore
}

func (m *fakeManager) GetRecordStore() contract.RecordStore { return m.store }

// executeConfig returns a config that writes to a file so executor tests
// stay quiet on stdout.
func executeConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		Period:         schema.DayPeriod,
		MinDataPoints:  1,
		ResultLimit:    25,
		Precision:      2,
		Output:         schema.JSONOut,
		OutputFile:     filepath.Join(t.TempDir(), "out.json"),
		Width:          120,
		EnableTrends:   true,
		EnableInsights: true,
		StoreBackend:   schema.NoneBackend,
		WatchInterval:  time.Minute,
	}
}

func TestExecuteStats(t *testing.T) {
	mgr := &fakeManager{store: &fakeStore{records: engineRecords()}}
	cfg := executeConfig(t)

	require.NoError(t, ExecuteStats(context.Background(), cfg, mgr))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var results []map[string]any
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 3)
	assert.Equal(t, "caesar", results[0]["algorithm"])

	// Run tracking bracketed the analysis
	assert.Equal(t, 1, mgr.store.runsBegun)
	assert.Equal(t, 1, mgr.store.runsEnded)
}

func TestExecuteStatsLimit(t *testing.T) {
	mgr := &fakeManager{store: &fakeStore{records: engineRecords()}}
	cfg := executeConfig(t)
	cfg.ResultLimit = 2

	require.NoError(t, ExecuteStats(context.Background(), cfg, mgr))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var results []map[string]any
	require.NoError(t, json.Unmarshal(data, &results))
	assert.Len(t, results, 2)
}

func TestExecuteStatsFromInputFile(t *testing.T) {
	records := []schema.MetricRecord{
		{Algorithm: "playfair", Timestamp: "2026-01-01T10:00:00Z", ExecutionTime: "7"},
	}
	data, err := json.Marshal(records)
	require.NoError(t, err)
	inputPath := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(inputPath, data, 0o644))

	// The store is empty; records must come from the file
	mgr := &fakeManager{store: &fakeStore{}}
	cfg := executeConfig(t)
	cfg.InputFile = inputPath

	require.NoError(t, ExecuteStats(context.Background(), cfg, mgr))

	out, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var results []map[string]any
	require.NoError(t, json.Unmarshal(out, &results))
	require.Len(t, results, 1)
	assert.Equal(t, "playfair", results[0]["algorithm"])
}

func TestExecuteTrends(t *testing.T) {
	mgr := &fakeManager{store: &fakeStore{records: engineRecords()}}
	cfg := executeConfig(t)

	require.NoError(t, ExecuteTrends(context.Background(), cfg, mgr))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var trends []schema.TrendResult
	require.NoError(t, json.Unmarshal(data, &trends))
	assert.NotEmpty(t, trends)
}

func TestExecuteInsights(t *testing.T) {
	mgr := &fakeManager{store: &fakeStore{records: engineRecords()}}
	cfg := executeConfig(t)

	require.NoError(t, ExecuteInsights(context.Background(), cfg, mgr))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var insights []schema.Insight
	require.NoError(t, json.Unmarshal(data, &insights))
	assert.NotEmpty(t, insights)
	assert.Equal(t, "Best Performance", insights[0].Title)
}

func TestExecutePredict(t *testing.T) {
	mgr := &fakeManager{store: &fakeStore{records: engineRecords()}}
	cfg := executeConfig(t)
	cfg.EnablePredictions = true

	require.NoError(t, ExecutePredict(context.Background(), cfg, mgr))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var predictions map[string]schema.Prediction
	require.NoError(t, json.Unmarshal(data, &predictions))
	assert.Contains(t, predictions, "caesar")
}

func TestExecuteCompare(t *testing.T) {
	mgr := &fakeManager{store: &fakeStore{records: engineRecords()}}
	cfg := executeConfig(t)

	require.NoError(t, ExecuteCompare(context.Background(), cfg, mgr, "caesar", "rsa"))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var result schema.ComparisonResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "caesar", result.Winner)

	// Unknown names surface as errors
	assert.Error(t, ExecuteCompare(context.Background(), cfg, mgr, "caesar", "enigma"))
}

func TestExecuteReport(t *testing.T) {
	mgr := &fakeManager{store: &fakeStore{records: engineRecords()}}
	cfg := executeConfig(t)

	require.NoError(t, ExecuteReport(context.Background(), cfg, mgr))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var report schema.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 6, report.Summary.TotalOperations)
}

func TestExecuteWatchStopsOnCancel(t *testing.T) {
	mgr := &fakeManager{store: &fakeStore{records: engineRecords()}}
	cfg := executeConfig(t)
	cfg.WatchInterval = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// One pass runs immediately, then the canceled context ends the loop
	require.NoError(t, ExecuteWatch(ctx, cfg, mgr))
	assert.Equal(t, 1, mgr.store.runsBegun)

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var report schema.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 6, report.Summary.TotalOperations)
}

func TestExecuteRecordsExport(t *testing.T) {
	mgr := &fakeManager{store: &fakeStore{records: engineRecords()}}
	cfg := executeConfig(t)
	base := filepath.Join(t.TempDir(), "export")
	cfg.OutputFile = base

	require.NoError(t, ExecuteRecordsExport(context.Background(), cfg, mgr))
	assert.FileExists(t, base+".records.parquet")
	assert.FileExists(t, base+".stats.parquet")

	// Export refuses to guess a destination
	cfg.OutputFile = ""
	assert.Error(t, ExecuteRecordsExport(context.Background(), cfg, mgr))
}

func TestLimitOutput(t *testing.T) {
	output := AggregateByAlgorithm(engineRecords())
	trimmed := limitOutput(output, 2)
	assert.Equal(t, []string{"caesar", "rsa"}, trimmed.Order)
	assert.Len(t, trimmed.Stats, 2)
	assert.NotContains(t, trimmed.Stats, "vigenere")
}

// Package parquet provides data structures and functions for exporting cipher
// metric data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// MetricRow represents a single cipher operation record for columnar export.
// This struct maps to the cipher_metrics database table.
type MetricRow struct {
	// Algorithm is the cipher algorithm name
	Algorithm string `parquet:"algorithm,snappy"`

	// RecordedAt is the raw timestamp string as supplied by the exporter
	RecordedAt string `parquet:"recorded_at,snappy"`

	// ExecutionMs is the parsed execution time in milliseconds (nullable when unparseable)
	ExecutionMs *float64 `parquet:"execution_ms,optional,snappy"`

	// InputSize is the plaintext size in bytes
	InputSize int32 `parquet:"input_size,snappy"`

	// OutputSize is the ciphertext size in bytes
	OutputSize int32 `parquet:"output_size,snappy"`

	// Throughput is the exporter-reported throughput display string (nullable)
	Throughput *string `parquet:"throughput,optional,snappy"`

	// Efficiency is the exporter-reported efficiency display string (nullable)
	Efficiency *string `parquet:"efficiency,optional,snappy"`
}

// StatRow represents the aggregated stats of one algorithm at export time.
type StatRow struct {
	// Algorithm is the cipher algorithm name
	Algorithm string `parquet:"algorithm,snappy"`

	// ExportedAt is when the export ran (stored as TIMESTAMP with nanosecond precision)
	ExportedAt time.Time `parquet:"exported_at,snappy"`

	// Count is the number of records with a parseable execution time
	Count int32 `parquet:"count,snappy"`

	// TotalMs is the sum of execution times in milliseconds
	TotalMs float64 `parquet:"total_ms,snappy"`

	// AvgMs is the mean execution time in milliseconds
	AvgMs float64 `parquet:"avg_ms,snappy"`

	// MinMs is the fastest run in milliseconds
	MinMs float64 `parquet:"min_ms,snappy"`

	// MaxMs is the slowest run in milliseconds
	MaxMs float64 `parquet:"max_ms,snappy"`

	// StdDevMs is the population standard deviation in milliseconds
	StdDevMs float64 `parquet:"std_dev_ms,snappy"`

	// MedianMs is the 50th percentile in milliseconds
	MedianMs float64 `parquet:"median_ms,snappy"`

	// P95Ms is the 95th percentile in milliseconds
	P95Ms float64 `parquet:"p95_ms,snappy"`
}

// BuildMetricRows converts metric records to export rows, parsing the
// execution time once so downstream queries get a numeric column.
func BuildMetricRows(records []schema.MetricRecord) []MetricRow {
	rows := make([]MetricRow, 0, len(records))
	for _, r := range records {
		row := MetricRow{
			Algorithm:  r.Algorithm,
			RecordedAt: r.Timestamp,
			InputSize:  int32(r.InputSize),
			OutputSize: int32(r.OutputSize),
		}
		if v, ok := r.ParseExecutionTime(); ok {
			ms := v
			row.ExecutionMs = &ms
		}
		if r.Throughput != "" {
			t := r.Throughput
			row.Throughput = &t
		}
		if r.Efficiency != "" {
			e := r.Efficiency
			row.Efficiency = &e
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildStatRows converts an aggregate output to export rows in its
// first-seen algorithm order.
func BuildStatRows(output *schema.AggregateOutput, exportedAt time.Time) []StatRow {
	rows := make([]StatRow, 0, output.Len())
	for _, name := range output.Order {
		stat, ok := output.Get(name)
		if !ok {
			continue
		}
		rows = append(rows, StatRow{
			Algorithm:  name,
			ExportedAt: exportedAt,
			Count:      int32(stat.Count),
			TotalMs:    stat.TotalTime,
			AvgMs:      stat.AvgTime,
			MinMs:      stat.MinTime,
			MaxMs:      stat.MaxTime,
			StdDevMs:   stat.StdDev,
			MedianMs:   stat.Median,
			P95Ms:      stat.P95,
		})
	}
	return rows
}

// WriteMetricRowsParquet writes a slice of MetricRow structs to a Parquet file.
func WriteMetricRowsParquet(data []MetricRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the MetricRow struct tags
	writer := parquet.NewGenericWriter[MetricRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteStatRowsParquet writes a slice of StatRow structs to a Parquet file.
func WriteStatRowsParquet(data []StatRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the StatRow struct tags
	writer := parquet.NewGenericWriter[StatRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// WriteComparisonResults outputs a head-to-head comparison, dispatching based on the output format configured.
func WriteComparisonResults(result *schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeComparisonJSONResults(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeComparisonCSVResults(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeComparisonJSONResults handles opening the file and calling the JSON writer.
func writeComparisonJSONResults(result *schema.ComparisonResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// writeComparisonCSVResults handles opening the file and calling the CSV writer.
func writeComparisonCSVResults(result *schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"metric", result.Algorithm1, result.Algorithm2, "winner", "difference"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, m := range comparisonRows(result) {
				rec := []string{
					m.name,
					fmtFloat(m.comparison.Algorithm1),
					fmtFloat(m.comparison.Algorithm2),
					m.comparison.Winner,
					fmtFloat(m.comparison.Difference),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// comparisonRow pairs a metric name with its sub-comparison for row iteration.
type comparisonRow struct {
	name       string
	comparison schema.MetricComparison
}

// comparisonRows returns the fixed metric rows in display order.
func comparisonRows(result *schema.ComparisonResult) []comparisonRow {
	return []comparisonRow{
		{"avg_time", result.Metrics.AvgTime},
		{"consistency", result.Metrics.Consistency},
		{"usage", result.Metrics.Usage},
	}
}

// writeComparisonTable writes the metrics in a custom comparison format.
func writeComparisonTable(result *schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	// --- 1. Define Headers ---
	headers := []string{"Metric", result.Algorithm1, result.Algorithm2, "Winner", "Difference"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	var green func(...any) string
	if cfg.UseColors {
		green = color.New(color.FgGreen).SprintFunc()
	} else {
		green = fmt.Sprint
	}
	var data [][]string
	for _, m := range comparisonRows(result) {
		row := []string{
			m.name,
			fmtFloat(m.comparison.Algorithm1),
			fmtFloat(m.comparison.Algorithm2),
			green(m.comparison.Winner),
			fmtFloat(m.comparison.Difference),
		}
		data = append(data, row)
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Overall winner: %s\n", green(result.Winner)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "%s\n", result.Analysis); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

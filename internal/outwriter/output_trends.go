package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// WriteTrendResults outputs trend analysis results, dispatching based on the output format configured.
func WriteTrendResults(trends []schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeTrendJSONResults(trends, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeTrendCSVResults(trends, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendTable(trends, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeTrendJSONResults handles opening the file and calling the JSON writer.
func writeTrendJSONResults(trends []schema.TrendResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, trends)
	}, "Wrote JSON")
}

// writeTrendCSVResults handles opening the file and calling the CSV writer.
func writeTrendCSVResults(trends []schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"period", "trend", "change_percent", "slope", "buckets", "first_bucket", "last_bucket"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			return writeCSVResultsForTrends(csvWriter, trends, fmtFloat)
		})
	}, "Wrote CSV")
}

// writeTrendTable prints one summary row per period plus a per-bucket breakdown.
func writeTrendTable(trends []schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Period", "Trend", "Change %", "Slope", "Buckets"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for _, t := range trends {
		row := []string{
			string(t.Period),
			contract.ColorTrend(t.Trend, cfg.UseColors),
			fmtFloat(t.Change),
			fmtFloat(t.Slope),
			fmt.Sprintf("%d", len(t.Data)),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Per-bucket breakdown under each period
	for _, t := range trends {
		if _, err := fmt.Fprintf(writer, "\n%s buckets:\n", t.Period); err != nil {
			return err
		}
		for _, b := range t.Data {
			if _, err := fmt.Fprintf(writer, "  %-14s count=%d avg=%s ms\n", b.Date, b.Count, fmtFloat(b.AvgTime)); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(writer, "\nAnalysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForTrends writes one row per period with bucket endpoints.
func writeCSVResultsForTrends(w *csv.Writer, trends []schema.TrendResult, fmtFloat func(float64) string) error {
	for _, t := range trends {
		first, last := "", ""
		if len(t.Data) > 0 {
			first = t.Data[0].Date
			last = t.Data[len(t.Data)-1].Date
		}
		rec := []string{
			string(t.Period),
			string(t.Trend),
			fmtFloat(t.Change),
			fmtFloat(t.Slope),
			fmt.Sprintf("%d", len(t.Data)),
			first,
			last,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

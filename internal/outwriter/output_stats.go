package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// WriteStatsResults outputs per-algorithm stats, dispatching based on the output format configured.
func WriteStatsResults(output *schema.AggregateOutput, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeStatsJSONResults(output, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeStatsCSVResults(output, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatsTable(output, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeStatsJSONResults handles opening the file and calling the JSON writer.
func writeStatsJSONResults(output *schema.AggregateOutput, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForStats(w, output)
	}, "Wrote JSON")
}

// writeStatsCSVResults handles opening the file and calling the CSV writer.
func writeStatsCSVResults(output *schema.AggregateOutput, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForStats(csvWriter, output, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// writeStatsTable generates and writes the human-readable table.
func writeStatsTable(output *schema.AggregateOutput, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Algorithm", "Count", "Avg (ms)", "Min (ms)", "Max (ms)", "StdDev", "Median", "P95", "Consistency"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, name := range output.Order {
		stat, ok := output.Get(name)
		if !ok {
			continue
		}
		label := contract.GetPlainConsistencyLabel(stat.CV())
		if cfg.UseColors {
			label = contract.GetColorConsistencyLabel(stat.CV())
		}
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateName(name, getMaxTableNameWidth(cfg)),
			fmt.Sprintf(intFmt, stat.Count),
			fmtFloat(stat.AvgTime),
			fmtFloat(stat.MinTime),
			fmtFloat(stat.MaxTime),
			fmtFloat(stat.StdDev),
			fmtFloat(stat.Median),
			fmtFloat(stat.P95),
			label,
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
	if _, err := fmt.Fprintf(writer, "Showing %d algorithms (total operations: %d)\n", output.Len(), output.TotalOperations()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForStats writes the aggregate stats in CSV format.
func writeCSVResultsForStats(w *csv.Writer, output *schema.AggregateOutput, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"rank",
		"algorithm",
		"count",
		"total_time",
		"avg_time",
		"min_time",
		"max_time",
		"std_dev",
		"median",
		"p25",
		"p75",
		"p95",
		"consistency",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, name := range output.Order {
		stat, ok := output.Get(name)
		if !ok {
			continue
		}
		rec := []string{
			strconv.Itoa(i + 1),
			name,
			fmt.Sprintf(intFmt, stat.Count),
			fmtFloat(stat.TotalTime),
			fmtFloat(stat.AvgTime),
			fmtFloat(stat.MinTime),
			fmtFloat(stat.MaxTime),
			fmtFloat(stat.StdDev),
			fmtFloat(stat.Median),
			fmtFloat(stat.P25),
			fmtFloat(stat.P75),
			fmtFloat(stat.P95),
			contract.GetPlainConsistencyLabel(stat.CV()),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForStats writes the aggregate stats in JSON format.
func writeJSONResultsForStats(w io.Writer, output *schema.AggregateOutput) error {
	// 1. Prepare the data structure for JSON with rank and consistency added
	type JSONStatResult struct {
		Rank        int    `json:"rank"`
		Algorithm   string `json:"algorithm"`
		Consistency string `json:"consistency"`
		schema.AggregatedStat
	}

	results := make([]JSONStatResult, 0, output.Len())
	for i, name := range output.Order {
		stat, ok := output.Get(name)
		if !ok {
			continue
		}
		results = append(results, JSONStatResult{
			Rank:           i + 1,
			Algorithm:      name,
			Consistency:    contract.GetPlainConsistencyLabel(stat.CV()),
			AggregatedStat: stat,
		})
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, results)
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// WritePredictionResults outputs per-algorithm predictions, dispatching based on the output format configured.
// The order slice fixes row order; algorithms absent from it are appended sorted by name.
func WritePredictionResults(predictions map[string]schema.Prediction, order []string, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	names := predictionOrder(predictions, order)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writePredictionJSONResults(predictions, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writePredictionCSVResults(predictions, names, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePredictionTable(predictions, names, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// predictionOrder resolves the display order for a prediction map.
func predictionOrder(predictions map[string]schema.Prediction, order []string) []string {
	names := make([]string, 0, len(predictions))
	seen := make(map[string]bool, len(predictions))
	for _, name := range order {
		if _, ok := predictions[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range predictions {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// writePredictionJSONResults handles opening the file and calling the JSON writer.
func writePredictionJSONResults(predictions map[string]schema.Prediction, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, predictions)
	}, "Wrote JSON")
}

// writePredictionCSVResults handles opening the file and calling the CSV writer.
func writePredictionCSVResults(predictions map[string]schema.Prediction, names []string, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"rank", "algorithm", "next_execution_time", "confidence", "based_on"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, name := range names {
				p := predictions[name]
				rec := []string{
					strconv.Itoa(i + 1),
					name,
					fmtFloat(p.NextExecutionTime),
					p.Confidence,
					fmt.Sprintf(intFmt, p.BasedOn),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writePredictionTable generates and writes the human-readable table.
func writePredictionTable(predictions map[string]schema.Prediction, names []string, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Algorithm", "Next (ms)", "Confidence %", "Based On"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i, name := range names {
		p := predictions[name]
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(name, getMaxTableNameWidth(cfg)),
			fmtFloat(p.NextExecutionTime),
			p.Confidence,
			fmt.Sprintf(intFmt, p.BasedOn),
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
	if _, err := fmt.Fprintf(writer, "Showing %d predictions\n", len(names)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

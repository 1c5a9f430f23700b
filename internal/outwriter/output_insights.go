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

// WriteInsightResults outputs heuristic insights, dispatching based on the output format configured.
func WriteInsightResults(insights []schema.Insight, cfg *contract.Config, duration time.Duration) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeInsightJSONResults(insights, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeInsightCSVResults(insights, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeInsightTable(insights, cfg, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeInsightJSONResults handles opening the file and calling the JSON writer.
func writeInsightJSONResults(insights []schema.Insight, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, insights)
	}, "Wrote JSON")
}

// writeInsightCSVResults handles opening the file and calling the CSV writer.
func writeInsightCSVResults(insights []schema.Insight, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"rank", "type", "title", "message"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, in := range insights {
				rec := []string{
					strconv.Itoa(i + 1),
					string(in.Type),
					in.Title,
					in.Message,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeInsightTable generates and writes the human-readable table.
func writeInsightTable(insights []schema.Insight, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Type", "Title", "Message"}
	table.Header(headers)

	// 2. Configure Alignment; messages read better left-aligned
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	// 3. Populate Rows
	var data [][]string
	for i, in := range insights {
		row := []string{
			strconv.Itoa(i + 1),
			contract.ColorInsightType(in.Type, cfg.UseColors),
			in.Title,
			in.Message,
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
	if _, err := fmt.Fprintf(writer, "Showing %d insights\n", len(insights)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

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

// WriteReportResults outputs a composed report, dispatching based on the output format configured.
// CSV mode flattens only the per-algorithm section; the full structure is JSON territory.
func WriteReportResults(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSVResults(report, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable layout
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(report, cfg, fmtFloat, duration, w)
		}, "Wrote report")
	}
	return nil
}

// writeReportJSONResults handles opening the file and calling the JSON writer.
func writeReportJSONResults(report *schema.Report, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeReportCSVResults handles opening the file and calling the CSV writer.
func writeReportCSVResults(report *schema.Report, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"algorithm", "count", "avg_time", "min_time", "max_time", "std_dev", "median", "p95"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, name := range reportAlgorithmOrder(report) {
				stat := report.Algorithms[name]
				rec := []string{
					name,
					fmt.Sprintf(intFmt, stat.Count),
					fmtFloat(stat.AvgTime),
					fmtFloat(stat.MinTime),
					fmtFloat(stat.MaxTime),
					fmtFloat(stat.StdDev),
					fmtFloat(stat.Median),
					fmtFloat(stat.P95),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// reportAlgorithmOrder returns algorithm names sorted by average time ascending.
// The report map has no intrinsic order, and fastest-first reads best.
func reportAlgorithmOrder(report *schema.Report) []string {
	names := make([]string, 0, len(report.Algorithms))
	for name := range report.Algorithms {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := report.Algorithms[names[i]], report.Algorithms[names[j]]
		if a.AvgTime != b.AvgTime {
			return a.AvgTime < b.AvgTime
		}
		return names[i] < names[j]
	})
	return names
}

// writeReportText writes the full report as sections of tables and lists.
func writeReportText(report *schema.Report, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	// Summary header
	if _, err := fmt.Fprintf(writer, "Cipher Metrics Report (%s)\n", report.Period); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Generated: %s\n", report.GeneratedAt.Format(time.RFC3339)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Operations: %d across %d algorithms", report.Summary.TotalOperations, report.Summary.Algorithms); err != nil {
		return err
	}
	if report.Summary.DateRange.Start != "" {
		if _, err := fmt.Fprintf(writer, " (%s .. %s)", report.Summary.DateRange.End, report.Summary.DateRange.Start); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(writer); err != nil {
		return err
	}

	// Per-algorithm table
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Algorithm", "Count", "Avg (ms)", "StdDev", "Consistency"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for i, name := range reportAlgorithmOrder(report) {
		stat := report.Algorithms[name]
		label := contract.GetPlainConsistencyLabel(stat.CV())
		if cfg.UseColors {
			label = contract.GetColorConsistencyLabel(stat.CV())
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(name, getMaxTableNameWidth(cfg)),
			strconv.Itoa(stat.Count),
			fmtFloat(stat.AvgTime),
			fmtFloat(stat.StdDev),
			label,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Trends
	if len(report.Trends) > 0 {
		if _, err := fmt.Fprintln(writer, "\nTrends:"); err != nil {
			return err
		}
		for _, t := range report.Trends {
			if _, err := fmt.Fprintf(writer, "  %-6s %s (change %s%%, %d buckets)\n",
				t.Period, contract.ColorTrend(t.Trend, cfg.UseColors), fmtFloat(t.Change), len(t.Data)); err != nil {
				return err
			}
		}
	}

	// Insights
	if len(report.Insights) > 0 {
		if _, err := fmt.Fprintln(writer, "\nInsights:"); err != nil {
			return err
		}
		for _, in := range report.Insights {
			if _, err := fmt.Fprintf(writer, "  [%s] %s: %s\n",
				contract.ColorInsightType(in.Type, cfg.UseColors), in.Title, in.Message); err != nil {
				return err
			}
		}
	}

	// Predictions
	if len(report.Predictions) > 0 {
		if _, err := fmt.Fprintln(writer, "\nPredictions:"); err != nil {
			return err
		}
		for _, name := range predictionOrder(report.Predictions, reportAlgorithmOrder(report)) {
			p := report.Predictions[name]
			if _, err := fmt.Fprintf(writer, "  %-20s next=%s ms confidence=%s%% (based on %d)\n",
				name, fmtFloat(p.NextExecutionTime), p.Confidence, p.BasedOn); err != nil {
				return err
			}
		}
	}

	// Recommendations
	if len(report.Recommendations) > 0 {
		if _, err := fmt.Fprintln(writer, "\nRecommendations:"); err != nil {
			return err
		}
		for _, r := range report.Recommendations {
			if _, err := fmt.Fprintf(writer, "  - %s\n", r); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(writer, "\nAnalysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

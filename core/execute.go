package core

import (
	"context"
	"fmt"
	"time"

	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/internal/outwriter"
	"github.com/masterputra169/cryptography-website-sub002/internal/parquet"
	"github.com/masterputra169/cryptography-website-sub002/internal/recstore"
	"github.com/masterputra169/cryptography-website-sub002/schema"
)

// ExecutorFunc defines the function signature for executing different analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// loadRecords pulls the record set from the input file when one is configured,
// otherwise from the record store. Records arrive newest-first either way.
func loadRecords(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.MetricRecord, error) {
	if cfg.InputFile != "" {
		return recstore.LoadRecordsFile(cfg.InputFile)
	}
	return mgr.GetRecordStore().LoadRecords(ctx)
}

// buildAnalyzer creates an engine configured from the CLI config.
func buildAnalyzer(cfg *contract.Config, records []schema.MetricRecord) *Analyzer {
	opts := DefaultOptions()
	opts.EnableTrends = cfg.EnableTrends
	opts.EnableInsights = cfg.EnableInsights
	opts.EnablePredictions = cfg.EnablePredictions
	opts.MinDataPoints = cfg.MinDataPoints
	opts.RefreshInterval = cfg.WatchInterval
	return NewAnalyzer(records, opts)
}

// trackRun registers an analysis run in the store and returns a finisher.
// Tracking failures are warnings; analysis never aborts because of them.
func trackRun(cfg *contract.Config, mgr contract.StoreManager) func(records int) {
	store := mgr.GetRecordStore()
	params := map[string]any{
		"period":     string(cfg.Period),
		"min-points": cfg.MinDataPoints,
		"limit":      cfg.ResultLimit,
		"output":     string(cfg.Output),
	}
	id, err := store.BeginRun(time.Now(), params)
	if err != nil {
		contract.LogWarn("Could not record analysis run", err)
		return func(int) {}
	}
	return func(records int) {
		if err := store.EndRun(id, time.Now(), records); err != nil {
			contract.LogWarn("Could not finish analysis run", err)
		}
	}
}

// ExecuteStats aggregates records per algorithm and prints the stats.
// It serves as the main entry point for the 'stats' command.
func ExecuteStats(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	finish := trackRun(cfg, mgr)
	analyzer := buildAnalyzer(cfg, records)
	output := analyzer.AggregateByAlgorithm()
	if cfg.ResultLimit > 0 && cfg.ResultLimit < len(output.Order) {
		output = limitOutput(output, cfg.ResultLimit)
	}
	finish(len(records))
	duration := time.Since(start)
	return outwriter.WriteStatsResults(output, cfg, duration)
}

// limitOutput trims an aggregate to its first n algorithms in first-seen order.
func limitOutput(output *schema.AggregateOutput, n int) *schema.AggregateOutput {
	trimmed := &schema.AggregateOutput{
		Stats: make(map[string]schema.AggregatedStat, n),
		Order: output.Order[:n],
	}
	for _, name := range trimmed.Order {
		trimmed.Stats[name] = output.Stats[name]
	}
	return trimmed
}

// ExecuteTrends fits time-bucket trends and prints them.
// It serves as the main entry point for the 'trends' command.
func ExecuteTrends(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	finish := trackRun(cfg, mgr)
	analyzer := buildAnalyzer(cfg, records)
	trends := analyzer.AnalyzeTrends()
	finish(len(records))
	duration := time.Since(start)
	return outwriter.WriteTrendResults(trends, cfg, duration)
}

// ExecuteInsights derives heuristic insights and prints them.
// It serves as the main entry point for the 'insights' command.
func ExecuteInsights(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	finish := trackRun(cfg, mgr)
	analyzer := buildAnalyzer(cfg, records)
	insights := analyzer.GenerateInsights()
	finish(len(records))
	duration := time.Since(start)
	return outwriter.WriteInsightResults(insights, cfg, duration)
}

// ExecutePredict forecasts per-algorithm execution times and prints them.
// It serves as the main entry point for the 'predict' command.
func ExecutePredict(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	finish := trackRun(cfg, mgr)
	analyzer := buildAnalyzer(cfg, records)
	predictions := analyzer.GeneratePredictions()
	order := analyzer.AggregateByAlgorithm().Order
	finish(len(records))
	duration := time.Since(start)
	return outwriter.WritePredictionResults(predictions, order, cfg, duration)
}

// ExecuteCompare compares two algorithms head-to-head and prints the result.
// It serves as the main entry point for the 'compare' command.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, name1, name2 string) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	finish := trackRun(cfg, mgr)
	analyzer := buildAnalyzer(cfg, records)
	result, err := analyzer.CompareAlgorithms(name1, name2)
	if err != nil {
		return err
	}
	finish(len(records))
	duration := time.Since(start)
	return outwriter.WriteComparisonResults(result, cfg, duration)
}

// ExecuteReport composes the full analytics report and prints it.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	records, err := loadRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	finish := trackRun(cfg, mgr)
	analyzer := buildAnalyzer(cfg, records)
	report := analyzer.GenerateReport(cfg.Period)
	if report == nil {
		return fmt.Errorf("report generation produced no result")
	}
	finish(len(records))
	duration := time.Since(start)
	return outwriter.WriteReportResults(report, cfg, duration)
}

// ExecuteWatch refreshes the engine on an interval and prints a report after
// each pass. It blocks until the context is canceled.
func ExecuteWatch(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	records, err := loadRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	analyzer := buildAnalyzer(cfg, records)

	printPass := func() error {
		passStart := time.Now()
		finish := trackRun(cfg, mgr)
		analyzer.Refresh()
		report := analyzer.GenerateReport(cfg.Period)
		if report == nil {
			return fmt.Errorf("report generation produced no result")
		}
		finish(len(records))
		return outwriter.WriteReportResults(report, cfg, time.Since(passStart))
	}

	if err := printPass(); err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.WatchInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// Re-read the store each pass so new records show up; a file
			// input is re-read too since watch mode targets live data.
			fresh, err := loadRecords(ctx, cfg, mgr)
			if err != nil {
				contract.LogWarn("Could not reload records", err)
			} else {
				records = fresh
				analyzer.SetRecords(fresh)
			}
			if err := printPass(); err != nil {
				return err
			}
		}
	}
}

// ExecuteRecordsExport writes the stored records and their per-algorithm
// stats to a pair of Parquet files derived from the output path.
func ExecuteRecordsExport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for export")
	}
	records, err := loadRecords(ctx, cfg, mgr)
	if err != nil {
		return err
	}

	recordsPath := cfg.OutputFile + ".records.parquet"
	statsPath := cfg.OutputFile + ".stats.parquet"

	if err := parquet.WriteMetricRowsParquet(parquet.BuildMetricRows(records), recordsPath); err != nil {
		return fmt.Errorf("failed to export records: %w", err)
	}

	output := AggregateByAlgorithm(records)
	if err := parquet.WriteStatRowsParquet(parquet.BuildStatRows(output, time.Now()), statsPath); err != nil {
		return fmt.Errorf("failed to export stats: %w", err)
	}

	fmt.Printf("Exported %d records to %s\n", len(records), recordsPath)
	fmt.Printf("Exported %d algorithm stats to %s\n", output.Len(), statsPath)
	return nil
}

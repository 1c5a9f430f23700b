package outwriter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masterputra169/cryptography-website-sub002/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleReport returns a composed report covering every section.
func sampleReport() *schema.Report {
	return &schema.Report{
		GeneratedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Period:      schema.DayPeriod,
		Summary: schema.ReportSummary{
			TotalOperations: 5,
			Algorithms:      2,
			Period:          schema.DayPeriod,
			DateRange: schema.DateRange{
				Start: "2026-01-02T10:00:00Z",
				End:   "2026-01-01T10:00:00Z",
			},
		},
		Algorithms: map[string]schema.AggregatedStat{
			"caesar": {Count: 3, AvgTime: 20, StdDev: 2},
			"rsa":    {Count: 2, AvgTime: 85, StdDev: 5},
		},
		Trends: []schema.TrendResult{
			{Period: schema.DayPeriod, Trend: schema.TrendStable, Change: 1.0, Data: []schema.TimeBucket{{Date: "2026-01-01"}, {Date: "2026-01-02"}}},
		},
		Insights: []schema.Insight{
			{Type: schema.SuccessInsight, Title: "Best Performance", Message: "caesar is the fastest algorithm with an average of 20.00ms"},
		},
		Predictions: map[string]schema.Prediction{
			"caesar": {NextExecutionTime: 19.5, Confidence: "90.0", BasedOn: 3},
		},
		Recommendations: []string{
			"Use caesar for time-sensitive operations",
		},
	}
}

func TestReportAlgorithmOrder(t *testing.T) {
	order := reportAlgorithmOrder(sampleReport())
	assert.Equal(t, []string{"caesar", "rsa"}, order)

	// Equal averages fall back to name order.
	report := &schema.Report{Algorithms: map[string]schema.AggregatedStat{
		"zig": {AvgTime: 10},
		"ace": {AvgTime: 10},
	}}
	assert.Equal(t, []string{"ace", "zig"}, reportAlgorithmOrder(report))
}

func TestWriteReportText(t *testing.T) {
	cfg := testConfig()
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeReportText(sampleReport(), cfg, fmtFloat, 20*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Cipher Metrics Report (day)")
	assert.Contains(t, output, "Generated: 2026-08-31T12:00:00Z")
	assert.Contains(t, output, "Operations: 5 across 2 algorithms")
	assert.Contains(t, output, "(2026-01-01T10:00:00Z .. 2026-01-02T10:00:00Z)")
	assert.Contains(t, output, "caesar")
	assert.Contains(t, output, "Trends:")
	assert.Contains(t, output, "Insights:")
	assert.Contains(t, output, "[success] Best Performance")
	assert.Contains(t, output, "Recommendations:")
	assert.Contains(t, output, "Use caesar for time-sensitive operations")
}

func TestWriteReportCSV(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.CSVOut
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	path := filepath.Join(t.TempDir(), "report.csv")
	cfg.OutputFile = path
	err := writeReportCSVResults(sampleReport(), cfg, fmtFloat, intFmt)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "algorithm", rows[0][0])
	// Fastest first
	assert.Equal(t, "caesar", rows[1][0])
	assert.Equal(t, "rsa", rows[2][0])
	assert.Equal(t, "20.00", rows[1][2])
}

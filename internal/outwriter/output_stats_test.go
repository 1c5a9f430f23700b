package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/masterputra169/cryptography-website-sub002/internal/contract"
	"github.com/masterputra169/cryptography-website-sub002/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleOutput returns a two-algorithm aggregate for writer tests.
func sampleOutput() *schema.AggregateOutput {
	return &schema.AggregateOutput{
		Stats: map[string]schema.AggregatedStat{
			"caesar": {
				Count: 3, TotalTime: 60, AvgTime: 20, MinTime: 10, MaxTime: 30,
				StdDev: 8.16, Median: 20, P25: 15, P75: 25, P95: 29,
			},
			"rsa": {
				Count: 2, TotalTime: 170, AvgTime: 85, MinTime: 80, MaxTime: 90,
				StdDev: 5, Median: 85, P25: 82.5, P75: 87.5, P95: 89.5,
			},
		},
		Order: []string{"caesar", "rsa"},
	}
}

// testConfig returns a plain-text config for writer tests.
func testConfig() *contract.Config {
	return &contract.Config{
		Output:       schema.TextOut,
		Precision:    2,
		UseColors:    false,
		Width:        120,
		StoreBackend: schema.SQLiteBackend,
	}
}

func TestWriteStatsTable(t *testing.T) {
	cfg := testConfig()
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeStatsTable(sampleOutput(), cfg, fmtFloat, intFmt, 50*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "caesar")
	assert.Contains(t, output, "rsa")
	assert.Contains(t, output, "20.00")
	assert.Contains(t, output, "Normal")
	assert.Contains(t, output, "Steady")
	assert.Contains(t, output, "Showing 2 algorithms (total operations: 5)")
	assert.Contains(t, output, "Store backend: sqlite")
}

func TestWriteStatsCSV(t *testing.T) {
	cfg := testConfig()
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	err := writeCSVResultsForStats(w, sampleOutput(), fmtFloat, intFmt)
	w.Flush()
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "rank", rows[0][0])
	assert.Equal(t, "consistency", rows[0][12])
	assert.Equal(t, []string{"1", "caesar", "3", "60.00", "20.00", "10.00", "30.00", "8.16", "20.00", "15.00", "25.00", "29.00", "Normal"}, rows[1])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "rsa", rows[2][1])
}

func TestWriteStatsJSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONResultsForStats(&buf, sampleOutput())
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "caesar", results[0]["algorithm"])
	assert.Equal(t, float64(1), results[0]["rank"])
	assert.Equal(t, "Normal", results[0]["consistency"])
	assert.Equal(t, float64(20), results[0]["avgTime"])
	assert.Equal(t, "rsa", results[1]["algorithm"])
}

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{name: "narrow clamps to minimum", width: 60, expected: 10},
		{name: "mid range uses remainder", width: 90, expected: 30},
		{name: "wide clamps to maximum", width: 200, expected: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Width = tt.width
			assert.Equal(t, tt.expected, getMaxTableNameWidth(cfg))
		})
	}
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(1)
	assert.Equal(t, "12.3", fmtFloat(12.345))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(2)
	assert.Equal(t, "12.35", fmtFloat(12.345))
}

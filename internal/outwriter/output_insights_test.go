package outwriter

import (
	"bytes"
	"testing"
	"time"

	"github.com/masterputra169/cryptography-website-sub002/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleInsights returns a mixed-severity insight list.
func sampleInsights() []schema.Insight {
	return []schema.Insight{
		{
			Type:    schema.SuccessInsight,
			Title:   "Best Performance",
			Message: "caesar is the fastest algorithm with an average of 12.50ms",
		},
		{
			Type:    schema.WarningInsight,
			Title:   "High Variability",
			Message: "rsa shows inconsistent performance (CV 82.1%)",
		},
	}
}

func TestWriteInsightTable(t *testing.T) {
	cfg := testConfig()

	var buf bytes.Buffer
	err := writeInsightTable(sampleInsights(), cfg, 5*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Best Performance")
	assert.Contains(t, output, "High Variability")
	assert.Contains(t, output, "success")
	assert.Contains(t, output, "warning")
	assert.Contains(t, output, "caesar is the fastest algorithm")
	assert.Contains(t, output, "Showing 2 insights")
}

func TestWriteInsightTableEmpty(t *testing.T) {
	cfg := testConfig()

	var buf bytes.Buffer
	err := writeInsightTable(nil, cfg, time.Millisecond, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Showing 0 insights")
}

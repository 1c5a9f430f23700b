package contract

import (
	"testing"

	"github.com/masterputra169/cryptography-website-sub002/schema"
	"github.com/stretchr/testify/assert"
)

// TestGetPlainConsistencyLabel tests label assignment at the CV cutoffs.
func TestGetPlainConsistencyLabel(t *testing.T) {
	tests := []struct {
		name     string
		cv       float64
		expected string
	}{
		{name: "zero cv", cv: 0, expected: SteadyValue},
		{name: "at steady cutoff", cv: 20.0, expected: SteadyValue},
		{name: "just above steady cutoff", cv: 20.1, expected: NormalValue},
		{name: "at variability threshold", cv: 50.0, expected: NormalValue},
		{name: "just above variability threshold", cv: 50.1, expected: VolatileValue},
		{name: "at erratic cutoff", cv: 80.0, expected: ErraticValue},
		{name: "far above erratic cutoff", cv: 250.0, expected: ErraticValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainConsistencyLabel(tt.cv))
		})
	}
}

// TestGetColorConsistencyLabel tests that the colored label always carries
// the same text as the plain one.
func TestGetColorConsistencyLabel(t *testing.T) {
	for _, cv := range []float64{0, 30, 60, 100} {
		assert.Contains(t, GetColorConsistencyLabel(cv), GetPlainConsistencyLabel(cv))
	}
}

// TestColorInsightType tests the uncolored and colored paths.
func TestColorInsightType(t *testing.T) {
	assert.Equal(t, "warning", ColorInsightType(schema.WarningInsight, false))
	assert.Contains(t, ColorInsightType(schema.SuccessInsight, true), "success")
	assert.Contains(t, ColorInsightType(schema.DangerInsight, true), "danger")
}

// TestColorTrend tests the uncolored and colored paths.
func TestColorTrend(t *testing.T) {
	assert.Equal(t, "increasing", ColorTrend(schema.TrendIncreasing, false))
	assert.Contains(t, ColorTrend(schema.TrendDecreasing, true), "decreasing")
	assert.Contains(t, ColorTrend(schema.TrendStable, true), "stable")
}

// TestTruncateName tests the leading-ellipsis truncation.
func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "short name untouched", input: "caesar", maxLen: 10, expected: "caesar"},
		{name: "exact length untouched", input: "caesar", maxLen: 6, expected: "caesar"},
		{name: "long name keeps suffix", input: "vigenere-autokey", maxLen: 10, expected: "...autokey"},
		{name: "tiny max returns input", input: "caesar", maxLen: 3, expected: "caesar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.maxLen))
		})
	}
}

// TestSelectOutputFile tests stdout fallback and file creation.
func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	assert.NoError(t, err)
	assert.NotNil(t, f)

	path := t.TempDir() + "/out.txt"
	f, err = SelectOutputFile(path)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())
	assert.FileExists(t, path)
}

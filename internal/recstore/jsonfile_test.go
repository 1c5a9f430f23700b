package recstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempRecords writes raw JSON to a temp file and returns its path.
func writeTempRecords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRecordsFile_BareArray(t *testing.T) {
	path := writeTempRecords(t, `[
		{"algorithm": "caesar", "timestamp": "2026-01-02T10:00:00Z", "executionTime": "12.5", "inputSize": 256},
		{"algorithm": "vigenere", "timestamp": "2026-01-01T10:00:00Z", "executionTime": "30"}
	]`)

	records, err := LoadRecordsFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "caesar", records[0].Algorithm)
	assert.Equal(t, "12.5", records[0].ExecutionTime)
	assert.Equal(t, 256, records[0].InputSize)
	assert.Equal(t, "vigenere", records[1].Algorithm)
}

func TestLoadRecordsFile_Envelope(t *testing.T) {
	path := writeTempRecords(t, `{
		"metrics": [
			{"algorithm": "caesar", "executionTime": "5"}
		]
	}`)

	records, err := LoadRecordsFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "caesar", records[0].Algorithm)
}

func TestLoadRecordsFile_EmptyArray(t *testing.T) {
	path := writeTempRecords(t, `[]`)

	records, err := LoadRecordsFile(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadRecordsFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid json", content: `{not json`},
		{name: "object without metrics key", content: `{"records": []}`},
		{name: "metrics is not an array", content: `{"metrics": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRecordsFile(writeTempRecords(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadRecordsFile_Missing(t *testing.T) {
	_, err := LoadRecordsFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

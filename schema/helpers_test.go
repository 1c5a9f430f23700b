package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestParseTimestamp tests the accepted timestamp layouts.
func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		ok       bool
		expected time.Time
	}{
		{
			name:     "rfc3339 with millis",
			input:    "2026-01-15T14:30:45.123Z",
			ok:       true,
			expected: time.Date(2026, 1, 15, 14, 30, 45, 123000000, time.UTC),
		},
		{
			name:     "rfc3339",
			input:    "2026-01-15T14:30:45Z",
			ok:       true,
			expected: time.Date(2026, 1, 15, 14, 30, 45, 0, time.UTC),
		},
		{
			name:     "no zone suffix",
			input:    "2026-01-15T14:30:45",
			ok:       true,
			expected: time.Date(2026, 1, 15, 14, 30, 45, 0, time.UTC),
		},
		{
			name:     "space separator",
			input:    "2026-01-15 14:30:45",
			ok:       true,
			expected: time.Date(2026, 1, 15, 14, 30, 45, 0, time.UTC),
		},
		{
			name:  "garbage",
			input: "yesterday",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, ok := ParseTimestamp(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(ts))
			}
		})
	}
}

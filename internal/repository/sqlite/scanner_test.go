package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []string
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}
	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}
	for i, d := range dest {
		*(d.(*string)) = ts.data[i]
	}
	return nil
}

func TestScanEntry(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Entry
		expectError bool
	}{
		{
			name:    "valid entry",
			scanner: &TestScanner{data: []string{"tasks", "[]", "2026-01-02T03:04:05Z"}},
			expected: &Entry{
				Key:       "tasks",
				Value:     "[]",
				UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			},
		},
		{
			name:        "scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: true,
		},
		{
			name:        "bad timestamp",
			scanner:     &TestScanner{data: []string{"tasks", "[]", "yesterday"}},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanEntry(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"utc time", time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC), "2024-01-15T10:30:45Z"},
		{"offset normalized to utc", time.Date(2024, 6, 15, 14, 30, 0, 0, time.FixedZone("EST", -5*3600)), "2024-06-15T19:30:00Z"},
		{"nanoseconds dropped", time.Date(2024, 3, 10, 9, 15, 30, 123456789, time.UTC), "2024-03-10T09:15:30Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatTime(tt.input))
		})
	}
}

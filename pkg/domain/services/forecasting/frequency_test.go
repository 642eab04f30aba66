package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextTimestamps(t *testing.T) {
	testCases := []struct {
		name     string
		input    []time.Time
		periods  int
		expected []time.Time
	}{
		{
			name:     "single observation is daily",
			input:    []time.Time{date(2024, 1, 31)},
			periods:  2,
			expected: []time.Time{date(2024, 2, 1), date(2024, 2, 2)},
		},
		{
			name:     "daily",
			input:    []time.Time{date(2024, 2, 27), date(2024, 2, 28)},
			periods:  2,
			expected: []time.Time{date(2024, 2, 29), date(2024, 3, 1)},
		},
		{
			name:     "weekly",
			input:    []time.Time{date(2024, 1, 1), date(2024, 1, 8), date(2024, 1, 15)},
			periods:  1,
			expected: []time.Time{date(2024, 1, 22)},
		},
		{
			name:     "month start",
			input:    []time.Time{date(2024, 1, 1), date(2024, 2, 1), date(2024, 3, 1)},
			periods:  2,
			expected: []time.Time{date(2024, 4, 1), date(2024, 5, 1)},
		},
		{
			name:     "month end",
			input:    []time.Time{date(2023, 11, 30), date(2023, 12, 31), date(2024, 1, 31)},
			periods:  3,
			expected: []time.Time{date(2024, 2, 29), date(2024, 3, 31), date(2024, 4, 30)},
		},
		{
			name:     "no periods",
			input:    []time.Time{date(2024, 1, 1)},
			periods:  0,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NextTimestamps(tc.input, tc.periods))
		})
	}
}

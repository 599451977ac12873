package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected time.Time
		valid    bool
	}{
		{name: "iso_date", input: "2025-06-01", expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), valid: true},
		{name: "rfc3339", input: "2025-07-01T10:30:00Z", expected: time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC), valid: true},
		{name: "datetime_local", input: "2025-07-01T10:30", expected: time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC), valid: true},
		{name: "dotted", input: "01.07.2025", expected: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), valid: true},
		{name: "padded", input: " 2025-06-01 ", expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), valid: true},
		{name: "unpadded", input: "2025-6-1", expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), valid: true},
		{name: "year_month", input: "2025-06", expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), valid: true},
		{name: "year", input: "2025", expected: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), valid: true},
		{name: "long_month_no_comma", input: "June 1 2025", expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), valid: true},
		{name: "short_month_no_comma", input: "Jun 1 2025", expected: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), valid: true},
		{name: "not_a_date", input: "not-a-date"},
		{name: "empty", input: ""},
		{name: "month_out_of_range", input: "2025-13-01"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseDate(tc.input)
			if !tc.valid {
				assert.ErrorIs(t, err, ErrInvalidDate)
				assert.False(t, IsValidDate(tc.input))
				return
			}
			assert.NoError(t, err)
			assert.True(t, parsed.Equal(tc.expected))
			assert.True(t, IsValidDate(tc.input))
		})
	}
}

package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Value(t *testing.T) {
	d := NewDate(time.Date(2024, time.March, 9, 17, 45, 0, 0, time.FixedZone("CET", 3600)))
	value, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", value)
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{"time", time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), "2024-03-09"},
		{"text", "2024-03-09", "2024-03-09"},
		{"bytes", []byte("2024-03-09"), "2024-03-09"},
		{"timestamp text", "2024-03-09 00:00:00+00:00", "2024-03-09"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_ScanNil(t *testing.T) {
	d := NewDate(time.Now())
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDate_ScanInvalid(t *testing.T) {
	var d Date
	assert.Error(t, d.Scan("not a date"))
	assert.Error(t, d.Scan(42))
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := ParseDate("2025-06-15")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-15", d.String())
	})

	t.Run("rejects non-ISO ordering", func(t *testing.T) {
		_, err := ParseDate("15-06-2025")
		assert.Error(t, err)
	})

	t.Run("rejects impossible day", func(t *testing.T) {
		_, err := ParseDate("2025-02-30")
		assert.Error(t, err)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
	})
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{name: "thirty-one days", month: "2025-03", wantStart: "2025-03-01", wantEnd: "2025-03-31"},
		{name: "thirty days", month: "2025-06", wantStart: "2025-06-01", wantEnd: "2025-06-30"},
		{name: "february", month: "2025-02", wantStart: "2025-02-01", wantEnd: "2025-02-28"},
		{name: "leap february", month: "2024-02", wantStart: "2024-02-01", wantEnd: "2024-02-29"},
		{name: "december wraps year", month: "2025-12", wantStart: "2025-12-01", wantEnd: "2025-12-31"},
		{name: "garbage", month: "June 2025", wantErr: true},
		{name: "full date rejected", month: "2025-06-15", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := MonthRange(tt.month)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start.String())
			assert.Equal(t, tt.wantEnd, end.String())
		})
	}
}

func TestSecondsFromMillis(t *testing.T) {
	assert.Equal(t, int64(0), SecondsFromMillis(0))
	assert.Equal(t, int64(1), SecondsFromMillis(1000))
	assert.Equal(t, int64(1), SecondsFromMillis(500))
	assert.Equal(t, int64(0), SecondsFromMillis(499))
	// 1h30m in milliseconds stores as 5400 seconds, not 1800.
	assert.Equal(t, int64(5400), SecondsFromMillis(5_400_000))
}

func TestHoursFromSeconds(t *testing.T) {
	assert.Equal(t, 0.0, HoursFromSeconds(0))
	assert.Equal(t, 1.5, HoursFromSeconds(5400))
	assert.Equal(t, 0.5, HoursFromSeconds(1800))
	// 10000s = 2.7777...h, reported with two decimals.
	assert.Equal(t, 2.78, HoursFromSeconds(10000))
}

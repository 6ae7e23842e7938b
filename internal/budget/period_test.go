package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dayKey, s)
	require.NoError(t, err)
	return d
}

func TestMonthBoundary_CalendarMonth(t *testing.T) {
	start, end := MonthBoundary(day(t, "2025-02-15"), 1)

	assert.Equal(t, "2025-02-01", start.Format(dayKey))
	assert.Equal(t, "2025-02-28", end.Format(dayKey))
}

func TestMonthBoundary_CustomStart(t *testing.T) {
	tests := []struct {
		name          string
		ref           string
		monthStartDay int
		wantStart     string
		wantEnd       string
	}{
		{"on or after start day", "2025-02-20", 15, "2025-02-15", "2025-03-14"},
		{"before start day", "2025-02-10", 15, "2025-01-15", "2025-02-14"},
		{"reference equals start day", "2025-02-15", 15, "2025-02-15", "2025-03-14"},
		{"year boundary", "2025-01-05", 15, "2024-12-15", "2025-01-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBoundary(day(t, tt.ref), tt.monthStartDay)
			assert.Equal(t, tt.wantStart, start.Format(dayKey))
			assert.Equal(t, tt.wantEnd, end.Format(dayKey))
		})
	}
}

// Start days that don't exist in the month roll forward, matching the
// reference behavior of out-of-range date construction.
func TestMonthBoundary_StartDayOverflowsMonth(t *testing.T) {
	// Day 31 anchored to February rolls to March 2 in a non-leap year.
	start, end := MonthBoundary(day(t, "2025-02-10"), 31)
	assert.Equal(t, "2025-01-31", start.Format(dayKey))
	assert.Equal(t, "2025-03-02", end.Format(dayKey))

	// Day 31 anchored to April (30 days) rolls to May 1.
	start, end = MonthBoundary(day(t, "2025-04-15"), 31)
	assert.Equal(t, "2025-03-31", start.Format(dayKey))
	assert.Equal(t, "2025-04-30", end.Format(dayKey))
}

func TestElapsedDays(t *testing.T) {
	tests := []struct {
		name          string
		today         string
		monthStartDay int
		wantElapsed   int
		wantTotal     int
	}{
		{"calendar month", "2025-02-15", 1, 15, 28},
		{"custom start day", "2025-02-20", 15, 6, 28},
		{"first day of period", "2025-02-15", 15, 1, 28},
		{"last day of period", "2025-03-14", 15, 28, 28},
		{"31 day period", "2025-07-20", 10, 11, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elapsed, total := ElapsedDays(day(t, tt.today), tt.monthStartDay)
			assert.Equal(t, tt.wantElapsed, elapsed)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

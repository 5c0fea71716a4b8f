package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDayCrossesUTCBoundary(t *testing.T) {
	// 2026-03-18 01:00 in Vietnam is still 2026-03-17 in UTC
	utc := time.Date(2026, 3, 17, 18, 0, 0, 0, time.UTC)
	start := StartOfDay(utc)

	assert.Equal(t, time.Date(2026, 3, 18, 0, 0, 0, 0, VN), start)
}

func TestStartOfWeekIsSunday(t *testing.T) {
	wednesday := time.Date(2026, 3, 18, 15, 0, 0, 0, VN)
	start := StartOfWeek(wednesday)

	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, VN), start)

	// A Sunday is its own week start
	assert.Equal(t, start, StartOfWeek(start))
}

func TestStartOfMonth(t *testing.T) {
	ts := time.Date(2026, 3, 18, 15, 0, 0, 0, VN)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, VN), StartOfMonth(ts))
}

func TestEndOfDayContainsWholeDay(t *testing.T) {
	ts := time.Date(2026, 3, 18, 15, 0, 0, 0, VN)
	end := EndOfDay(ts)

	assert.False(t, end.Before(time.Date(2026, 3, 18, 23, 59, 59, 0, VN)))
	assert.True(t, end.Before(time.Date(2026, 3, 19, 0, 0, 0, 0, VN)))
}

func TestParseInVN(t *testing.T) {
	ts, err := ParseInVN(DateLayout, "2026-03-18")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 18, 0, 0, 0, 0, VN), ts)

	_, err = ParseInVN(DateLayout, "18/03/2026")
	assert.Error(t, err)
}

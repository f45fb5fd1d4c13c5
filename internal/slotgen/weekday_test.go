package slotgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestParseWeekdays(t *testing.T) {
	got, err := ParseWeekdays([]string{"Wed", "fri", " Monday ", "WED"})
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Wednesday, time.Friday, time.Monday}, got)

	_, err = ParseWeekdays([]string{"Mon", "Funday"})
	assert.ErrorIs(t, err, ErrUnknownWeekday)

	got, err = ParseWeekdays(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveDates(t *testing.T) {
	monday := date(2026, time.October, 19)
	require.Equal(t, time.Monday, monday.Weekday())

	t.Run("forward offsets from monday", func(t *testing.T) {
		got := ResolveDates(monday, []time.Weekday{time.Wednesday, time.Friday})

		require.Len(t, got, 2)
		assert.Equal(t, monday.AddDate(0, 0, 2), got[0])
		assert.Equal(t, monday.AddDate(0, 0, 4), got[1])
		for _, d := range got {
			assert.False(t, d.Before(monday))
		}
	})

	t.Run("empty weekdays returns base date", func(t *testing.T) {
		got := ResolveDates(monday, nil)
		assert.Equal(t, []time.Time{monday}, got)
	})

	t.Run("same weekday gives base date", func(t *testing.T) {
		got := ResolveDates(monday, []time.Weekday{time.Monday})
		assert.Equal(t, []time.Time{monday}, got)
	})

	t.Run("earlier weekday wraps to next week", func(t *testing.T) {
		friday := date(2026, time.October, 23)
		got := ResolveDates(friday, []time.Weekday{time.Monday, time.Sunday})
		assert.Equal(t, []time.Time{date(2026, time.October, 26), date(2026, time.October, 25)}, got)
	})

	t.Run("caller order is kept", func(t *testing.T) {
		got := ResolveDates(monday, []time.Weekday{time.Saturday, time.Tuesday})
		assert.Equal(t, []time.Time{date(2026, time.October, 24), date(2026, time.October, 20)}, got)
	})

	t.Run("time of day is dropped", func(t *testing.T) {
		got := ResolveDates(monday.Add(15*time.Hour), nil)
		assert.Equal(t, []time.Time{monday}, got)
	})
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Sun", WeekdayLabel(time.Sunday))
	assert.Equal(t, "Thu", WeekdayLabel(time.Thursday))
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNextPickupDate(t *testing.T) {
	// Monday 2024-01-01.
	start := date(2024, time.January, 1)

	tests := []struct {
		name           string
		startDate      time.Time
		recurrenceDays int
		pickupDay      time.Weekday
		now            time.Time
		want           time.Time
	}{
		{
			name:           "same weekday skips to next week",
			startDate:      start,
			recurrenceDays: 7,
			pickupDay:      time.Monday,
			now:            date(2023, time.December, 25),
			want:           date(2024, time.January, 8),
		},
		{
			name:           "advances to nearest target weekday",
			startDate:      start,
			recurrenceDays: 7,
			pickupDay:      time.Thursday,
			now:            start,
			want:           date(2024, time.January, 4),
		},
		{
			name:           "reference is now when subscription started in the past",
			startDate:      start,
			recurrenceDays: 7,
			pickupDay:      time.Tuesday,
			now:            date(2024, time.January, 10), // Wednesday
			want:           date(2024, time.January, 16),
		},
		{
			name:           "future start date wins over now",
			startDate:      date(2024, time.February, 5), // Monday
			recurrenceDays: 7,
			pickupDay:      time.Wednesday,
			now:            date(2024, time.January, 2),
			want:           date(2024, time.February, 7),
		},
		{
			name:           "biweekly snaps onto the two week cadence",
			startDate:      start,
			recurrenceDays: 15,
			pickupDay:      time.Monday,
			now:            start,
			want:           date(2024, time.January, 22), // 3 whole weeks after start
		},
		{
			name:           "monthly snaps onto the five week cadence",
			startDate:      start,
			recurrenceDays: 30,
			pickupDay:      time.Monday,
			now:            start,
			want:           date(2024, time.February, 5),
		},
		{
			name:           "bimonthly snaps onto the nine week cadence",
			startDate:      start,
			recurrenceDays: 60,
			pickupDay:      time.Monday,
			now:            start,
			want:           date(2024, time.March, 4),
		},
		{
			name:           "ten day recurrence rounds up to two week cycle",
			startDate:      start,
			recurrenceDays: 10,
			pickupDay:      time.Monday,
			now:            start,
			want:           date(2024, time.January, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextPickupDate(tt.startDate, tt.recurrenceDays, tt.pickupDay, tt.now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.pickupDay, got.Weekday())
			assert.True(t, got.After(tt.now), "pickup must be strictly in the future")
		})
	}
}

func TestOccurrences(t *testing.T) {
	first := date(2024, time.January, 9)

	t.Run("weekly within horizon", func(t *testing.T) {
		got := Occurrences(first, 7, date(2024, time.January, 31))
		assert.Equal(t, []time.Time{
			date(2024, time.January, 9),
			date(2024, time.January, 16),
			date(2024, time.January, 23),
			date(2024, time.January, 30),
		}, got)
	})

	t.Run("first date beyond horizon yields nothing", func(t *testing.T) {
		assert.Nil(t, Occurrences(first, 7, date(2024, time.January, 8)))
	})

	t.Run("horizon date itself is included", func(t *testing.T) {
		got := Occurrences(first, 15, date(2024, time.January, 24))
		assert.Equal(t, []time.Time{
			date(2024, time.January, 9),
			date(2024, time.January, 24),
		}, got)
	})

	t.Run("invalid recurrence yields nothing", func(t *testing.T) {
		assert.Nil(t, Occurrences(first, 0, date(2024, time.December, 31)))
	})
}

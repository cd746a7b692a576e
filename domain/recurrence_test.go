package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecurrenceRule_IsDue(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		now := time.Date(2018, 1, 3, hour, 17, 42, 0, time.UTC)

		assert.True(t, Hourly.IsDue(now), "hourly at %d", hour)
		assert.Equal(t, hour == 0, DailyAtMidnight.IsDue(now), "daily at %d", hour)
		assert.Equal(t, hour%4 == 0, EveryFourHours.IsDue(now), "every four hours at %d", hour)
	}
}

func TestRecurrenceRule_UsesUTCHour(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 09:00 JST is midnight UTC.
	now := time.Date(2018, 1, 3, 9, 0, 0, 0, tokyo)

	assert.True(t, DailyAtMidnight.IsDue(now))
	assert.True(t, EveryFourHours.IsDue(now))
}

func TestRecurrenceRule_Name(t *testing.T) {
	assert.Equal(t, "hourly", Hourly.Name())
	assert.Equal(t, "daily", DailyAtMidnight.Name())
	assert.Equal(t, "every_four_hours", EveryFourHours.Name())
}

func TestRecurrenceRule_ZeroValueNeverDue(t *testing.T) {
	var rule RecurrenceRule
	assert.False(t, rule.IsDue(time.Now()))
}

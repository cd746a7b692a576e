package domain

import "time"

// RecurrenceRule is a named predicate over the UTC hour of a tick.
type RecurrenceRule struct {
	name  string
	match func(hour int) bool
}

var (
	Hourly          = NewRecurrenceRule("hourly", func(int) bool { return true })
	DailyAtMidnight = NewRecurrenceRule("daily", func(hour int) bool { return hour == 0 })
	EveryFourHours  = NewRecurrenceRule("every_four_hours", func(hour int) bool { return hour%4 == 0 })
)

func NewRecurrenceRule(name string, match func(hour int) bool) RecurrenceRule {
	return RecurrenceRule{name: name, match: match}
}

func (r RecurrenceRule) Name() string {
	return r.name
}

// IsDue reports whether the rule fires for the hour containing t.
// Only the UTC hour is considered; minutes and seconds are ignored.
func (r RecurrenceRule) IsDue(t time.Time) bool {
	if r.match == nil {
		return false
	}
	return r.match(t.UTC().Hour())
}

package domain

import "time"

// DefaultSound is the notification sound used when a rule does not override it.
const DefaultSound = "default"

// Content is the user-visible payload of a notification. It passes through
// the engine unchanged.
type Content struct {
	Title string
	Body  string
	Sound string
}

// Rule is a declarative description of when a reminder should fire.
// It is a sealed union: WeeklyRecurring, DailyCountdownAt and OneShotAfter
// are the only implementations.
type Rule interface {
	isRule()
}

// WeeklyRecurring fires every week on each selected weekday at the given time.
// The host's repetition primitive is per-weekday-and-time only, so a rule over
// N weekdays always materializes as N independent weekly triggers.
type WeeklyRecurring struct {
	Entity   string
	Weekdays []int // host weekdays 1..7
	Hour     int
	Minute   int
	Content  Content

	// SuppressToday drops only today's weekday trigger in the current
	// reconciliation pass. The other weekdays are still scheduled, so future
	// weeks are unaffected.
	SuppressToday bool
}

// DailyCountdownAt fires once at the next future occurrence of the given
// time-of-day, rolling to the next calendar day if today's occurrence has
// passed. It is non-repeating and re-armed on each reconciliation.
type DailyCountdownAt struct {
	Entity  string
	Hour    int
	Minute  int
	Content Content
}

// OneShotAfter fires once at a fixed future instant. It is not re-armed after
// firing and has an explicit cancel path independent of reconciliation.
type OneShotAfter struct {
	Entity  string
	FireAt  time.Time
	Content Content
}

func (WeeklyRecurring) isRule()  {}
func (DailyCountdownAt) isRule() {}
func (OneShotAfter) isRule()     {}

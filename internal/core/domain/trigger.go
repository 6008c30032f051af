package domain

import "time"

// TriggerKind discriminates the host's native scheduling primitives.
type TriggerKind string

const (
	// TriggerWeeklyCalendar repeats every week at a weekday and time-of-day.
	TriggerWeeklyCalendar TriggerKind = "weeklyCalendar"
	// TriggerCalendarDate fires once at an absolute date and time.
	TriggerCalendarDate TriggerKind = "calendarDate"
	// TriggerInterval fires once after a duration has elapsed.
	TriggerInterval TriggerKind = "interval"
)

// Trigger is a primitive trigger descriptor as the host store understands it.
// Only the fields of the active Kind are meaningful.
type Trigger struct {
	Kind TriggerKind

	// TriggerWeeklyCalendar
	Weekday int // host weekday 1..7
	Hour    int
	Minute  int

	// TriggerCalendarDate
	FireAt time.Time

	// TriggerInterval
	After time.Duration

	Repeats bool
}

// ScheduledNotification is one (identifier, trigger, content) tuple ready to
// be registered with the host store.
type ScheduledNotification struct {
	ID      Identifier
	Trigger Trigger
	Content Content
}

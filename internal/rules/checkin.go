package rules

import (
	"time"

	"go.trai.ch/nudge/internal/core/domain"
)

// Default check-in reminder time when the preferences carry none.
const (
	defaultCheckInHour   = 18
	defaultCheckInMinute = 0
)

// CheckIns builds the rule set for the daily check-in domain. Auto-rest days
// (UI-indexed, 0=Monday) get no trigger at all; a check-in already completed
// today suppresses only today's occurrence.
func CheckIns(prefs domain.CheckInPrefs, now time.Time) []domain.Rule {
	rest := make(map[int]bool, len(prefs.AutoRestDays))
	for _, ui := range prefs.AutoRestDays {
		rest[domain.HostWeekday(ui)] = true
	}

	var weekdays []int
	for _, wd := range allWeekdays() {
		if !rest[wd] {
			weekdays = append(weekdays, wd)
		}
	}
	if len(weekdays) == 0 {
		return nil
	}

	today := domain.HostWeekdayOf(now)
	completed := false
	for _, ui := range prefs.CompletedToday {
		if domain.HostWeekday(ui) == today {
			completed = true
			break
		}
	}

	hour, minute := prefs.Hour, prefs.Minute
	if hour == 0 && minute == 0 {
		hour, minute = defaultCheckInHour, defaultCheckInMinute
	}

	return []domain.Rule{domain.WeeklyRecurring{
		Weekdays: weekdays,
		Hour:     hour,
		Minute:   minute,
		Content: domain.Content{
			Title: "Daily check-in",
			Body:  "How did today go? Log your check-in.",
		},
		SuppressToday: completed,
	}}
}

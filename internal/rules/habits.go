package rules

import (
	"strings"

	"go.trai.ch/nudge/internal/core/domain"
)

// Habits builds the rule set for the habit domain: one shared daily reminder
// per weekday whose body lists the habits still open today. When every habit
// is already checked off, today's occurrence is suppressed; the other
// weekdays keep their triggers so future weeks are unaffected.
func Habits(habits []domain.Habit, completedToday []string, hour, minute int) []domain.Rule {
	if len(habits) == 0 {
		return nil
	}

	done := make(map[string]bool, len(completedToday))
	for _, id := range completedToday {
		done[id] = true
	}

	var remaining []string
	for _, h := range habits {
		if !done[h.ID] {
			remaining = append(remaining, h.Name)
		}
	}

	body := "All habits done for today."
	if len(remaining) > 0 {
		body = "Habits left today: " + strings.Join(remaining, ", ")
	}

	return []domain.Rule{domain.WeeklyRecurring{
		Entity:   "daily",
		Weekdays: allWeekdays(),
		Hour:     hour,
		Minute:   minute,
		Content: domain.Content{
			Title: "Habits",
			Body:  body,
		},
		SuppressToday: len(remaining) == 0,
	}}
}

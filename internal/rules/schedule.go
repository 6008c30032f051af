package rules

import "go.trai.ch/nudge/internal/core/domain"

// ScheduleEntries builds the rule set for the weekly workout schedule: one
// weekly rule per entry, each pinned to a single host weekday.
func ScheduleEntries(entries []domain.ScheduleEntry) []domain.Rule {
	out := make([]domain.Rule, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.WeeklyRecurring{
			Entity:   e.ID,
			Weekdays: []int{e.Weekday},
			Hour:     e.Hour,
			Minute:   e.Minute,
			Content: domain.Content{
				Title: e.Name,
				Body:  "Scheduled workout: " + e.Name,
			},
		})
	}
	return out
}

// ItineraryItems builds one-shot rules for planned one-off events.
func ItineraryItems(items []domain.ItineraryItem) []domain.Rule {
	out := make([]domain.Rule, 0, len(items))
	for _, it := range items {
		out = append(out, domain.OneShotAfter{
			Entity: it.ID,
			FireAt: it.At,
			Content: domain.Content{
				Title: it.Title,
				Body:  "Upcoming: " + it.Title,
			},
		})
	}
	return out
}

package rules

import (
	"go.trai.ch/nudge/internal/core/domain"
	"go.trai.ch/zerr"
)

// DailyTasks builds the rule set for the daily-task domain. A repeating task
// becomes a weekly rule over all seven weekdays; a one-off task becomes a
// countdown to the next occurrence of its time-of-day.
func DailyTasks(tasks []domain.DailyTask) ([]domain.Rule, error) {
	out := make([]domain.Rule, 0, len(tasks))

	for _, t := range tasks {
		hour, minute, err := ParseTimeOfDay(t.Time)
		if err != nil {
			return nil, zerr.With(err, "task", t.ID)
		}

		content := domain.Content{
			Title: t.Name,
			Body:  "Reminder: " + t.Name,
		}

		if t.Repeats {
			out = append(out, domain.WeeklyRecurring{
				Entity:   t.ID,
				Weekdays: allWeekdays(),
				Hour:     hour,
				Minute:   minute,
				Content:  content,
			})
		} else {
			out = append(out, domain.DailyCountdownAt{
				Entity:  t.ID,
				Hour:    hour,
				Minute:  minute,
				Content: content,
			})
		}
	}
	return out, nil
}

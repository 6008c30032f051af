package rules

import "go.trai.ch/nudge/internal/core/domain"

// Meals builds the rule set for the meal-reminder domain: one countdown per
// meal type, re-armed to the next occurrence on every reconciliation.
func Meals(meals []domain.MealReminder) []domain.Rule {
	out := make([]domain.Rule, 0, len(meals))
	for _, m := range meals {
		out = append(out, domain.DailyCountdownAt{
			Entity: m.MealType,
			Hour:   m.Hour,
			Minute: m.Minute,
			Content: domain.Content{
				Title: "Meal time",
				Body:  "Time for " + m.MealType,
			},
		})
	}
	return out
}

package rules

import "go.trai.ch/nudge/internal/core/domain"

// Supplements builds the rule set for a supplement domain (nutrition or
// workout): one countdown per supplement at the plan's shared time-of-day.
func Supplements(plan domain.SupplementPlan) []domain.Rule {
	out := make([]domain.Rule, 0, len(plan.Supplements))
	for _, s := range plan.Supplements {
		out = append(out, domain.DailyCountdownAt{
			Entity: s.ID,
			Hour:   plan.Hour,
			Minute: plan.Minute,
			Content: domain.Content{
				Title: "Supplement",
				Body:  "Time to take " + s.Name,
			},
		})
	}
	return out
}

package rules

import "go.trai.ch/nudge/internal/core/domain"

// Timers builds one-shot rules for running timers (activity timers and
// time-tracking sessions). Timers whose end has already passed produce a rule
// that the builder drops, so feeding finished timers through is harmless.
func Timers(timers []domain.Timer) []domain.Rule {
	out := make([]domain.Rule, 0, len(timers))
	for _, t := range timers {
		out = append(out, domain.OneShotAfter{
			Entity: t.ID,
			FireAt: t.End,
			Content: domain.Content{
				Title: t.Name,
				Body:  "Time is up: " + t.Name,
			},
		})
	}
	return out
}

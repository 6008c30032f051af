// Package reconciler implements the reminder reconciliation engine.
package reconciler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.trai.ch/nudge/internal/core/domain"
	"go.trai.ch/zerr"
)

// dailyParser parses "minute hour * * *" specs. It is the same five-field
// parser the host's daily reminders are expressed in.
var dailyParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Build turns one rule into zero or more primitive triggers, each carrying a
// stable identifier. The now instant decides both "today" for suppression and
// the rollover point for countdown rules.
func Build(d domain.Domain, rule domain.Rule, now time.Time) ([]domain.ScheduledNotification, error) {
	switch r := rule.(type) {
	case domain.WeeklyRecurring:
		return buildWeekly(d, r, now)
	case domain.DailyCountdownAt:
		return buildDailyCountdown(d, r, now)
	case domain.OneShotAfter:
		return buildOneShot(d, r, now)
	default:
		return nil, zerr.With(domain.ErrUnknownRule, "rule", fmt.Sprintf("%T", rule))
	}
}

func buildWeekly(d domain.Domain, r domain.WeeklyRecurring, now time.Time) ([]domain.ScheduledNotification, error) {
	if err := validateTimeOfDay(r.Hour, r.Minute); err != nil {
		return nil, err
	}

	today := domain.HostWeekdayOf(now)
	out := make([]domain.ScheduledNotification, 0, len(r.Weekdays))

	for _, wd := range r.Weekdays {
		if wd < 1 || wd > 7 {
			return nil, zerr.With(domain.ErrInvalidWeekday, "weekday", wd)
		}
		if r.SuppressToday && wd == today {
			// Today's occurrence is already satisfied. The trigger is simply
			// not re-added this pass; the next reconciliation restores it.
			continue
		}
		out = append(out, domain.ScheduledNotification{
			ID: domain.Identifier{Domain: d, Entity: r.Entity, Weekday: wd},
			Trigger: domain.Trigger{
				Kind:    domain.TriggerWeeklyCalendar,
				Weekday: wd,
				Hour:    r.Hour,
				Minute:  r.Minute,
				Repeats: true,
			},
			Content: withDefaultSound(r.Content),
		})
	}
	return out, nil
}

func buildDailyCountdown(d domain.Domain, r domain.DailyCountdownAt, now time.Time) ([]domain.ScheduledNotification, error) {
	if err := validateTimeOfDay(r.Hour, r.Minute); err != nil {
		return nil, err
	}
	if r.Entity == "" {
		return nil, zerr.With(domain.ErrMissingEntity, "domain", string(d))
	}

	next, err := nextOccurrence(r.Hour, r.Minute, now)
	if err != nil {
		return nil, err
	}

	return []domain.ScheduledNotification{{
		ID: domain.Identifier{Domain: d, Entity: r.Entity},
		Trigger: domain.Trigger{
			Kind:   domain.TriggerCalendarDate,
			FireAt: next,
		},
		Content: withDefaultSound(r.Content),
	}}, nil
}

func buildOneShot(d domain.Domain, r domain.OneShotAfter, now time.Time) ([]domain.ScheduledNotification, error) {
	if r.Entity == "" {
		return nil, zerr.With(domain.ErrMissingEntity, "domain", string(d))
	}
	if !r.FireAt.After(now) {
		// Already due or expired; the caller should have fired or discarded it.
		return nil, nil
	}

	return []domain.ScheduledNotification{{
		ID: domain.Identifier{Domain: d, Entity: r.Entity},
		Trigger: domain.Trigger{
			Kind:  domain.TriggerInterval,
			After: r.FireAt.Sub(now),
		},
		Content: withDefaultSound(r.Content),
	}}, nil
}

// buildSet builds the full desired set for one domain and rejects identifier
// collisions between rules.
func buildSet(d domain.Domain, rules []domain.Rule, now time.Time) ([]domain.ScheduledNotification, error) {
	var out []domain.ScheduledNotification
	seen := make(map[string]bool)

	for _, rule := range rules {
		built, err := Build(d, rule, now)
		if err != nil {
			return nil, err
		}
		for _, n := range built {
			id := n.ID.String()
			if seen[id] {
				return nil, zerr.With(domain.ErrDuplicateIdentifier, "id", id)
			}
			seen[id] = true
		}
		out = append(out, built...)
	}
	return out, nil
}

// nextOccurrence returns the next instant strictly after now with the given
// time-of-day, rolling to the next calendar day when today's occurrence has
// already passed.
func nextOccurrence(hour, minute int, now time.Time) (time.Time, error) {
	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	sched, err := dailyParser.Parse(spec)
	if err != nil {
		return time.Time{}, zerr.Wrap(err, "failed to parse daily schedule")
	}
	return sched.Next(now), nil
}

func validateTimeOfDay(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return zerr.With(zerr.With(domain.ErrInvalidTimeOfDay, "hour", hour), "minute", minute)
	}
	return nil
}

func withDefaultSound(c domain.Content) domain.Content {
	if c.Sound == "" {
		c.Sound = domain.DefaultSound
	}
	return c
}

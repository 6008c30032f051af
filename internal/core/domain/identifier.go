// Package domain contains the pure reminder scheduling types.
package domain

import (
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Domain is a category of reminder source. Each domain owns a disjoint
// identifier namespace in the host notification store.
type Domain string

const (
	DomainDailyTask           Domain = "dailyTask"
	DomainHabit               Domain = "habit"
	DomainMealReminder        Domain = "mealReminder"
	DomainActivityTimer       Domain = "activityTimer"
	DomainTimeTracking        Domain = "timeTracking"
	DomainDailyCheckIn        Domain = "dailyCheckIn"
	DomainNutritionSupplement Domain = "nutritionSupplement"
	DomainWorkoutSupplement   Domain = "workoutSupplement"
	DomainWeeklySchedule      Domain = "weeklySchedule"
	DomainItinerary           Domain = "itinerary"
)

// Domains lists every known domain. Order is stable for deterministic
// iteration in logs and tests.
var Domains = []Domain{
	DomainDailyTask,
	DomainHabit,
	DomainMealReminder,
	DomainActivityTimer,
	DomainTimeTracking,
	DomainDailyCheckIn,
	DomainNutritionSupplement,
	DomainWorkoutSupplement,
	DomainWeeklySchedule,
	DomainItinerary,
}

// ParseDomain resolves a domain name as spelled in identifiers.
func ParseDomain(name string) (Domain, error) {
	for _, d := range Domains {
		if string(d) == name {
			return d, nil
		}
	}
	return "", zerr.With(ErrUnknownDomain, "domain", name)
}

// Prefix returns the identifier prefix owned by the domain. Every identifier
// produced for the domain starts with this prefix, so "remove everything under
// this domain" reduces to a strings.HasPrefix filter over the pending list.
func (d Domain) Prefix() string {
	return string(d) + "."
}

// Identifier addresses a single primitive trigger in the host store.
// It is a tagged value rather than a hand-concatenated string so that the
// serialization lives in exactly one place.
type Identifier struct {
	Domain  Domain
	Entity  string
	Weekday int // host weekday 1..7, or 0 when the rule has no weekday dimension
}

// String serializes the identifier. The format is stable across
// reconciliations for the same (domain, entity, weekday) tuple:
//
//	dailyTask.t1          (entity only)
//	dailyTask.t1.wd4      (entity + weekday)
//	dailyCheckIn.wd4      (weekday only)
func (id Identifier) String() string {
	var b strings.Builder
	b.WriteString(string(id.Domain))
	if id.Entity != "" {
		b.WriteByte('.')
		b.WriteString(id.Entity)
	}
	if id.Weekday != 0 {
		b.WriteString(".wd")
		b.WriteString(strconv.Itoa(id.Weekday))
	}
	return b.String()
}

// HostWeekday converts a UI weekday index (0=Monday .. 6=Sunday) to the host
// calendar numbering (1=Sunday .. 7=Saturday).
func HostWeekday(uiIndex int) int {
	return ((uiIndex + 1) % 7) + 1
}

// HostWeekdayOf returns the host weekday (1=Sunday .. 7=Saturday) of an instant.
func HostWeekdayOf(t time.Time) int {
	return int(t.Weekday()) + 1
}

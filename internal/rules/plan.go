package rules

import (
	"time"

	"go.trai.ch/nudge/internal/core/domain"
)

// Default habit reminder time when the plan carries none.
const (
	defaultHabitHour   = 20
	defaultHabitMinute = 0
)

// FromPlan assembles the complete per-domain rule map for one reconciliation
// run. Every known domain gets an entry; domains with no objects in the plan
// map to an empty rule set, which the engine treats as a full clear.
func FromPlan(plan *domain.Plan, now time.Time) (map[domain.Domain][]domain.Rule, error) {
	sets := make(map[domain.Domain][]domain.Rule, len(domain.Domains))
	for _, d := range domain.Domains {
		sets[d] = nil
	}

	tasks, err := DailyTasks(plan.Tasks)
	if err != nil {
		return nil, err
	}
	sets[domain.DomainDailyTask] = tasks

	habitHour, habitMinute := plan.HabitHour, plan.HabitMinute
	if habitHour == 0 && habitMinute == 0 {
		habitHour, habitMinute = defaultHabitHour, defaultHabitMinute
	}
	sets[domain.DomainHabit] = Habits(plan.Habits, plan.HabitsCompletedToday, habitHour, habitMinute)

	sets[domain.DomainMealReminder] = Meals(plan.Meals)
	sets[domain.DomainDailyCheckIn] = CheckIns(plan.CheckIn, now)
	sets[domain.DomainNutritionSupplement] = Supplements(plan.Nutrition)
	sets[domain.DomainWorkoutSupplement] = Supplements(plan.Workout)
	sets[domain.DomainActivityTimer] = Timers(plan.Timers)
	sets[domain.DomainTimeTracking] = Timers(plan.Tracking)
	sets[domain.DomainWeeklySchedule] = ScheduleEntries(plan.Schedule)
	sets[domain.DomainItinerary] = ItineraryItems(plan.Itinerary)

	return sets, nil
}

// Package config provides the YAML plan loader.
package config

import (
	"os"

	"go.trai.ch/nudge/internal/core/domain"
	"go.trai.ch/nudge/internal/core/ports"
	"go.trai.ch/nudge/internal/rules"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.PlanLoader = (*Loader)(nil)

// Loader implements ports.PlanLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a plan file from the given path.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPlanReadFailed.Error()), "path", path)
	}

	var pf Planfile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPlanParseFailed.Error()), "path", path)
	}

	return toPlan(&pf)
}

func toPlan(pf *Planfile) (*domain.Plan, error) {
	plan := &domain.Plan{
		HabitsCompletedToday: pf.Habits.CompletedToday,
	}

	for _, t := range pf.Tasks {
		plan.Tasks = append(plan.Tasks, domain.DailyTask{
			ID:      t.ID,
			Name:    t.Name,
			Time:    t.Time,
			Repeats: t.Repeats,
		})
	}

	for _, h := range pf.Habits.Items {
		plan.Habits = append(plan.Habits, domain.Habit{ID: h.ID, Name: h.Name})
	}
	if pf.Habits.Time != "" {
		hour, minute, err := rules.ParseTimeOfDay(pf.Habits.Time)
		if err != nil {
			return nil, zerr.With(err, "section", "habits")
		}
		plan.HabitHour, plan.HabitMinute = hour, minute
	}

	for _, m := range pf.Meals {
		hour, minute, err := rules.ParseTimeOfDay(m.Time)
		if err != nil {
			return nil, zerr.With(err, "meal", m.Type)
		}
		plan.Meals = append(plan.Meals, domain.MealReminder{
			MealType: m.Type,
			Hour:     hour,
			Minute:   minute,
		})
	}

	plan.CheckIn = domain.CheckInPrefs{
		AutoRestDays:   pf.CheckIn.AutoRestDays,
		CompletedToday: pf.CheckIn.CompletedToday,
	}
	if pf.CheckIn.Time != "" {
		hour, minute, err := rules.ParseTimeOfDay(pf.CheckIn.Time)
		if err != nil {
			return nil, zerr.With(err, "section", "checkIn")
		}
		plan.CheckIn.Hour, plan.CheckIn.Minute = hour, minute
	}

	nutrition, err := toSupplementPlan(pf.NutritionSupplements, "nutritionSupplements")
	if err != nil {
		return nil, err
	}
	plan.Nutrition = nutrition

	workout, err := toSupplementPlan(pf.WorkoutSupplements, "workoutSupplements")
	if err != nil {
		return nil, err
	}
	plan.Workout = workout

	for _, t := range pf.Timers {
		plan.Timers = append(plan.Timers, domain.Timer{ID: t.ID, Name: t.Name, End: t.End})
	}
	for _, t := range pf.Tracking {
		plan.Tracking = append(plan.Tracking, domain.Timer{ID: t.ID, Name: t.Name, End: t.End})
	}

	for _, s := range pf.Schedule {
		hour, minute, err := rules.ParseTimeOfDay(s.Time)
		if err != nil {
			return nil, zerr.With(err, "schedule", s.ID)
		}
		plan.Schedule = append(plan.Schedule, domain.ScheduleEntry{
			ID:      s.ID,
			Name:    s.Name,
			Weekday: s.Weekday,
			Hour:    hour,
			Minute:  minute,
		})
	}

	for _, it := range pf.Itinerary {
		plan.Itinerary = append(plan.Itinerary, domain.ItineraryItem{
			ID:    it.ID,
			Title: it.Title,
			At:    it.At,
		})
	}

	return plan, nil
}

func toSupplementPlan(dto SupplementsDTO, section string) (domain.SupplementPlan, error) {
	plan := domain.SupplementPlan{}
	for _, s := range dto.Items {
		plan.Supplements = append(plan.Supplements, domain.Supplement{ID: s.ID, Name: s.Name})
	}
	if dto.Time != "" {
		hour, minute, err := rules.ParseTimeOfDay(dto.Time)
		if err != nil {
			return domain.SupplementPlan{}, zerr.With(err, "section", section)
		}
		plan.Hour, plan.Minute = hour, minute
	}
	return plan, nil
}

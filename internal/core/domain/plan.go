package domain

import "time"

// Plan is the full set of rule-producing inputs for one reconciliation run.
// The values are plain data produced by external collaborators (task editor,
// habit tracker, meal planner, ...); nothing here is persisted by the engine.
type Plan struct {
	Tasks  []DailyTask
	Habits []Habit
	// HabitsCompletedToday holds the ids of habits already checked off today.
	HabitsCompletedToday []string
	// HabitHour and HabitMinute set the shared habit reminder time.
	HabitHour   int
	HabitMinute int

	Meals     []MealReminder
	CheckIn   CheckInPrefs
	Nutrition SupplementPlan
	Workout   SupplementPlan
	Timers    []Timer
	Tracking  []Timer
	Schedule  []ScheduleEntry
	Itinerary []ItineraryItem
}

// DailyTask is a task definition from the task editor.
type DailyTask struct {
	ID      string
	Name    string
	Time    string // "HH:mm"
	Repeats bool
}

// Habit is a habit definition. Completion state travels separately because it
// changes independently of the definition.
type Habit struct {
	ID   string
	Name string
}

// MealReminder is a meal-time reminder definition, keyed by meal type
// ("breakfast", "lunch", ...).
type MealReminder struct {
	MealType string
	Hour     int
	Minute   int
}

// CheckInPrefs configures the daily check-in reminder. Weekday indices are
// UI-indexed (0=Monday .. 6=Sunday) as the settings screens produce them; the
// engine converts them at the domain boundary.
type CheckInPrefs struct {
	AutoRestDays   []int // UI weekday indices with no check-in
	CompletedToday []int // UI weekday indices already checked in this week
	Hour           int
	Minute         int
}

// SupplementPlan is a list of supplements reminded at one time-of-day.
type SupplementPlan struct {
	Supplements []Supplement
	Hour        int
	Minute      int
}

// Supplement is a single supplement definition.
type Supplement struct {
	ID   string
	Name string
}

// Timer is an in-progress activity or time-tracking timer with a fixed end.
type Timer struct {
	ID   string
	Name string
	End  time.Time
}

// ScheduleEntry is a weekly workout schedule slot.
type ScheduleEntry struct {
	ID      string
	Name    string
	Weekday int // host weekday 1..7
	Hour    int
	Minute  int
}

// ItineraryItem is a one-off planned event.
type ItineraryItem struct {
	ID    string
	Title string
	At    time.Time
}

package config

import "time"

// Planfile represents the structure of the plan YAML file. Times of day are
// "HH:mm" strings as the editing surfaces produce them; weekdays in the
// schedule section use the host numbering (1=Sunday .. 7=Saturday).
type Planfile struct {
	Tasks                []TaskDTO       `yaml:"tasks"`
	Habits               HabitsDTO       `yaml:"habits"`
	Meals                []MealDTO       `yaml:"meals"`
	CheckIn              CheckInDTO      `yaml:"checkIn"`
	NutritionSupplements SupplementsDTO  `yaml:"nutritionSupplements"`
	WorkoutSupplements   SupplementsDTO  `yaml:"workoutSupplements"`
	Timers               []TimerDTO      `yaml:"timers"`
	Tracking             []TimerDTO      `yaml:"tracking"`
	Schedule             []ScheduleDTO   `yaml:"schedule"`
	Itinerary            []ItineraryDTO  `yaml:"itinerary"`
}

// TaskDTO represents a daily task definition.
type TaskDTO struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Time    string `yaml:"time"`
	Repeats bool   `yaml:"repeats"`
}

// HabitsDTO represents the habit list plus today's completion state.
type HabitsDTO struct {
	Time           string     `yaml:"time"`
	CompletedToday []string   `yaml:"completedToday"`
	Items          []HabitDTO `yaml:"items"`
}

// HabitDTO represents a single habit definition.
type HabitDTO struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// MealDTO represents a meal reminder definition.
type MealDTO struct {
	Type string `yaml:"type"`
	Time string `yaml:"time"`
}

// CheckInDTO represents the daily check-in preferences. Weekday indices are
// UI-indexed (0=Monday .. 6=Sunday).
type CheckInDTO struct {
	Time           string `yaml:"time"`
	AutoRestDays   []int  `yaml:"autoRestDays"`
	CompletedToday []int  `yaml:"completedToday"`
}

// SupplementsDTO represents a supplement list reminded at one time-of-day.
type SupplementsDTO struct {
	Time  string          `yaml:"time"`
	Items []SupplementDTO `yaml:"items"`
}

// SupplementDTO represents a single supplement definition.
type SupplementDTO struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// TimerDTO represents a running activity or time-tracking timer.
type TimerDTO struct {
	ID   string    `yaml:"id"`
	Name string    `yaml:"name"`
	End  time.Time `yaml:"end"`
}

// ScheduleDTO represents a weekly workout schedule slot.
type ScheduleDTO struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Weekday int    `yaml:"weekday"`
	Time    string `yaml:"time"`
}

// ItineraryDTO represents a one-off planned event.
type ItineraryDTO struct {
	ID    string    `yaml:"id"`
	Title string    `yaml:"title"`
	At    time.Time `yaml:"at"`
}

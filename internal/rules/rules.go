// Package rules shapes the externally produced domain objects (tasks, habits,
// meal times, ...) into reminder rules for the reconciliation engine. All
// functions are pure; completion state and the current instant are passed in.
package rules

import (
	"strconv"
	"strings"

	"go.trai.ch/nudge/internal/core/domain"
	"go.trai.ch/zerr"
)

// allWeekdays returns every host weekday, 1=Sunday .. 7=Saturday.
func allWeekdays() []int {
	return []int{1, 2, 3, 4, 5, 6, 7}
}

// ParseTimeOfDay parses a "HH:mm" string as the editing surfaces produce them.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, zerr.With(domain.ErrInvalidTimeFormat, "time", s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, zerr.With(domain.ErrInvalidTimeFormat, "time", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, zerr.With(domain.ErrInvalidTimeFormat, "time", s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, zerr.With(domain.ErrInvalidTimeOfDay, "time", s)
	}
	return hour, minute, nil
}

// Package sysclock implements the wall-clock adapter.
package sysclock

import (
	"time"

	"go.trai.ch/nudge/internal/core/ports"
)

var _ ports.Clock = (*Clock)(nil)

// Clock reads the system clock in a fixed location.
type Clock struct {
	loc *time.Location
}

// New creates a Clock in the given location. A nil location means local time.
func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc}
}

// Now returns the current instant in the clock's location.
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

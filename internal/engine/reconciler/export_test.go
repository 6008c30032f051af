package reconciler

import (
	"time"

	"go.trai.ch/nudge/internal/core/domain"
)

// BuildSet exposes buildSet for testing purposes only.
func BuildSet(d domain.Domain, rules []domain.Rule, now time.Time) ([]domain.ScheduledNotification, error) {
	return buildSet(d, rules, now)
}

// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/nudge/internal/core/domain"
)

// NotificationStore is the host's pending-request queue: a flat, unordered
// collection of triggers addressable by opaque string identifiers. There is
// no transaction across operations; the engine provides its own ordering.
//
//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type NotificationStore interface {
	// Authorized reports whether the process may schedule notifications.
	Authorized(ctx context.Context) (bool, error)

	// RequestAuthorization prompts the host for scheduling permission and
	// reports whether it was granted. Denial is not an error.
	RequestAuthorization(ctx context.Context) (bool, error)

	// Pending enumerates the identifiers of all currently pending triggers.
	Pending(ctx context.Context) ([]string, error)

	// Add registers one trigger under the given identifier. Adding an
	// identifier that is already pending replaces it.
	Add(ctx context.Context, id string, trigger domain.Trigger, content domain.Content) error

	// Remove deletes the given identifiers. Unknown identifiers are ignored.
	Remove(ctx context.Context, ids []string) error
}

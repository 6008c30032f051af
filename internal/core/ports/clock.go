package ports

import "time"

// Clock abstracts the wall clock so trigger math is testable.
//
//go:generate go run go.uber.org/mock/mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	// Now returns the current instant in the user's timezone.
	Now() time.Time
}

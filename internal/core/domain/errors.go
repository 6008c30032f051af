package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTimeOfDay is returned when an hour is outside 0..23 or a
	// minute is outside 0..59.
	ErrInvalidTimeOfDay = zerr.New("invalid time of day")

	// ErrInvalidWeekday is returned when a host weekday is outside 1..7.
	ErrInvalidWeekday = zerr.New("invalid weekday")

	// ErrInvalidTimeFormat is returned when a "HH:mm" string cannot be parsed.
	ErrInvalidTimeFormat = zerr.New("invalid time format, expected HH:mm")

	// ErrMissingEntity is returned when a rule has no entity id and the
	// domain requires one.
	ErrMissingEntity = zerr.New("missing entity id")

	// ErrUnknownDomain is returned when a domain name does not match any
	// known identifier namespace.
	ErrUnknownDomain = zerr.New("unknown domain")

	// ErrUnknownRule is returned when the trigger builder sees a Rule
	// implementation it does not know.
	ErrUnknownRule = zerr.New("unknown rule type")

	// ErrDuplicateIdentifier is returned when two rules in one reconciliation
	// pass resolve to the same identifier.
	ErrDuplicateIdentifier = zerr.New("duplicate identifier")

	// ErrListPendingFailed is returned when the host pending list cannot be
	// enumerated. Without the listing the stale sweep cannot run, so the pass
	// is aborted.
	ErrListPendingFailed = zerr.New("failed to list pending notifications")

	// ErrPlanReadFailed is returned when the plan file cannot be read.
	ErrPlanReadFailed = zerr.New("failed to read plan file")

	// ErrPlanParseFailed is returned when the plan file cannot be parsed.
	ErrPlanParseFailed = zerr.New("failed to parse plan file")

	// ErrStateReadFailed is returned when the notification state file cannot
	// be read.
	ErrStateReadFailed = zerr.New("failed to read notification state")

	// ErrStateWriteFailed is returned when the notification state file cannot
	// be written.
	ErrStateWriteFailed = zerr.New("failed to write notification state")
)

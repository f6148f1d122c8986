package domain

import "errors"

// Sentinel errors for the domain error taxonomy. Call sites wrap these with
// fmt.Errorf("%w: ...") so callers can match with errors.Is while still
// getting a useful message.
var (
	// ErrValidation covers malformed input to constructors and factories:
	// blank strings, negative amounts, non-positive day spans.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidPeriod is a date-range business rule violation.
	ErrInvalidPeriod = errors.New("invalid rental period")

	// ErrInvalidStateTransition is an illegal rental status change.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrNotFound means a referenced customer, car or rental is absent.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers duplicate user IDs at registration and
	// unavailable cars at rental creation.
	ErrConflict = errors.New("conflict")
)

package booking

import "errors"

// Reservation failures are ordinary values, never panics. The error strings
// are user-facing and surfaced verbatim, so they keep sentence casing.
var (
	ErrUnknownShow = errors.New("Invalid show id")
	ErrNoSeats     = errors.New("No seats provided")
	ErrSeatsTaken  = errors.New("One or more seats already booked")
)

// InvalidLabelError reports a seat label that failed to parse.
type InvalidLabelError struct {
	Label string
}

func (e *InvalidLabelError) Error() string {
	return "Invalid seat label: " + e.Label
}

// DuplicateLabelError reports a seat requested twice in one reservation.
type DuplicateLabelError struct {
	Label string
}

func (e *DuplicateLabelError) Error() string {
	return "Duplicate seat label: " + e.Label
}

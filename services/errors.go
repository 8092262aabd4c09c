// Package services implements the booking engine: fare calculation, seat
// inventory, the booking ledger and the create/cancel lifecycle that ties
// them together. The sentinel values below let the terminal layer
// distinguish recoverable failures (retry with different input) from state
// that no longer exists.
package services

import "errors"

// ErrEmptyBooking is returned when a booking request selects zero tickets
// across all categories.
var ErrEmptyBooking = errors.New("booking must contain at least one ticket")

// ErrInsufficientSeats is returned when the requested ticket total exceeds
// the live seat availability of the selected train. Inventory is left
// unchanged; the caller may retry with a smaller count.
var ErrInsufficientSeats = errors.New("insufficient seats available")

// ErrTrainNotFound is returned when a route/train pair no longer exists in
// the schedule, e.g. because the synthetic database was regenerated after
// the referencing booking was made.
var ErrTrainNotFound = errors.New("train not found")

// ErrBookingNotFound is returned when no booking with the given ID belongs
// to the requesting user.
var ErrBookingNotFound = errors.New("booking not found")

// ErrNothingSelected is returned when a cancellation request cancels zero
// tickets across all categories.
var ErrNothingSelected = errors.New("no tickets selected for cancellation")

// ErrCancelExceedsCount is returned when a cancellation asks for more
// tickets of a category than the booking has remaining.
var ErrCancelExceedsCount = errors.New("cancel count exceeds remaining tickets")

// ErrCountMismatch is returned by the ledger when a booking's ticket total
// does not equal the sum of its category counts.
var ErrCountMismatch = errors.New("ticket total does not match category counts")

// ErrUserExists is returned when registering a username that is taken.
var ErrUserExists = errors.New("username already exists")

// ErrInvalidCredentials is returned on a failed login.
var ErrInvalidCredentials = errors.New("invalid username or password")

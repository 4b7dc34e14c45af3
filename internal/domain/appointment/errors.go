package appointment

import "errors"

// Kind classifies a booking-flow failure.
type Kind int

const (
	KindFieldMissing Kind = iota
	KindFieldFormatInvalid
	KindDateNotFuture
	KindEntityNotFound
	KindCapacityExceeded
	KindDuplicateBooking
	KindPersistenceFailure
)

// Error is a client-visible booking failure. Message carries the exact text
// returned to the caller; Kind lets callers branch without string matching.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Booking-flow errors. The messages are part of the API contract.
var (
	ErrAllFieldsRequired   = &Error{KindFieldMissing, "All fields are required"}
	ErrIDRequired          = &Error{KindFieldMissing, "Appointment ID is required"}
	ErrPhoneNotNumeric     = &Error{KindFieldFormatInvalid, "Phone number must contain only numbers"}
	ErrEngineNotNumeric    = &Error{KindFieldFormatInvalid, "Car engine number must contain only numbers"}
	ErrDateNotFuture       = &Error{KindDateNotFuture, "Please select a future date for your appointment"}
	ErrNotFound            = &Error{KindEntityNotFound, "Appointment not found"}
	ErrMechanicNotFound    = &Error{KindEntityNotFound, "Selected mechanic not found"}
	ErrDuplicateBooking    = &Error{KindDuplicateBooking, "You already have an appointment on this date"}
	ErrClientDoubleBooked  = &Error{KindDuplicateBooking, "This client already has an appointment on this date"}
	ErrMechanicFullyBooked = &Error{KindCapacityExceeded, "This mechanic is fully booked for this date. Please choose another mechanic or date."}
)

package orchestrators

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"garage/internal/domain/appointment"
	"garage/internal/domain/mechanic"
)

// MechanicLookupStore defines the mechanic store interface needed to resolve
// a booking's mechanic reference.
type MechanicLookupStore interface {
	GetByID(ctx context.Context, id int64) (mechanic.Mechanic, error)
}

// BookingStore defines the appointment store interface needed for booking.
type BookingStore interface {
	Book(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error)
}

// BookAppointmentInput carries the raw form fields of a booking request.
// All fields arrive as untyped text and are validated here, in the same
// order the client form presents them.
type BookAppointmentInput struct {
	ClientName      string
	ClientAddress   string
	ClientPhone     string
	CarLicense      string
	CarEngine       string
	AppointmentDate string
	MechanicID      string
}

// BookAppointmentResult carries the echoed booking summary.
type BookAppointmentResult struct {
	Appointment  appointment.Appointment
	MechanicName string
}

// BookAppointmentDeps holds dependencies for BookAppointment.
type BookAppointmentDeps struct {
	MechanicStore    MechanicLookupStore
	AppointmentStore BookingStore
	Now              func() time.Time
}

// ExecuteBookAppointment validates a booking request and persists it.
// Validation order and messages are part of the API contract; the duplicate
// and capacity checks run inside the store's booking transaction.
// PRE: deps stores are non-nil
// POST: On success an appointment row exists for the request
func ExecuteBookAppointment(ctx context.Context, input BookAppointmentInput, deps BookAppointmentDeps) (BookAppointmentResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	if anyEmpty(input.ClientName, input.ClientAddress, input.ClientPhone,
		input.CarLicense, input.CarEngine, input.AppointmentDate, input.MechanicID) {
		return BookAppointmentResult{}, appointment.ErrAllFieldsRequired
	}
	if !appointment.AllDigits(input.ClientPhone) {
		return BookAppointmentResult{}, appointment.ErrPhoneNotNumeric
	}
	if !appointment.AllDigits(input.CarEngine) {
		return BookAppointmentResult{}, appointment.ErrEngineNotNumeric
	}
	if !appointment.IsFutureDate(input.AppointmentDate, now()) {
		return BookAppointmentResult{}, appointment.ErrDateNotFuture
	}

	mechanicID, err := strconv.ParseInt(input.MechanicID, 10, 64)
	if err != nil {
		return BookAppointmentResult{}, appointment.ErrMechanicNotFound
	}
	m, err := deps.MechanicStore.GetByID(ctx, mechanicID)
	if err != nil {
		return BookAppointmentResult{}, appointment.ErrMechanicNotFound
	}

	booked, err := deps.AppointmentStore.Book(ctx, appointment.Appointment{
		ClientName:      input.ClientName,
		ClientAddress:   input.ClientAddress,
		ClientPhone:     input.ClientPhone,
		CarLicense:      input.CarLicense,
		CarEngine:       input.CarEngine,
		AppointmentDate: input.AppointmentDate,
		MechanicID:      mechanicID,
	})
	if err != nil {
		return BookAppointmentResult{}, err
	}

	slog.Info("booking_event", "event", "appointment_booked",
		"appointment_id", booked.ID, "mechanic_id", mechanicID,
		"date", booked.AppointmentDate)

	return BookAppointmentResult{Appointment: booked, MechanicName: m.Name}, nil
}

// anyEmpty reports whether any of the values is empty after trimming.
func anyEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

package orchestrators

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"garage/internal/domain/appointment"
)

// AppointmentUpdateStore defines the appointment store interface needed for
// the admin update flow.
type AppointmentUpdateStore interface {
	GetByID(ctx context.Context, id int64) (appointment.Appointment, error)
	Update(ctx context.Context, a appointment.Appointment) error
}

// UpdateAppointmentInput carries the raw form fields of an admin update.
// The client address is deliberately absent: update does not modify it.
type UpdateAppointmentInput struct {
	AppointmentID   string
	ClientName      string
	ClientPhone     string
	CarLicense      string
	CarEngine       string
	AppointmentDate string
	MechanicID      string
}

// UpdateAppointmentResult carries the echoed update summary.
type UpdateAppointmentResult struct {
	Appointment  appointment.Appointment
	MechanicName string
}

// UpdateAppointmentDeps holds dependencies for UpdateAppointment.
type UpdateAppointmentDeps struct {
	MechanicStore    MechanicLookupStore
	AppointmentStore AppointmentUpdateStore
	Now              func() time.Time
}

// ExecuteUpdateAppointment re-validates and rewrites an existing appointment.
// The same strictly-future date rule as booking applies; capacity and
// duplicate checks exclude the appointment's own row inside the store
// transaction.
// PRE: deps stores are non-nil
// POST: On success the appointment's mutable fields are rewritten in place
func ExecuteUpdateAppointment(ctx context.Context, input UpdateAppointmentInput, deps UpdateAppointmentDeps) (UpdateAppointmentResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	if input.AppointmentID == "" {
		return UpdateAppointmentResult{}, appointment.ErrIDRequired
	}
	appointmentID, err := strconv.ParseInt(input.AppointmentID, 10, 64)
	if err != nil {
		return UpdateAppointmentResult{}, appointment.ErrNotFound
	}
	existing, err := deps.AppointmentStore.GetByID(ctx, appointmentID)
	if err != nil {
		return UpdateAppointmentResult{}, appointment.ErrNotFound
	}

	if anyEmpty(input.ClientName, input.ClientPhone, input.CarLicense,
		input.CarEngine, input.AppointmentDate, input.MechanicID) {
		return UpdateAppointmentResult{}, appointment.ErrAllFieldsRequired
	}
	if !appointment.AllDigits(input.ClientPhone) {
		return UpdateAppointmentResult{}, appointment.ErrPhoneNotNumeric
	}
	if !appointment.AllDigits(input.CarEngine) {
		return UpdateAppointmentResult{}, appointment.ErrEngineNotNumeric
	}
	if !appointment.IsFutureDate(input.AppointmentDate, now()) {
		return UpdateAppointmentResult{}, appointment.ErrDateNotFuture
	}

	mechanicID, err := strconv.ParseInt(input.MechanicID, 10, 64)
	if err != nil {
		return UpdateAppointmentResult{}, appointment.ErrMechanicNotFound
	}
	m, err := deps.MechanicStore.GetByID(ctx, mechanicID)
	if err != nil {
		return UpdateAppointmentResult{}, appointment.ErrMechanicNotFound
	}

	updated := existing
	updated.ClientName = input.ClientName
	updated.ClientPhone = input.ClientPhone
	updated.CarLicense = input.CarLicense
	updated.CarEngine = input.CarEngine
	updated.AppointmentDate = input.AppointmentDate
	updated.MechanicID = mechanicID

	if err := deps.AppointmentStore.Update(ctx, updated); err != nil {
		return UpdateAppointmentResult{}, err
	}

	slog.Info("booking_event", "event", "appointment_updated",
		"appointment_id", updated.ID, "mechanic_id", mechanicID,
		"date", updated.AppointmentDate)

	return UpdateAppointmentResult{Appointment: updated, MechanicName: m.Name}, nil
}

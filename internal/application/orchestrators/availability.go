package orchestrators

import (
	"context"
	"time"

	"garage/internal/domain/appointment"
	"garage/internal/domain/mechanic"
)

// Availability-query errors. Messages differ slightly from the booking flow
// and are part of the API contract.
var (
	ErrDateRequired     = &appointment.Error{Kind: appointment.KindFieldMissing, Message: "Please provide a date"}
	ErrDateMustBeFuture = &appointment.Error{Kind: appointment.KindDateNotFuture, Message: "Please select a future date"}
)

// MechanicListStore defines the mechanic store interface for availability.
type MechanicListStore interface {
	List(ctx context.Context) ([]mechanic.Mechanic, error)
}

// AppointmentCountStore defines the appointment store interface for availability.
type AppointmentCountStore interface {
	CountForMechanicOnDate(ctx context.Context, mechanicID int64, date string) (int, error)
}

// GetAvailabilityInput carries the requested date.
type GetAvailabilityInput struct {
	Date string
}

// GetAvailabilityDeps holds dependencies for GetAvailability.
type GetAvailabilityDeps struct {
	MechanicStore    MechanicListStore
	AppointmentStore AppointmentCountStore
	Now              func() time.Time
}

// ExecuteGetAvailability annotates every mechanic with the booking load for a
// future date. Fully booked mechanics stay in the list; the caller decides
// what to display or disable.
// PRE: deps stores are non-nil
// POST: One Availability entry per mechanic, ordered by name
func ExecuteGetAvailability(ctx context.Context, input GetAvailabilityInput, deps GetAvailabilityDeps) ([]mechanic.Availability, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	if input.Date == "" {
		return nil, ErrDateRequired
	}
	if !appointment.IsFutureDate(input.Date, now()) {
		return nil, ErrDateMustBeFuture
	}

	mechanics, err := deps.MechanicStore.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]mechanic.Availability, 0, len(mechanics))
	for _, m := range mechanics {
		booked, err := deps.AppointmentStore.CountForMechanicOnDate(ctx, m.ID, input.Date)
		if err != nil {
			return nil, err
		}
		free := appointment.SlotsPerDay - booked
		results = append(results, mechanic.Availability{
			ID:             m.ID,
			Name:           m.Name,
			Specialization: m.Specialization,
			BookedToday:    booked,
			AvailableSlots: free,
			IsAvailable:    free > 0,
		})
	}
	return results, nil
}

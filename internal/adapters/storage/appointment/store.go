package appointment

import (
	"context"

	domain "garage/internal/domain/appointment"
)

// Detail is an Appointment joined with its mechanic's display fields.
// Dangling mechanic references carry fallback values instead of failing.
type Detail struct {
	domain.Appointment
	MechanicName           string `json:"mechanic_name"`
	MechanicSpecialization string `json:"mechanic_specialization,omitempty"`
}

// Store persists Appointment state. Book and Update run their duplicate and
// capacity checks in the same transaction as the write, so two concurrent
// bookings cannot both pass the count check.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Appointment, error)
	ListWithMechanics(ctx context.Context) ([]Detail, error)
	CountForMechanicOnDate(ctx context.Context, mechanicID int64, date string) (int, error)
	Book(ctx context.Context, value domain.Appointment) (domain.Appointment, error)
	Update(ctx context.Context, value domain.Appointment) error
}

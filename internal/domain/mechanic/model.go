package mechanic

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength           = 100
	MaxSpecializationLength = 100
)

// Domain errors
var (
	ErrNameRequired           = errors.New("Mechanic name is required")
	ErrNameTooLong            = errors.New("Mechanic name cannot exceed 100 characters")
	ErrSpecializationRequired = errors.New("Specialization is required")
	ErrSpecializationTooLong  = errors.New("Specialization cannot exceed 100 characters")
	ErrDuplicateName          = errors.New("A mechanic with this name already exists")
	ErrNotFound               = errors.New("Mechanic not found")
	ErrInvalidID              = errors.New("Invalid mechanic ID")
)

// Mechanic is a service provider selectable when booking.
type Mechanic struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// Validate checks if the Mechanic has valid data.
// PRE: Mechanic struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Name and Specialization must not be empty
func (m *Mechanic) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrNameRequired
	}
	if len(m.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if strings.TrimSpace(m.Specialization) == "" {
		return ErrSpecializationRequired
	}
	if len(m.Specialization) > MaxSpecializationLength {
		return ErrSpecializationTooLong
	}
	return nil
}

// Availability annotates a Mechanic with the booking load for one date.
// AvailableSlots counts down from the per-day capacity.
type Availability struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	BookedToday    int    `json:"booked_today"`
	AvailableSlots int    `json:"available_slots"`
	IsAvailable    bool   `json:"is_available"`
}

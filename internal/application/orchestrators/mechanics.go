package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"garage/internal/domain/mechanic"
)

// MechanicAdminStore defines the mechanic store interface for the admin flows.
type MechanicAdminStore interface {
	GetByID(ctx context.Context, id int64) (mechanic.Mechanic, error)
	GetByName(ctx context.Context, name string) (mechanic.Mechanic, error)
	Create(ctx context.Context, m mechanic.Mechanic) (mechanic.Mechanic, error)
	Update(ctx context.Context, m mechanic.Mechanic) error
}

// AddMechanicInput carries the raw form fields of an add-mechanic request.
type AddMechanicInput struct {
	Name           string
	Specialization string
}

// AddMechanicDeps holds dependencies for AddMechanic.
type AddMechanicDeps struct {
	MechanicStore MechanicAdminStore
}

// ExecuteAddMechanic validates and inserts a new mechanic.
// Both fields are trimmed before validation and storage; name uniqueness
// is a case-sensitive exact match on the trimmed name.
// POST: On success the returned mechanic carries its assigned ID
func ExecuteAddMechanic(ctx context.Context, input AddMechanicInput, deps AddMechanicDeps) (mechanic.Mechanic, error) {
	candidate := mechanic.Mechanic{
		Name:           strings.TrimSpace(input.Name),
		Specialization: strings.TrimSpace(input.Specialization),
	}
	if err := candidate.Validate(); err != nil {
		return mechanic.Mechanic{}, err
	}

	if _, err := deps.MechanicStore.GetByName(ctx, candidate.Name); err == nil {
		return mechanic.Mechanic{}, mechanic.ErrDuplicateName
	} else if !errors.Is(err, mechanic.ErrNotFound) {
		return mechanic.Mechanic{}, err
	}

	created, err := deps.MechanicStore.Create(ctx, candidate)
	if err != nil {
		return mechanic.Mechanic{}, err
	}

	slog.Info("mechanic_event", "event", "mechanic_added",
		"mechanic_id", created.ID, "name", created.Name)
	return created, nil
}

// UpdateMechanicInput carries the raw form fields of an update-mechanic request.
type UpdateMechanicInput struct {
	ID             string
	Name           string
	Specialization string
}

// UpdateMechanicDeps holds dependencies for UpdateMechanic.
type UpdateMechanicDeps struct {
	MechanicStore MechanicAdminStore
}

// ExecuteUpdateMechanic validates and rewrites an existing mechanic.
// Both fields are trimmed before validation and storage. Another mechanic
// may not already hold the trimmed target name.
func ExecuteUpdateMechanic(ctx context.Context, input UpdateMechanicInput, deps UpdateMechanicDeps) (mechanic.Mechanic, error) {
	id, err := strconv.ParseInt(input.ID, 10, 64)
	if err != nil || id <= 0 {
		return mechanic.Mechanic{}, mechanic.ErrInvalidID
	}
	updated := mechanic.Mechanic{
		ID:             id,
		Name:           strings.TrimSpace(input.Name),
		Specialization: strings.TrimSpace(input.Specialization),
	}
	if err := updated.Validate(); err != nil {
		return mechanic.Mechanic{}, err
	}

	if _, err := deps.MechanicStore.GetByID(ctx, id); err != nil {
		return mechanic.Mechanic{}, mechanic.ErrNotFound
	}

	if other, err := deps.MechanicStore.GetByName(ctx, updated.Name); err == nil && other.ID != id {
		return mechanic.Mechanic{}, mechanic.ErrDuplicateName
	} else if err != nil && !errors.Is(err, mechanic.ErrNotFound) {
		return mechanic.Mechanic{}, err
	}

	if err := deps.MechanicStore.Update(ctx, updated); err != nil {
		return mechanic.Mechanic{}, err
	}

	slog.Info("mechanic_event", "event", "mechanic_updated",
		"mechanic_id", id, "name", updated.Name)
	return updated, nil
}

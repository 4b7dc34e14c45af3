package orchestrators

import (
	"context"
	"log/slog"

	"garage/internal/domain/mechanic"
)

// MechanicSeedStore defines the store interface needed by SeedMechanics.
type MechanicSeedStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, m mechanic.Mechanic) (mechanic.Mechanic, error)
}

// SeedMechanicsDeps holds dependencies for SeedMechanics.
type SeedMechanicsDeps struct {
	MechanicStore MechanicSeedStore
}

// defaultMechanics are the rows a fresh database is seeded with.
var defaultMechanics = []mechanic.Mechanic{
	{Name: "Md. Joshim", Specialization: "Engine Specialist"},
	{Name: "Rashed Talukdar", Specialization: "Transmission Expert"},
	{Name: "David Kamal", Specialization: "Brake Systems"},
	{Name: "Fakrul Uddin", Specialization: "Electrical Systems"},
	{Name: "Manik Mia", Specialization: "General Maintenance"},
}

// ExecuteSeedMechanics creates the default mechanics if none exist.
// Appointments are never seeded; a fresh install starts with a clean book.
func ExecuteSeedMechanics(ctx context.Context, deps SeedMechanicsDeps) error {
	count, err := deps.MechanicStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded
	}

	for _, m := range defaultMechanics {
		if _, err := deps.MechanicStore.Create(ctx, m); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "mechanics_seeded", "mechanics", len(defaultMechanics))
	return nil
}

package mechanic

import (
	"context"

	domain "garage/internal/domain/mechanic"
)

// Store persists Mechanic state.
type Store interface {
	GetByID(ctx context.Context, id int64) (domain.Mechanic, error)
	GetByName(ctx context.Context, name string) (domain.Mechanic, error)
	List(ctx context.Context) ([]domain.Mechanic, error)
	Create(ctx context.Context, value domain.Mechanic) (domain.Mechanic, error)
	Update(ctx context.Context, value domain.Mechanic) error
	Count(ctx context.Context) (int, error)
}

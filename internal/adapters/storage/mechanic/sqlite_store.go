package mechanic

import (
	"context"
	"database/sql"
	"errors"

	"garage/internal/adapters/storage"
	domain "garage/internal/domain/mechanic"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new mechanic Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Mechanic by its ID.
// PRE: id > 0
// POST: Returns the entity or domain.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Mechanic, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, specialization FROM mechanics WHERE id = ?", id)

	var entity domain.Mechanic
	err := row.Scan(&entity.ID, &entity.Name, &entity.Specialization)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Mechanic{}, domain.ErrNotFound
	}
	return entity, err
}

// GetByName retrieves a Mechanic by exact name (case-sensitive).
// POST: Returns the entity or domain.ErrNotFound
func (s *SQLiteStore) GetByName(ctx context.Context, name string) (domain.Mechanic, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, specialization FROM mechanics WHERE name = ?", name)

	var entity domain.Mechanic
	err := row.Scan(&entity.ID, &entity.Name, &entity.Specialization)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Mechanic{}, domain.ErrNotFound
	}
	return entity, err
}

// List retrieves all Mechanics ordered by name.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Mechanic, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, specialization FROM mechanics ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Mechanic
	for rows.Next() {
		var entity domain.Mechanic
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Specialization); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Create inserts a Mechanic and returns it with the assigned ID.
// PRE: entity has been validated
// POST: Entity is persisted with an auto-assigned ID
func (s *SQLiteStore) Create(ctx context.Context, entity domain.Mechanic) (domain.Mechanic, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO mechanics (name, specialization) VALUES (?, ?)",
		entity.Name, entity.Specialization)
	if err != nil {
		return domain.Mechanic{}, err
	}
	entity.ID, err = res.LastInsertId()
	return entity, err
}

// Update rewrites a Mechanic's name and specialization in place.
// PRE: entity.ID refers to an existing mechanic
func (s *SQLiteStore) Update(ctx context.Context, entity domain.Mechanic) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE mechanics SET name = ?, specialization = ? WHERE id = ?",
		entity.Name, entity.Specialization, entity.ID)
	return err
}

// Count returns the total number of mechanics.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM mechanics").Scan(&count)
	return count, err
}

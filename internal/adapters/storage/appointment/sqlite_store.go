package appointment

import (
	"context"
	"database/sql"
	"errors"

	"garage/internal/adapters/storage"
	domain "garage/internal/domain/appointment"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new appointment Store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves an Appointment by its ID.
// PRE: id > 0
// POST: Returns the entity or domain.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Appointment, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, client_name, client_address, client_phone, car_license,
		       car_engine, appointment_date, mechanic_id, status, created_at
		FROM appointments WHERE id = ?`, id)

	entity, err := scanAppointment(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Appointment{}, domain.ErrNotFound
	}
	return entity, err
}

// ListWithMechanics retrieves all Appointments joined with mechanic display
// fields, ordered by appointment date ascending. Missing mechanics fall back
// to "Unknown Mechanic"/"General".
func (s *SQLiteStore) ListWithMechanics(ctx context.Context) ([]Detail, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.client_name, a.client_address, a.client_phone,
		       a.car_license, a.car_engine, a.appointment_date, a.mechanic_id,
		       a.status, a.created_at,
		       COALESCE(m.name, 'Unknown Mechanic') AS mechanic_name,
		       COALESCE(m.specialization, 'General') AS mechanic_specialization
		FROM appointments a
		LEFT JOIN mechanics m ON a.mechanic_id = m.id
		ORDER BY a.appointment_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Detail
	for rows.Next() {
		var d Detail
		var createdAt sql.NullString
		if err := rows.Scan(
			&d.ID,
			&d.ClientName,
			&d.ClientAddress,
			&d.ClientPhone,
			&d.CarLicense,
			&d.CarEngine,
			&d.AppointmentDate,
			&d.MechanicID,
			&d.Status,
			&createdAt,
			&d.MechanicName,
			&d.MechanicSpecialization,
		); err != nil {
			return nil, err
		}
		d.CreatedAt = createdAt.String
		results = append(results, d)
	}
	return results, rows.Err()
}

// CountForMechanicOnDate returns the number of appointments a mechanic has on a date.
// POST: Returns count >= 0
func (s *SQLiteStore) CountForMechanicOnDate(ctx context.Context, mechanicID int64, date string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM appointments WHERE mechanic_id = ? AND appointment_date = ?",
		mechanicID, date).Scan(&count)
	return count, err
}

// Book inserts a new appointment with its business checks in one transaction:
// the same phone must not already hold a booking on the date, and the mechanic
// must have a free slot. Running both counts and the insert inside the
// transaction closes the check-then-act window between two concurrent bookings;
// the DSN's _txlock=immediate makes the transaction take the write lock on
// BEGIN, so the loser waits at the door instead of failing mid-flight.
// PRE: value has been validated and references an existing mechanic
// POST: Returns the appointment with its assigned ID and defaulted status
func (s *SQLiteStore) Book(ctx context.Context, value domain.Appointment) (domain.Appointment, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Appointment{}, err
	}
	defer tx.Rollback()

	var duplicates int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM appointments WHERE client_phone = ? AND appointment_date = ?",
		value.ClientPhone, value.AppointmentDate).Scan(&duplicates); err != nil {
		return domain.Appointment{}, err
	}
	if duplicates > 0 {
		return domain.Appointment{}, domain.ErrDuplicateBooking
	}

	var booked int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM appointments WHERE mechanic_id = ? AND appointment_date = ?",
		value.MechanicID, value.AppointmentDate).Scan(&booked); err != nil {
		return domain.Appointment{}, err
	}
	if booked >= domain.SlotsPerDay {
		return domain.Appointment{}, domain.ErrMechanicFullyBooked
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO appointments
			(client_name, client_address, client_phone, car_license, car_engine, appointment_date, mechanic_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		value.ClientName, value.ClientAddress, value.ClientPhone,
		value.CarLicense, value.CarEngine, value.AppointmentDate, value.MechanicID)
	if err != nil {
		return domain.Appointment{}, err
	}
	if value.ID, err = res.LastInsertId(); err != nil {
		return domain.Appointment{}, err
	}
	value.Status = domain.StatusConfirmed

	if err := tx.Commit(); err != nil {
		return domain.Appointment{}, err
	}
	return value, nil
}

// Update rewrites an existing appointment's mutable fields, re-running the
// duplicate and capacity checks in the same transaction with the appointment's
// own row excluded. The client address is not an updatable field.
// PRE: value.ID refers to an existing appointment, value has been validated
func (s *SQLiteStore) Update(ctx context.Context, value domain.Appointment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var booked int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM appointments WHERE mechanic_id = ? AND appointment_date = ? AND id != ?",
		value.MechanicID, value.AppointmentDate, value.ID).Scan(&booked); err != nil {
		return err
	}
	if booked >= domain.SlotsPerDay {
		return domain.ErrMechanicFullyBooked
	}

	var duplicates int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM appointments WHERE client_phone = ? AND appointment_date = ? AND id != ?",
		value.ClientPhone, value.AppointmentDate, value.ID).Scan(&duplicates); err != nil {
		return err
	}
	if duplicates > 0 {
		return domain.ErrClientDoubleBooked
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE appointments
		SET client_name = ?, client_phone = ?, car_license = ?, car_engine = ?,
		    appointment_date = ?, mechanic_id = ?
		WHERE id = ?`,
		value.ClientName, value.ClientPhone, value.CarLicense, value.CarEngine,
		value.AppointmentDate, value.MechanicID, value.ID); err != nil {
		return err
	}

	return tx.Commit()
}

// scanAppointment scans one appointment row through the given scan func.
func scanAppointment(scan func(dest ...any) error) (domain.Appointment, error) {
	var entity domain.Appointment
	var createdAt sql.NullString
	err := scan(
		&entity.ID,
		&entity.ClientName,
		&entity.ClientAddress,
		&entity.ClientPhone,
		&entity.CarLicense,
		&entity.CarEngine,
		&entity.AppointmentDate,
		&entity.MechanicID,
		&entity.Status,
		&createdAt,
	)
	entity.CreatedAt = createdAt.String
	return entity, err
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"ayurconnect/models"
)

// PostgresBookingRepository handles database operations for bookings
type PostgresBookingRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresBookingRepository creates a new PostgresBookingRepository
func NewPostgresBookingRepository(db *sql.DB, logger *zap.Logger) *PostgresBookingRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresBookingRepository{db: db, logger: logger}
}

// Ensure PostgresBookingRepository implements BookingRepositoryInterface
var _ BookingRepositoryInterface = (*PostgresBookingRepository)(nil)

const bookingColumns = `id, patient_id, doctor_id, patient_name, doctor_name, date, time, status,
	speciality, appointment_type, location, contact_number`

func (r *PostgresBookingRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE patient_id = $1 ORDER BY created_at ASC`, patientID)
}

func (r *PostgresBookingRepository) ListByDoctor(ctx context.Context, doctorID string) ([]models.Booking, error) {
	return r.query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE doctor_id = $1 ORDER BY created_at ASC`, doctorID)
}

func (r *PostgresBookingRepository) Insert(ctx context.Context, b *models.Booking) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID, b.PatientID, b.DoctorID, b.PatientName, b.DoctorName, b.Date, b.Time, string(b.Status),
		b.Speciality, b.AppointmentType, b.Location, b.ContactNumber,
	)
	if err != nil {
		r.logger.Error("failed to insert booking", zap.String("booking_id", b.ID), zap.Error(err))
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *PostgresBookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	return nil
}

func (r *PostgresBookingRepository) query(ctx context.Context, stmt string, arg string) ([]models.Booking, error) {
	rows, err := r.db.QueryContext(ctx, stmt, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		var status string
		if err := rows.Scan(&b.ID, &b.PatientID, &b.DoctorID, &b.PatientName, &b.DoctorName, &b.Date, &b.Time,
			&status, &b.Speciality, &b.AppointmentType, &b.Location, &b.ContactNumber); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		b.Status = models.BookingStatus(status)
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}

package repository

import (
	"context"
	"fmt"
	"sync"

	"ayurconnect/models"
)

// MemoryBookingRepository keeps bookings in memory, in insertion order
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewMemoryBookingRepository creates a repository holding a copy of seed
func NewMemoryBookingRepository(seed []models.Booking) *MemoryBookingRepository {
	bookings := make([]models.Booking, len(seed))
	copy(bookings, seed)
	return &MemoryBookingRepository{bookings: bookings}
}

// Ensure MemoryBookingRepository implements BookingRepositoryInterface
var _ BookingRepositoryInterface = (*MemoryBookingRepository)(nil)

func (r *MemoryBookingRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool { return b.PatientID == patientID }), nil
}

func (r *MemoryBookingRepository) ListByDoctor(ctx context.Context, doctorID string) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool { return b.DoctorID == doctorID }), nil
}

func (r *MemoryBookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.ID == booking.ID {
			return fmt.Errorf("booking %s already exists", booking.ID)
		}
	}
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *MemoryBookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrBookingNotFound, id)
}

func (r *MemoryBookingRepository) list(keep func(models.Booking) bool) []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

package repository

import (
	"context"
	"errors"

	"ayurconnect/models"
)

// ErrBookingNotFound is returned when a booking id does not exist
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepositoryInterface defines the contract for booking repository operations
type BookingRepositoryInterface interface {
	ListByPatient(ctx context.Context, patientID string) ([]models.Booking, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) error
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) error
}

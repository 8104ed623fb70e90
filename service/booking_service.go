package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ayurconnect/models"
	"ayurconnect/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const bookingDateLayout = "2006-01-02"

// BookingService implements the booking operations on top of a booking repository.
// Every operation answers with a BookingResponse; the error carries the failure kind for the HTTP layer.
type BookingService struct {
	repo   repository.BookingRepositoryInterface
	logger *zap.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(repo repository.BookingRepositoryInterface, logger *zap.Logger) *BookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{repo: repo, logger: logger}
}

// GetPatientBookings lists the bookings of a patient
func (s *BookingService) GetPatientBookings(ctx context.Context, patientID string) (models.BookingResponse, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return failure(models.NewValidationError("patientId", "patient id is required"))
	}
	bookings, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		s.logger.Error("failed to list patient bookings", zap.String("patient_id", patientID), zap.Error(err))
		return failure(fmt.Errorf("failed to list bookings: %w", err))
	}
	return models.BookingResponse{Success: true, Data: bookings}, nil
}

// GetDoctorBookings lists the bookings of a doctor
func (s *BookingService) GetDoctorBookings(ctx context.Context, doctorID string) (models.BookingResponse, error) {
	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		return failure(models.NewValidationError("doctorId", "doctor id is required"))
	}
	bookings, err := s.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		s.logger.Error("failed to list doctor bookings", zap.String("doctor_id", doctorID), zap.Error(err))
		return failure(fmt.Errorf("failed to list bookings: %w", err))
	}
	return models.BookingResponse{Success: true, Data: bookings}, nil
}

// CreateBooking validates req and stores a new upcoming booking
func (s *BookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (models.BookingResponse, error) {
	if err := validateBookingRequest(req); err != nil {
		return failure(err)
	}

	booking := models.Booking{
		ID:              uuid.NewString(),
		PatientID:       strings.TrimSpace(req.PatientID),
		DoctorID:        strings.TrimSpace(req.DoctorID),
		PatientName:     strings.TrimSpace(req.PatientName),
		DoctorName:      strings.TrimSpace(req.DoctorName),
		Date:            strings.TrimSpace(req.Date),
		Time:            strings.TrimSpace(req.Time),
		Status:          models.BookingUpcoming,
		Speciality:      strings.TrimSpace(req.Speciality),
		AppointmentType: strings.TrimSpace(req.AppointmentType),
		Location:        strings.TrimSpace(req.Location),
		ContactNumber:   strings.TrimSpace(req.ContactNumber),
	}

	if err := s.repo.Insert(ctx, &booking); err != nil {
		s.logger.Error("failed to create booking", zap.Error(err))
		return failure(fmt.Errorf("failed to create booking: %w", err))
	}

	s.logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("patient_id", booking.PatientID),
		zap.String("doctor_id", booking.DoctorID),
	)
	return models.BookingResponse{
		Success: true,
		Data:    []models.Booking{booking},
		Message: "Booking created",
	}, nil
}

// UpdateBookingStatus moves a booking to status
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (models.BookingResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return failure(models.NewValidationError("id", "booking id is required"))
	}
	if !status.Valid() {
		return failure(models.NewValidationError("status", fmt.Sprintf("invalid status %q (expected upcoming, completed or cancelled)", status)))
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if !errors.Is(err, repository.ErrBookingNotFound) {
			s.logger.Error("failed to update booking status", zap.String("booking_id", id), zap.Error(err))
		}
		return failure(fmt.Errorf("failed to update booking: %w", err))
	}

	s.logger.Info("booking status updated", zap.String("booking_id", id), zap.String("status", string(status)))
	return models.BookingResponse{
		Success: true,
		Data:    []models.Booking{},
		Message: "Booking status updated",
	}, nil
}

func validateBookingRequest(req models.CreateBookingRequest) error {
	switch {
	case strings.TrimSpace(req.PatientID) == "":
		return models.NewValidationError("patientId", "patient id is required")
	case strings.TrimSpace(req.DoctorID) == "":
		return models.NewValidationError("doctorId", "doctor id is required")
	case strings.TrimSpace(req.Time) == "":
		return models.NewValidationError("time", "time is required")
	}
	if _, err := time.Parse(bookingDateLayout, strings.TrimSpace(req.Date)); err != nil {
		return models.NewValidationError("date", "date must be formatted as YYYY-MM-DD")
	}
	return nil
}

func failure(err error) (models.BookingResponse, error) {
	return models.BookingResponse{
		Success: false,
		Data:    []models.Booking{},
		Message: err.Error(),
	}, err
}

// BookingGroups splits bookings for the booking pages
type BookingGroups struct {
	Upcoming []models.Booking
	Past     []models.Booking
}

// Completed counts the past bookings that were completed
func (g BookingGroups) Completed() int {
	return lo.CountBy(g.Past, func(b models.Booking) bool { return b.Status == models.BookingCompleted })
}

// Total counts every booking
func (g BookingGroups) Total() int {
	return len(g.Upcoming) + len(g.Past)
}

// SplitBookings separates upcoming bookings from completed and cancelled ones, keeping order
func SplitBookings(bookings []models.Booking) BookingGroups {
	isUpcoming := func(b models.Booking, _ int) bool { return b.Status == models.BookingUpcoming }
	return BookingGroups{
		Upcoming: lo.Filter(bookings, isUpcoming),
		Past:     lo.Reject(bookings, isUpcoming),
	}
}

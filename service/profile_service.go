package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"ayurconnect/models"

	"go.uber.org/zap"
)

// Profiles shown when no profile id is given
const (
	DefaultPatientID = "p-1"
	DefaultDoctorID  = "d-1"
)

const dateOfBirthLayout = "02/01/2006"

// PasswordMismatchMessage is shown when the new and confirmed passwords differ
const PasswordMismatchMessage = "New password and confirm password do not match"

// ErrProfileNotFound is returned for an unknown profile id
var ErrProfileNotFound = errors.New("profile not found")

// ProfileService keeps profile drafts in memory, keyed by profile id
type ProfileService struct {
	mu       sync.RWMutex
	patients map[string]models.PatientProfile
	doctors  map[string]models.DoctorProfile
	logger   *zap.Logger
}

// NewProfileService creates a ProfileService holding the default profiles
func NewProfileService(logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{
		patients: map[string]models.PatientProfile{
			DefaultPatientID: {
				ID:            DefaultPatientID,
				FullName:      "Sarath Ananda",
				ContactNumber: "077 325 6748",
				Address:       "No.17, Katubedda, Moratuwa.",
				DateOfBirth:   "16/06/1993",
			},
		},
		doctors: map[string]models.DoctorProfile{
			DefaultDoctorID: {
				ID:            DefaultDoctorID,
				Name:          "Dr. Ajith Perera",
				ContactNumber: "0715487432",
				Location:      "Colombo",
				Speciality:    "Neurology",
				Experience:    "12 years",
				Languages:     "Sinhala, English",
			},
		},
		logger: logger,
	}
}

// Patient returns the patient profile with id
func (s *ProfileService) Patient(ctx context.Context, id string) (models.PatientProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.patients[id]
	if !ok {
		return models.PatientProfile{}, fmt.Errorf("%w: patient %s", ErrProfileNotFound, id)
	}
	return p, nil
}

// Doctor returns the doctor profile with id
func (s *ProfileService) Doctor(ctx context.Context, id string) (models.DoctorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.doctors[id]
	if !ok {
		return models.DoctorProfile{}, fmt.Errorf("%w: doctor %s", ErrProfileNotFound, id)
	}
	return d, nil
}

// SavePatient validates draft and replaces the stored patient profile
func (s *ProfileService) SavePatient(ctx context.Context, draft models.PatientProfile) (models.PatientProfile, error) {
	draft = trimPatient(draft)
	if err := validatePatient(draft); err != nil {
		return draft, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.patients[draft.ID]; !ok {
		return draft, fmt.Errorf("%w: patient %s", ErrProfileNotFound, draft.ID)
	}
	s.patients[draft.ID] = draft
	s.logger.Info("patient profile saved", zap.String("profile_id", draft.ID))
	return draft, nil
}

// SaveDoctor validates draft and replaces the stored doctor profile
func (s *ProfileService) SaveDoctor(ctx context.Context, draft models.DoctorProfile) (models.DoctorProfile, error) {
	draft = trimDoctor(draft)
	if err := validateDoctor(draft); err != nil {
		return draft, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.doctors[draft.ID]; !ok {
		return draft, fmt.Errorf("%w: doctor %s", ErrProfileNotFound, draft.ID)
	}
	s.doctors[draft.ID] = draft
	s.logger.Info("doctor profile saved", zap.String("profile_id", draft.ID))
	return draft, nil
}

// ChangePassword validates a password change. Nothing is stored.
func (s *ProfileService) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	switch {
	case change.CurrentPassword == "":
		return models.NewValidationError("currentPassword", "Current password is required")
	case change.NewPassword == "":
		return models.NewValidationError("newPassword", "New password is required")
	case change.ConfirmPassword == "":
		return models.NewValidationError("confirmPassword", "Please confirm the new password")
	case change.NewPassword != change.ConfirmPassword:
		return models.NewValidationError("confirmPassword", PasswordMismatchMessage)
	}
	s.logger.Info("password change accepted")
	return nil
}

func trimPatient(p models.PatientProfile) models.PatientProfile {
	p.ID = strings.TrimSpace(p.ID)
	p.FullName = strings.TrimSpace(p.FullName)
	p.ContactNumber = strings.TrimSpace(p.ContactNumber)
	p.Address = strings.TrimSpace(p.Address)
	p.DateOfBirth = strings.TrimSpace(p.DateOfBirth)
	p.MedicalNotes = strings.TrimSpace(p.MedicalNotes)
	return p
}

func trimDoctor(d models.DoctorProfile) models.DoctorProfile {
	d.ID = strings.TrimSpace(d.ID)
	d.Name = strings.TrimSpace(d.Name)
	d.ContactNumber = strings.TrimSpace(d.ContactNumber)
	d.Location = strings.TrimSpace(d.Location)
	d.Speciality = strings.TrimSpace(d.Speciality)
	d.Qualifications = strings.TrimSpace(d.Qualifications)
	d.Experience = strings.TrimSpace(d.Experience)
	d.Languages = strings.TrimSpace(d.Languages)
	return d
}

func validatePatient(p models.PatientProfile) error {
	switch {
	case p.FullName == "":
		return models.NewValidationError("fullName", "Full name is required")
	case p.Address == "":
		return models.NewValidationError("address", "Address is required")
	}
	if err := validateContactNumber(p.ContactNumber); err != nil {
		return err
	}
	if _, err := time.Parse(dateOfBirthLayout, p.DateOfBirth); err != nil {
		return models.NewValidationError("dateOfBirth", "Date of birth must be formatted as DD/MM/YYYY")
	}
	return nil
}

func validateDoctor(d models.DoctorProfile) error {
	if d.Name == "" {
		return models.NewValidationError("name", "Name is required")
	}
	return validateContactNumber(d.ContactNumber)
}

// validateContactNumber accepts digits with optional spaces, dashes and a leading plus
func validateContactNumber(number string) error {
	digits := 0
	for i, r := range number {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-':
		case r == '+' && i == 0:
		default:
			return models.NewValidationError("contactNumber", "Contact number may only contain digits")
		}
	}
	if digits < 9 {
		return models.NewValidationError("contactNumber", "Contact number must have at least 9 digits")
	}
	return nil
}

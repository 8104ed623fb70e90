package controller

import (
	"errors"
	"net/http"
	"strings"

	"ayurconnect/catalog"
	"ayurconnect/models"
	"ayurconnect/service"

	"go.uber.org/zap"
)

// ProfileController handles the profile pages, their forms and the password overlay
type ProfileController struct {
	profiles *service.ProfileService
	pages    pageWriter
	logger   *zap.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profiles *service.ProfileService, renderer *service.PageRenderer, logger *zap.Logger) *ProfileController {
	return &ProfileController{
		profiles: profiles,
		pages:    pageWriter{renderer: renderer, logger: logger},
		logger:   logger,
	}
}

// PatientPage handles GET /patientProfile. overlay=password opens the password change.
func (c *ProfileController) PatientPage(w http.ResponseWriter, r *http.Request) {
	patient, err := c.profiles.Patient(r.Context(), profileID(r, service.DefaultPatientID))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	page := service.NewPatientProfilePage(patient, catalog.ParseOverlay(r.URL.Query().Get("overlay")))
	c.writeProfile(w, r, http.StatusOK, page)
}

// SavePatient handles POST /patientProfile
func (c *ProfileController) SavePatient(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	draft := models.PatientProfile{
		ID:            formID(r, service.DefaultPatientID),
		FullName:      r.PostForm.Get("fullName"),
		ContactNumber: r.PostForm.Get("contactNumber"),
		Address:       r.PostForm.Get("address"),
		DateOfBirth:   r.PostForm.Get("dateOfBirth"),
		MedicalNotes:  r.PostForm.Get("medicalNotes"),
	}

	saved, err := c.profiles.SavePatient(r.Context(), draft)
	if err != nil {
		c.rejectDraft(w, r, err, service.NewPatientProfilePage(saved, catalog.NoOverlay()))
		return
	}
	http.Redirect(w, r, "/patientProfile?saved=1", http.StatusSeeOther)
}

// PatientPassword handles POST /patientProfile/password
func (c *ProfileController) PatientPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	patient, err := c.profiles.Patient(r.Context(), formID(r, service.DefaultPatientID))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	c.changePassword(w, r, service.NewPatientProfilePage(patient, catalog.PasswordChange()))
}

// DoctorPage handles GET /doctorProfile. overlay=password opens the password change.
func (c *ProfileController) DoctorPage(w http.ResponseWriter, r *http.Request) {
	doctor, err := c.profiles.Doctor(r.Context(), profileID(r, service.DefaultDoctorID))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	page := service.NewDoctorProfilePage(doctor, catalog.ParseOverlay(r.URL.Query().Get("overlay")))
	c.writeProfile(w, r, http.StatusOK, page)
}

// SaveDoctor handles POST /doctorProfile
func (c *ProfileController) SaveDoctor(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	draft := models.DoctorProfile{
		ID:             formID(r, service.DefaultDoctorID),
		Name:           r.PostForm.Get("name"),
		ContactNumber:  r.PostForm.Get("contactNumber"),
		Location:       r.PostForm.Get("location"),
		Speciality:     r.PostForm.Get("speciality"),
		Qualifications: r.PostForm.Get("qualifications"),
		Experience:     r.PostForm.Get("experience"),
		Languages:      r.PostForm.Get("languages"),
	}

	saved, err := c.profiles.SaveDoctor(r.Context(), draft)
	if err != nil {
		c.rejectDraft(w, r, err, service.NewDoctorProfilePage(saved, catalog.NoOverlay()))
		return
	}
	http.Redirect(w, r, "/doctorProfile?saved=1", http.StatusSeeOther)
}

// DoctorPassword handles POST /doctorProfile/password
func (c *ProfileController) DoctorPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	doctor, err := c.profiles.Doctor(r.Context(), formID(r, service.DefaultDoctorID))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	c.changePassword(w, r, service.NewDoctorProfilePage(doctor, catalog.PasswordChange()))
}

// changePassword validates the overlay form; a rejected change renders the overlay again with the message
func (c *ProfileController) changePassword(w http.ResponseWriter, r *http.Request, page *service.ProfilePage) {
	change := models.PasswordChange{
		CurrentPassword: r.PostForm.Get("currentPassword"),
		NewPassword:     r.PostForm.Get("newPassword"),
		ConfirmPassword: r.PostForm.Get("confirmPassword"),
	}

	err := c.profiles.ChangePassword(r.Context(), change)
	var vErr *models.ValidationError
	switch {
	case err == nil:
		http.Redirect(w, r, page.Path+"?password=changed", http.StatusSeeOther)
	case errors.As(err, &vErr):
		page.PasswordError = vErr.Message
		c.writeProfile(w, r, http.StatusBadRequest, page)
	default:
		c.logger.Error("password change failed", zap.Error(err))
		http.Error(w, "Failed to change password", http.StatusInternalServerError)
	}
}

// rejectDraft renders the submitted draft again with the validation message
func (c *ProfileController) rejectDraft(w http.ResponseWriter, r *http.Request, err error, page *service.ProfilePage) {
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	page.FormError = vErr.Message
	c.writeProfile(w, r, http.StatusBadRequest, page)
}

func (c *ProfileController) writeProfile(w http.ResponseWriter, r *http.Request, status int, page *service.ProfilePage) {
	query := r.URL.Query()
	page.Saved = query.Get("saved") == "1"
	page.PasswordChanged = query.Get("password") == "changed"
	c.pages.write(w, status, service.PageProfile, service.Page{
		Title:   page.Heading,
		Active:  page.Path,
		Content: page,
	})
}

func profileID(r *http.Request, fallback string) string {
	if id := strings.TrimSpace(r.URL.Query().Get("id")); id != "" {
		return id
	}
	return fallback
}

// formID reads the profile id of a parsed form
func formID(r *http.Request, fallback string) string {
	if id := strings.TrimSpace(r.PostForm.Get("id")); id != "" {
		return id
	}
	return fallback
}

package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"ayurconnect/models"
	"ayurconnect/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BookingController handles the booking API and the booking pages
type BookingController struct {
	bookings *service.BookingService
	pages    pageWriter
	logger   *zap.Logger
}

// NewBookingController creates a new BookingController
func NewBookingController(bookings *service.BookingService, renderer *service.PageRenderer, logger *zap.Logger) *BookingController {
	return &BookingController{
		bookings: bookings,
		pages:    pageWriter{renderer: renderer, logger: logger},
		logger:   logger,
	}
}

// PatientBookings handles GET /api/patients/{id}/bookings
func (c *BookingController) PatientBookings(w http.ResponseWriter, r *http.Request) {
	resp, err := c.bookings.GetPatientBookings(r.Context(), chi.URLParam(r, "id"))
	writeBookingResponse(w, http.StatusOK, resp, err)
}

// DoctorBookings handles GET /api/doctors/{id}/bookings
func (c *BookingController) DoctorBookings(w http.ResponseWriter, r *http.Request) {
	resp, err := c.bookings.GetDoctorBookings(r.Context(), chi.URLParam(r, "id"))
	writeBookingResponse(w, http.StatusOK, resp, err)
}

// Create handles POST /api/bookings
func (c *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warn("invalid booking request body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, models.BookingResponse{
			Success: false,
			Data:    []models.Booking{},
			Message: fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	resp, err := c.bookings.CreateBooking(r.Context(), req)
	writeBookingResponse(w, http.StatusCreated, resp, err)
}

// UpdateStatus handles PUT /api/bookings/{id}/status
func (c *BookingController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.BookingResponse{
			Success: false,
			Data:    []models.Booking{},
			Message: fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	resp, err := c.bookings.UpdateBookingStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	writeBookingResponse(w, http.StatusOK, resp, err)
}

func writeBookingResponse(w http.ResponseWriter, okStatus int, resp models.BookingResponse, err error) {
	if err != nil {
		writeJSON(w, statusFor(err), resp)
		return
	}
	writeJSON(w, okStatus, resp)
}

// bookingsView selects which side of a booking a page shows
type bookingsView struct {
	role      string
	heading   string
	path      string
	param     string
	defaultID string
	list      func(ctx context.Context, id string) (models.BookingResponse, error)
}

func (c *BookingController) patientView() bookingsView {
	return bookingsView{
		role:      "patient",
		heading:   "My Bookings",
		path:      "/patientBookings",
		param:     "patientId",
		defaultID: service.DefaultPatientID,
		list:      c.bookings.GetPatientBookings,
	}
}

func (c *BookingController) doctorView() bookingsView {
	return bookingsView{
		role:      "doctor",
		heading:   "My Appointments",
		path:      "/doctorBookings",
		param:     "doctorId",
		defaultID: service.DefaultDoctorID,
		list:      c.bookings.GetDoctorBookings,
	}
}

// PatientPage handles GET /patientBookings
func (c *BookingController) PatientPage(w http.ResponseWriter, r *http.Request) {
	c.renderBookings(w, r, c.patientView())
}

// DoctorPage handles GET /doctorBookings
func (c *BookingController) DoctorPage(w http.ResponseWriter, r *http.Request) {
	c.renderBookings(w, r, c.doctorView())
}

func (c *BookingController) renderBookings(w http.ResponseWriter, r *http.Request, v bookingsView) {
	id := strings.TrimSpace(r.URL.Query().Get(v.param))
	if id == "" {
		id = v.defaultID
	}

	page := &service.BookingsPage{Role: v.role, Heading: v.heading, Path: v.path, OwnerParam: v.param, OwnerID: id}
	status := http.StatusOK
	resp, err := v.list(r.Context(), id)
	if err != nil {
		status = statusFor(err)
		page.Error = resp.Message
	} else {
		page.Groups = service.SplitBookings(resp.Data)
	}

	c.pages.write(w, status, service.PageBookings, service.Page{
		Title:   v.heading,
		Active:  v.path,
		Content: page,
	})
}

// PatientStatusForm handles POST /patientBookings/{id}/status
func (c *BookingController) PatientStatusForm(w http.ResponseWriter, r *http.Request) {
	c.statusForm(w, r, c.patientView())
}

// DoctorStatusForm handles POST /doctorBookings/{id}/status
func (c *BookingController) DoctorStatusForm(w http.ResponseWriter, r *http.Request) {
	c.statusForm(w, r, c.doctorView())
}

func (c *BookingController) statusForm(w http.ResponseWriter, r *http.Request, v bookingsView) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	status := models.BookingStatus(r.PostForm.Get("status"))
	if _, err := c.bookings.UpdateBookingStatus(r.Context(), chi.URLParam(r, "id"), status); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	http.Redirect(w, r, v.pageURL(r.PostForm.Get(v.param)), http.StatusSeeOther)
}

// pageURL links back to the bookings of owner. The default owner keeps the bare path.
func (v bookingsView) pageURL(owner string) string {
	owner = strings.TrimSpace(owner)
	if owner == "" || owner == v.defaultID {
		return v.path
	}
	return v.path + "?" + url.Values{v.param: {owner}}.Encode()
}

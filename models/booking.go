package models

// BookingStatus is the lifecycle state of an appointment.
type BookingStatus string

const (
	BookingUpcoming  BookingStatus = "upcoming"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingUpcoming, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking represents an appointment between a patient and a doctor
type Booking struct {
	ID              string        `json:"id" yaml:"id"`
	PatientID       string        `json:"patientId,omitempty" yaml:"patient_id"`
	DoctorID        string        `json:"doctorId,omitempty" yaml:"doctor_id"`
	PatientName     string        `json:"patientName,omitempty" yaml:"patient_name"`
	DoctorName      string        `json:"doctorName,omitempty" yaml:"doctor_name"`
	Date            string        `json:"date" yaml:"date"`
	Time            string        `json:"time" yaml:"time"`
	Status          BookingStatus `json:"status" yaml:"status"`
	Speciality      string        `json:"speciality,omitempty" yaml:"speciality"`
	AppointmentType string        `json:"appointmentType,omitempty" yaml:"appointment_type"`
	Location        string        `json:"location,omitempty" yaml:"location"`
	ContactNumber   string        `json:"contactNumber,omitempty" yaml:"contact_number"`
}

// CreateBookingRequest represents the request body for creating a booking
type CreateBookingRequest struct {
	PatientID       string `json:"patientId"`
	DoctorID        string `json:"doctorId"`
	PatientName     string `json:"patientName"`
	DoctorName      string `json:"doctorName"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Speciality      string `json:"speciality"`
	AppointmentType string `json:"appointmentType"`
	Location        string `json:"location"`
	ContactNumber   string `json:"contactNumber"`
}

// UpdateBookingStatusRequest represents the request body for PUT /api/bookings/{id}/status
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status"`
}

// BookingResponse is the envelope every booking operation returns
type BookingResponse struct {
	Success bool      `json:"success"`
	Data    []Booking `json:"data"`
	Message string    `json:"message,omitempty"`
}

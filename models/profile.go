package models

// PatientProfile is the editable draft shown on the patient profile page.
type PatientProfile struct {
	ID            string `json:"id"`
	FullName      string `json:"fullName"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
	DateOfBirth   string `json:"dateOfBirth"`
	MedicalNotes  string `json:"medicalNotes"`
}

// DoctorProfile is the editable draft shown on the doctor profile page.
type DoctorProfile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ContactNumber  string `json:"contactNumber"`
	Location       string `json:"location"`
	Speciality     string `json:"speciality"`
	Qualifications string `json:"qualifications"`
	Experience     string `json:"experience"`
	Languages      string `json:"languages"`
}

// PasswordChange holds the three fields of the change-password overlay.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

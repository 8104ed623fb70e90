package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"unicode"

	"ayurconnect/catalog"
	"ayurconnect/models"

	"github.com/samber/lo"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names
const (
	PageHome     = "home"
	PageLogin    = "login"
	PageCatalog  = "catalog"
	PageBookings = "bookings"
	PageProfile  = "profile"
)

// NavLink is one entry of the navigation bar
type NavLink struct {
	Label string
	Path  string
}

// Page is the data every page template receives
type Page struct {
	Title   string
	Active  string
	Print   bool
	Nav     []NavLink
	Content any
}

// HomePage lists the catalogs on the landing page
type HomePage struct {
	Catalogs []PageInfo
}

// LoginPage is the login form with the role selection overlay
type LoginPage struct {
	ShowRoles bool
	SignupURL string
	CloseURL  string
}

// NewLoginPage derives the login page from the active overlay
func NewLoginPage(overlay catalog.Overlay) *LoginPage {
	return &LoginPage{
		ShowRoles: overlay.Kind() == catalog.OverlayRoleSelection,
		SignupURL: PageURL("/login", "", catalog.RoleSelection()),
		CloseURL:  "/login",
	}
}

// BookingsPage lists the bookings of a patient or a doctor
type BookingsPage struct {
	Role    string
	Heading string
	Path    string
	// OwnerParam and OwnerID name whose bookings are listed; status forms post them back
	OwnerParam string
	OwnerID    string
	Groups     BookingGroups
	Error      string
}

// ProfileField is one editable input of a profile form
type ProfileField struct {
	Name      string
	Label     string
	Value     string
	Multiline bool
}

// ProfilePage is a profile form with the password change overlay
type ProfilePage struct {
	Role            string
	Heading         string
	Path            string
	ProfileID       string
	Fields          []ProfileField
	Saved           bool
	PasswordChanged bool
	FormError       string
	ShowPassword    bool
	PasswordError   string
	PasswordURL     string
}

// NewPatientProfilePage builds the patient profile form
func NewPatientProfilePage(p models.PatientProfile, overlay catalog.Overlay) *ProfilePage {
	return newProfilePage("patient", "My Profile", "/patientProfile", p.ID, overlay, []ProfileField{
		{Name: "fullName", Label: "Full Name", Value: p.FullName},
		{Name: "contactNumber", Label: "Contact Number", Value: p.ContactNumber},
		{Name: "address", Label: "Address", Value: p.Address, Multiline: true},
		{Name: "dateOfBirth", Label: "Date of Birth", Value: p.DateOfBirth},
		{Name: "medicalNotes", Label: "Medical Notes", Value: p.MedicalNotes, Multiline: true},
	})
}

// NewDoctorProfilePage builds the doctor profile form
func NewDoctorProfilePage(d models.DoctorProfile, overlay catalog.Overlay) *ProfilePage {
	return newProfilePage("doctor", "Doctor Profile", "/doctorProfile", d.ID, overlay, []ProfileField{
		{Name: "name", Label: "Name", Value: d.Name},
		{Name: "contactNumber", Label: "Contact Number", Value: d.ContactNumber},
		{Name: "location", Label: "Location", Value: d.Location},
		{Name: "speciality", Label: "Speciality", Value: d.Speciality},
		{Name: "qualifications", Label: "Qualifications", Value: d.Qualifications, Multiline: true},
		{Name: "experience", Label: "Experience", Value: d.Experience},
		{Name: "languages", Label: "Languages", Value: d.Languages},
	})
}

func newProfilePage(role, heading, path, id string, overlay catalog.Overlay, fields []ProfileField) *ProfilePage {
	return &ProfilePage{
		Role:         role,
		Heading:      heading,
		Path:         path,
		ProfileID:    id,
		Fields:       fields,
		ShowPassword: overlay.Kind() == catalog.OverlayPasswordChange,
		PasswordURL:  PageURL(path, "", catalog.PasswordChange()),
	}
}

type bookingRow struct {
	Role    string
	Booking models.Booking
}

var templateFuncs = template.FuncMap{
	"lower": strings.ToLower,
	"label": label,
	"bookingRow": func(role string, b models.Booking) bookingRow {
		return bookingRow{Role: role, Booking: b}
	},
}

// label turns an attribute key into a heading, e.g. "speciality" -> "Speciality"
func label(key string) string {
	if key == "" {
		return ""
	}
	r := []rune(key)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// PageRenderer renders the server-side pages from the embedded templates
type PageRenderer struct {
	pages map[string]*template.Template
	nav   []NavLink
}

// NewPageRenderer parses every page template. The navigation lists the catalogs then the account pages.
func NewPageRenderer(catalogs *Catalogs) (*PageRenderer, error) {
	r := &PageRenderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{PageHome, PageLogin, PageCatalog, PageBookings, PageProfile} {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	r.nav = lo.Map(catalogs.All(), func(b CatalogBrowser, _ int) NavLink {
		info := b.Info()
		return NavLink{Label: info.Title, Path: info.Path}
	})
	r.nav = append(r.nav,
		NavLink{Label: "My Bookings", Path: "/patientBookings"},
		NavLink{Label: "Profile", Path: "/patientProfile"},
		NavLink{Label: "Login", Path: "/login"},
	)
	return r, nil
}

// Render executes the page template name into w. A failed execution writes nothing.
func (r *PageRenderer) Render(w io.Writer, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", name)
	}
	page.Nav = r.nav

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

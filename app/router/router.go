package router

import (
	"net/http"
	"time"

	"ayurconnect/app/controller"
	"ayurconnect/logging"
	"ayurconnect/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Controllers groups every handler the router mounts. Sync is nil when Google Drive is not configured.
type Controllers struct {
	Pages    *controller.PageController
	Catalog  *controller.CatalogController
	Bookings *controller.BookingController
	Profiles *controller.ProfileController
	Sync     *controller.SyncController
}

// New builds the HTTP handler of the server
func New(controllers *Controllers, catalogs *service.Catalogs, requestTimeout time.Duration, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Get("/ping", controller.Ping)

	// Pages
	r.Get("/", controllers.Pages.Home)
	r.Get("/login", controllers.Pages.Login)

	for _, browser := range catalogs.All() {
		info := browser.Info()
		r.Get(info.Path, controllers.Catalog.Page(info.Kind))
		r.Get(info.Path+"/export.pdf", controllers.Catalog.Export(info.Kind))
	}

	r.Get("/patientBookings", controllers.Bookings.PatientPage)
	r.Post("/patientBookings/{id}/status", controllers.Bookings.PatientStatusForm)
	r.Get("/doctorBookings", controllers.Bookings.DoctorPage)
	r.Post("/doctorBookings/{id}/status", controllers.Bookings.DoctorStatusForm)

	r.Get("/patientProfile", controllers.Profiles.PatientPage)
	r.Post("/patientProfile", controllers.Profiles.SavePatient)
	r.Post("/patientProfile/password", controllers.Profiles.PatientPassword)
	r.Get("/doctorProfile", controllers.Profiles.DoctorPage)
	r.Post("/doctorProfile", controllers.Profiles.SaveDoctor)
	r.Post("/doctorProfile/password", controllers.Profiles.DoctorPassword)

	// API
	r.Route("/api", func(r chi.Router) {
		r.Get("/patients/{id}/bookings", controllers.Bookings.PatientBookings)
		r.Get("/doctors/{id}/bookings", controllers.Bookings.DoctorBookings)
		r.Post("/bookings", controllers.Bookings.Create)
		r.Put("/bookings/{id}/status", controllers.Bookings.UpdateStatus)

		r.Get("/{kind}", controllers.Catalog.Search)
		r.Get("/{kind}/{id}", controllers.Catalog.Get)
		r.Get("/{kind}/{id}/image", controllers.Catalog.Image)
	})

	// Admin
	if controllers.Sync != nil {
		r.Post("/admin/images/sync", controllers.Sync.SyncImages)
	}

	return r
}

package service

import (
	"bytes"
	"context"
	"testing"

	"ayurconnect/catalog"
	"ayurconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func renderPage(t *testing.T, name string, page Page) string {
	t.Helper()
	renderer, err := NewPageRenderer(newTestCatalogs(t))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, name, page))
	return buf.String()
}

func TestRenderCatalogPageWithOverlay(t *testing.T) {
	catalogs := newTestCatalogs(t)
	plants, _ := catalogs.Get(KindPlants)
	data, err := plants.Browse(context.Background(), "", catalog.ItemDetail("3"))
	require.NoError(t, err)

	html := renderPage(t, PageCatalog, Page{Title: data.Info.Title, Active: data.Info.Path, Content: data})
	assert.Contains(t, html, "<title>Herbal Plants | AyurConnect</title>")
	assert.Contains(t, html, `class="active">Herbal Plants</a>`)
	assert.Contains(t, html, `role="dialog"`)
	assert.Contains(t, html, "Cultivation Steps")
	assert.Contains(t, html, "<ol><li>Plant seeds or saplings</li>")
	assert.Contains(t, html, `href="/herbalPlants/export.pdf"`)
}

func TestRenderCatalogEmptyAndErrorStates(t *testing.T) {
	catalogs := newTestCatalogs(t)
	plants, _ := catalogs.Get(KindPlants)
	empty, err := plants.Browse(context.Background(), "xyz-no-match", catalog.NoOverlay())
	require.NoError(t, err)

	html := renderPage(t, PageCatalog, Page{Content: empty})
	assert.Contains(t, html, "No herbal plants match your search.")
	assert.Contains(t, html, `value="xyz-no-match"`)
	assert.NotContains(t, html, `role="dialog"`)

	failed, err := plantService(t, failingPlants()).Browse(context.Background(), "", catalog.NoOverlay())
	require.Error(t, err)
	html = renderPage(t, PageCatalog, Page{Content: failed})
	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, `<a href="/herbalPlants">Try again</a>`)
}

func TestRenderPrintModeHidesControls(t *testing.T) {
	catalogs := newTestCatalogs(t)
	plants, _ := catalogs.Get(KindPlants)
	data, err := plants.Browse(context.Background(), "neem", catalog.NoOverlay())
	require.NoError(t, err)

	html := renderPage(t, PageCatalog, Page{Print: true, Content: data})
	assert.NotContains(t, html, "<nav>")
	assert.NotContains(t, html, "See more")
	assert.Contains(t, html, "Neem")
}

func TestRenderArticleBodyIsSanitized(t *testing.T) {
	content := NewContentRenderer()
	def := ArticleDefinition(content, zap.NewNop())
	card := def.Card(models.Article{ID: 9, Title: "Unsafe", Content: "hello <script>alert(1)</script> **world**"})
	view := CardView{CatalogCard: card}

	html := renderPage(t, PageCatalog, Page{Content: &CatalogPage{Info: def.Info, Cards: []CardView{view}, Selected: &view}})
	assert.Contains(t, html, "<strong>world</strong>")
	assert.NotContains(t, html, "<script>")
}

func TestRenderLoginRoleOverlay(t *testing.T) {
	html := renderPage(t, PageLogin, Page{Content: NewLoginPage(catalog.NoOverlay())})
	assert.NotContains(t, html, "I am a Patient")
	assert.Contains(t, html, `href="/login?overlay=role"`)

	html = renderPage(t, PageLogin, Page{Content: NewLoginPage(catalog.ParseOverlay("role"))})
	assert.Contains(t, html, "I am a Patient")
	assert.Contains(t, html, "I am a Doctor")
}

func TestRenderProfilePasswordOverlay(t *testing.T) {
	profiles := NewProfileService(zap.NewNop())
	patient, err := profiles.Patient(context.Background(), DefaultPatientID)
	require.NoError(t, err)

	page := NewPatientProfilePage(patient, catalog.PasswordChange())
	page.PasswordError = PasswordMismatchMessage
	html := renderPage(t, PageProfile, Page{Content: page})
	assert.Contains(t, html, `value="Sarath Ananda"`)
	assert.Contains(t, html, `action="/patientProfile/password"`)
	assert.Contains(t, html, PasswordMismatchMessage)
}

func TestRenderBookingsGroups(t *testing.T) {
	page := &BookingsPage{
		Role:    "doctor",
		Heading: "Appointments",
		Path:    "/doctorBookings",
		Groups: SplitBookings([]models.Booking{
			{ID: "1", PatientName: "Kamala Perera", Date: "2025-09-15", Time: "11:30 AM", Status: models.BookingUpcoming},
			{ID: "2", PatientName: "Rajitha Wickrama", Date: "2025-08-30", Time: "11:00 AM", Status: models.BookingCompleted},
		}),
	}
	html := renderPage(t, PageBookings, Page{Content: page})
	assert.Contains(t, html, "Kamala Perera")
	assert.Contains(t, html, `action="/doctorBookings/1/status"`)
	assert.Contains(t, html, "Mark completed")
	assert.Contains(t, html, "Completed")
	assert.NotContains(t, html, "No past appointments.")
}

func TestRenderHome(t *testing.T) {
	catalogs := newTestCatalogs(t)
	infos := make([]PageInfo, 0)
	for _, b := range catalogs.All() {
		infos = append(infos, b.Info())
	}
	html := renderPage(t, PageHome, Page{Active: "/", Content: &HomePage{Catalogs: infos}})
	assert.Contains(t, html, `href="/remedies">Explore remedies</a>`)
}

func TestRenderUnknownPage(t *testing.T) {
	renderer, err := NewPageRenderer(newTestCatalogs(t))
	require.NoError(t, err)
	assert.Error(t, renderer.Render(&bytes.Buffer{}, "missing", Page{}))
}

package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ayurconnect/catalog"
	"ayurconnect/logging"
	"ayurconnect/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogController handles the catalog pages, the catalog API and its images and exports
type CatalogController struct {
	catalogs *service.Catalogs
	pages    pageWriter
	images   *service.ImageService
	exporter service.PDFExporter
	logger   *zap.Logger
}

// NewCatalogController creates a new CatalogController. images and exporter may be nil.
func NewCatalogController(
	catalogs *service.Catalogs,
	renderer *service.PageRenderer,
	images *service.ImageService,
	exporter service.PDFExporter,
	logger *zap.Logger,
) *CatalogController {
	return &CatalogController{
		catalogs: catalogs,
		pages:    pageWriter{renderer: renderer, logger: logger},
		images:   images,
		exporter: exporter,
		logger:   logger,
	}
}

// Page handles GET on a catalog page, e.g. /herbalPlants?q=neem&overlay=item:3
// A catalog that fails to load renders its error state with status 503.
func (c *CatalogController) Page(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		browser, ok := c.catalogs.Get(kind)
		if !ok {
			http.NotFound(w, r)
			return
		}

		query := r.URL.Query()
		data, err := browser.Browse(r.Context(), query.Get("q"), catalog.ParseOverlay(query.Get("overlay")))
		status := http.StatusOK
		if err != nil {
			status = statusFor(err)
		}

		info := browser.Info()
		c.pages.write(w, status, service.PageCatalog, service.Page{
			Title:   info.Title,
			Active:  info.Path,
			Print:   query.Get("print") == "1",
			Content: data,
		})
	}
}

// Search handles GET /api/{kind}?search=<query>
func (c *CatalogController) Search(w http.ResponseWriter, r *http.Request) {
	browser, ok := c.browser(w, r)
	if !ok {
		return
	}

	items, err := browser.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		logging.FromContext(r.Context(), c.logger).Error("catalog search failed", zap.String("kind", browser.Info().Kind), zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/{kind}/{id}
func (c *CatalogController) Get(w http.ResponseWriter, r *http.Request) {
	browser, ok := c.browser(w, r)
	if !ok {
		return
	}

	item, err := browser.Item(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Image handles GET /api/{kind}/{id}/image?size=thumb|medium
func (c *CatalogController) Image(w http.ResponseWriter, r *http.Request) {
	browser, ok := c.browser(w, r)
	if !ok {
		return
	}
	if c.images == nil {
		writeError(w, service.ErrImageUnavailable)
		return
	}

	id := chi.URLParam(r, "id")
	size := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("size")))
	if size == "" {
		size = service.SizeThumb
	}

	card, err := browser.Card(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := c.images.Optimized(r.Context(), browser.Info().Kind, id, card.ImageRef, size)
	if err != nil {
		if !errors.Is(err, service.ErrImageUnavailable) {
			logging.FromContext(r.Context(), c.logger).Error("failed to serve image", zap.String("kind", browser.Info().Kind), zap.String("id", id), zap.Error(err))
		}
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Export handles GET on a catalog page's export.pdf, e.g. /remedies/export.pdf?q=skin
func (c *CatalogController) Export(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		browser, ok := c.catalogs.Get(kind)
		if !ok {
			http.NotFound(w, r)
			return
		}
		if c.exporter == nil {
			http.Error(w, "PDF export is not available", http.StatusServiceUnavailable)
			return
		}

		info := browser.Info()
		pdf, err := c.exporter.GeneratePDF(r.Context(), info.Path, r.URL.Query().Get("q"))
		if err != nil {
			logging.FromContext(r.Context(), c.logger).Error("failed to export catalog", zap.String("kind", info.Kind), zap.Error(err))
			http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="ayurconnect-%s.pdf"`, info.Kind))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	}
}

func (c *CatalogController) browser(w http.ResponseWriter, r *http.Request) (service.CatalogBrowser, bool) {
	kind := chi.URLParam(r, "kind")
	browser, ok := c.catalogs.Get(kind)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: fmt.Sprintf("unknown catalog %q (expected one of %s)", kind, strings.Join(c.catalogs.Kinds(), ", ")),
		})
		return nil, false
	}
	return browser, true
}

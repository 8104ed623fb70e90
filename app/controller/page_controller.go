package controller

import (
	"net/http"

	"ayurconnect/catalog"
	"ayurconnect/service"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// PageController handles the pages that are not backed by a catalog
type PageController struct {
	catalogs *service.Catalogs
	pages    pageWriter
}

// NewPageController creates a new PageController
func NewPageController(catalogs *service.Catalogs, renderer *service.PageRenderer, logger *zap.Logger) *PageController {
	return &PageController{
		catalogs: catalogs,
		pages:    pageWriter{renderer: renderer, logger: logger},
	}
}

// Home handles GET /
func (c *PageController) Home(w http.ResponseWriter, r *http.Request) {
	infos := lo.Map(c.catalogs.All(), func(b service.CatalogBrowser, _ int) service.PageInfo {
		return b.Info()
	})
	c.pages.write(w, http.StatusOK, service.PageHome, service.Page{
		Active:  "/",
		Content: &service.HomePage{Catalogs: infos},
	})
}

// Login handles GET /login. overlay=role opens the role selection.
func (c *PageController) Login(w http.ResponseWriter, r *http.Request) {
	c.pages.write(w, http.StatusOK, service.PageLogin, service.Page{
		Title:   "Login",
		Active:  "/login",
		Content: service.NewLoginPage(catalog.ParseOverlay(r.URL.Query().Get("overlay"))),
	})
}

// Ping handles GET /ping
func Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package service

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"ayurconnect/catalog"
	"ayurconnect/models"
	"ayurconnect/utils"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Catalog kinds as they appear in API paths and image file names
const (
	KindPlants   = "plants"
	KindRemedies = "remedies"
	KindArticles = "articles"
	KindDoctors  = "doctors"
)

const previewLength = 90

// PlantDefinition configures the herbal plants page
func PlantDefinition() CatalogDefinition[models.Plant] {
	return CatalogDefinition[models.Plant]{
		Info: PageInfo{
			Kind:         KindPlants,
			Path:         "/herbalPlants",
			Title:        "Herbal Plants",
			Intro:        "Discover the healing herbs of Sri Lanka and how to grow them.",
			Placeholder:  "Search by name or medicinal use",
			EmptyMessage: "No herbal plants match your search.",
		},
		Fields: catalog.Fields(
			catalog.Text(func(p models.Plant) string { return p.BotanicalName }),
			catalog.Text(func(p models.Plant) string { return p.LocalName }),
			catalog.List(func(p models.Plant) []string { return p.MedicinalUses }),
		),
		Card: plantCard,
	}
}

func plantCard(p models.Plant) models.CatalogCard {
	return models.CatalogCard{
		ID:          p.CatalogID(),
		Kind:        KindPlants,
		Title:       p.BotanicalName,
		Subtitle:    p.LocalName,
		Description: p.Description,
		Preview:     utils.Truncate(p.Description, previewLength),
		ImageRef:    p.ImageURL,
		Sections: nonEmptySections(
			models.CardSection{Title: "Medicinal Uses", Entries: p.MedicinalUses},
			models.CardSection{Title: "Cultivation Steps", Entries: p.CultivationSteps, Numbered: true},
		),
	}
}

// RemedyDefinition configures the remedies page
func RemedyDefinition() CatalogDefinition[models.Remedy] {
	return CatalogDefinition[models.Remedy]{
		Info: PageInfo{
			Kind:         KindRemedies,
			Path:         "/remedies",
			Title:        "Remedies",
			Intro:        "Time-tested Ayurvedic preparations for everyday ailments.",
			Placeholder:  "Search by remedy, ailment or ingredient",
			EmptyMessage: "No remedies match your search.",
		},
		Fields: catalog.Fields(
			catalog.Text(func(r models.Remedy) string { return r.Name }),
			catalog.Text(func(r models.Remedy) string { return r.Subtitle }),
			catalog.Text(func(r models.Remedy) string { return r.Category }),
			catalog.List(func(r models.Remedy) []string { return r.Uses }),
			catalog.List(func(r models.Remedy) []string { return r.Ingredients }),
		),
		Card: remedyCard,
	}
}

func remedyCard(r models.Remedy) models.CatalogCard {
	return models.CatalogCard{
		ID:          r.CatalogID(),
		Kind:        KindRemedies,
		Title:       r.Name,
		Subtitle:    r.Subtitle,
		Category:    r.Category,
		Description: r.Description,
		Preview:     utils.Truncate(r.Description, previewLength),
		ImageRef:    r.ImageURL,
		Sections: nonEmptySections(
			models.CardSection{Title: "Uses", Entries: r.Uses},
			models.CardSection{Title: "Ingredients", Entries: r.Ingredients},
			models.CardSection{Title: "Preparation", Entries: r.Steps, Numbered: true},
			models.CardSection{Title: "Cautions", Entries: r.Cautions},
		),
	}
}

// ArticleDefinition configures the articles page. Article bodies are rendered with content.
func ArticleDefinition(content *ContentRenderer, logger *zap.Logger) CatalogDefinition[models.Article] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return CatalogDefinition[models.Article]{
		Info: PageInfo{
			Kind:         KindArticles,
			Path:         "/articles",
			Title:        "Articles",
			Intro:        "Read about Ayurvedic living, diet and seasonal care.",
			Placeholder:  "Search by title, category or author",
			EmptyMessage: "No articles match your search.",
		},
		Fields: catalog.Fields(
			catalog.Text(func(a models.Article) string { return a.Title }),
			catalog.Text(func(a models.Article) string { return a.Category }),
			catalog.Text(func(a models.Article) string { return a.Description }),
			catalog.Text(func(a models.Article) string { return a.Author }),
		),
		Card: func(a models.Article) models.CatalogCard {
			card := models.CatalogCard{
				ID:          a.CatalogID(),
				Kind:        KindArticles,
				Title:       a.Title,
				Category:    a.Category,
				Description: a.Description,
				Preview:     utils.Truncate(a.Description, previewLength),
				ImageRef:    a.ImageURL,
				Attributes: lo.OmitByValues(map[string]string{
					"author": a.Author,
					"date":   a.Date,
				}, []string{""}),
			}
			if strings.TrimSpace(a.Content) == "" {
				return card
			}
			body, err := content.Render(a.Content)
			if err != nil {
				logger.Warn("failed to render article content", zap.String("id", card.ID), zap.Error(err))
				body = template.HTML(template.HTMLEscapeString(a.Content))
			}
			card.Body = body
			return card
		},
	}
}

// DoctorDefinition configures the doctors directory
func DoctorDefinition() CatalogDefinition[models.Doctor] {
	return CatalogDefinition[models.Doctor]{
		Info: PageInfo{
			Kind:         KindDoctors,
			Path:         "/doctors",
			Title:        "Doctors",
			Intro:        "Find an Ayurvedic practitioner near you.",
			Placeholder:  "Search by name, speciality or location",
			EmptyMessage: "No doctors match your search.",
		},
		Fields: catalog.Fields(
			catalog.Text(func(d models.Doctor) string { return d.Name }),
			catalog.Text(func(d models.Doctor) string { return d.Title }),
			catalog.Text(func(d models.Doctor) string { return d.Speciality }),
			catalog.Text(func(d models.Doctor) string { return d.Location }),
		),
		Card: doctorCard,
	}
}

func doctorCard(d models.Doctor) models.CatalogCard {
	attrs := map[string]string{
		"location":   d.Location,
		"speciality": d.Speciality,
		"experience": d.Experience,
		"languages":  strings.Join(d.Languages, ", "),
	}
	if d.Rating > 0 {
		attrs["rating"] = strconv.FormatFloat(d.Rating, 'f', 1, 64)
	}
	return models.CatalogCard{
		ID:          d.CatalogID(),
		Kind:        KindDoctors,
		Title:       d.Name,
		Subtitle:    d.Title,
		Category:    d.Speciality,
		Description: utils.FirstNonEmpty(d.Bio, fmt.Sprintf("%s based in %s.", d.Title, d.Location)),
		Preview:     utils.Truncate(utils.FirstNonEmpty(d.Bio, d.Title), previewLength),
		ImageRef:    d.ImageURL,
		Attributes:  lo.OmitByValues(attrs, []string{""}),
	}
}

func nonEmptySections(sections ...models.CardSection) []models.CardSection {
	return lo.Filter(sections, func(s models.CardSection, _ int) bool {
		return len(s.Entries) > 0
	})
}

// CatalogSources holds the fetcher of every catalog type
type CatalogSources struct {
	Plants   catalog.Fetcher[models.Plant]
	Remedies catalog.Fetcher[models.Remedy]
	Articles catalog.Fetcher[models.Article]
	Doctors  catalog.Fetcher[models.Doctor]
}

// Catalogs is the registry of catalog services, in navigation order
type Catalogs struct {
	browsers []CatalogBrowser
	byKind   map[string]CatalogBrowser
}

// NewCatalogs creates the service of every catalog type
func NewCatalogs(sources CatalogSources, content *ContentRenderer, timeout time.Duration, logger *zap.Logger) *Catalogs {
	if logger == nil {
		logger = zap.NewNop()
	}
	browsers := []CatalogBrowser{
		NewCatalogService(PlantDefinition(), sources.Plants, timeout, logger),
		NewCatalogService(RemedyDefinition(), sources.Remedies, timeout, logger),
		NewCatalogService(ArticleDefinition(content, logger), sources.Articles, timeout, logger),
		NewCatalogService(DoctorDefinition(), sources.Doctors, timeout, logger),
	}
	return &Catalogs{
		browsers: browsers,
		byKind: lo.SliceToMap(browsers, func(b CatalogBrowser) (string, CatalogBrowser) {
			return b.Info().Kind, b
		}),
	}
}

// Get returns the catalog of kind
func (c *Catalogs) Get(kind string) (CatalogBrowser, bool) {
	b, ok := c.byKind[strings.ToLower(kind)]
	return b, ok
}

// All returns every catalog in navigation order
func (c *Catalogs) All() []CatalogBrowser {
	return c.browsers
}

// Kinds lists the known catalog kinds
func (c *Catalogs) Kinds() []string {
	return lo.Map(c.browsers, func(b CatalogBrowser, _ int) string {
		return b.Info().Kind
	})
}

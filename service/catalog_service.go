package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"ayurconnect/catalog"
	"ayurconnect/models"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// PageInfo describes one catalog page and its API kind
type PageInfo struct {
	Kind         string
	Path         string
	Title        string
	Intro        string
	Placeholder  string
	EmptyMessage string
}

// CatalogDefinition binds a catalog type to its page, searchable fields and card projection
type CatalogDefinition[T catalog.Item] struct {
	Info   PageInfo
	Fields catalog.FieldSet[T]
	Card   func(T) models.CatalogCard
}

// CardView is a card ready to be drawn in the grid or the detail overlay
type CardView struct {
	models.CatalogCard
	SeeMoreURL string
	ThumbURL   string
	ImageURL   string
}

// CatalogPage is the render model of a catalog page visit
type CatalogPage struct {
	Info         PageInfo
	Query        string
	Cards        []CardView
	Selected     *CardView
	Overlay      catalog.Overlay
	Empty        bool
	EmptyMessage string
	Total        int
	Error        string
	RetryURL     string
	CloseURL     string
	ExportURL    string
}

// CatalogBrowser is the type-erased view of a CatalogService used by controllers and the CLI
type CatalogBrowser interface {
	Info() PageInfo
	Browse(ctx context.Context, query string, overlay catalog.Overlay) (*CatalogPage, error)
	Search(ctx context.Context, query string) (any, error)
	Item(ctx context.Context, id string) (any, error)
	Card(ctx context.Context, id string) (models.CatalogCard, error)
	Cards(ctx context.Context, query string) ([]models.CatalogCard, error)
}

// CatalogService serves one catalog type. Every call builds its own store and view.
type CatalogService[T catalog.Item] struct {
	def     CatalogDefinition[T]
	fetcher catalog.Fetcher[T]
	timeout time.Duration
	logger  *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService[T catalog.Item](def CatalogDefinition[T], fetcher catalog.Fetcher[T], timeout time.Duration, logger *zap.Logger) *CatalogService[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if def.Info.EmptyMessage == "" {
		def.Info.EmptyMessage = catalog.DefaultEmptyMessage
	}
	return &CatalogService[T]{
		def:     def,
		fetcher: fetcher,
		timeout: timeout,
		logger:  logger.With(zap.String("catalog", def.Info.Kind)),
	}
}

var _ CatalogBrowser = (*CatalogService[models.Plant])(nil)

func (s *CatalogService[T]) Info() PageInfo {
	return s.def.Info
}

// Browse loads the catalog, applies query and opens the detail overlay named by overlay.
// On a load failure the returned page carries the error state and the error is returned too.
func (s *CatalogService[T]) Browse(ctx context.Context, query string, overlay catalog.Overlay) (*CatalogPage, error) {
	info := s.def.Info
	page := &CatalogPage{
		Info:         info,
		Query:        strings.TrimSpace(query),
		EmptyMessage: info.EmptyMessage,
		CloseURL:     PageURL(info.Path, query, catalog.NoOverlay()),
		ExportURL:    ExportURL(info.Path, query),
	}

	store, err := s.load(ctx, s.fetcher)
	if err != nil {
		s.logger.Error("failed to load catalog", zap.Error(err))
		page.Error = fmt.Sprintf("We couldn't load the %s right now.", strings.ToLower(info.Title))
		page.RetryURL = PageURL(info.Path, query, overlay)
		return page, err
	}

	view := catalog.NewView(store, catalog.ViewConfig[T]{
		Fields:       s.def.Fields,
		EmptyMessage: info.EmptyMessage,
	})
	view.Submit(query)

	// Only item details open on a catalog page
	var overlays catalog.OverlayState
	if id, ok := overlay.ItemID(); ok {
		if err := view.Select(id); err != nil {
			s.logger.Debug("detail overlay closed", zap.String("id", id), zap.Error(err))
		}
		overlays.Set(view.Overlay())
	}
	page.Overlay = overlays.Active()

	vm := view.Render()
	page.Cards = lo.Map(vm.Items, func(item T, _ int) CardView {
		return s.cardView(item, page.Query)
	})
	page.Empty = vm.Empty
	page.EmptyMessage = vm.EmptyMessage
	page.Total = vm.Total
	if vm.HasSelection {
		selected := s.cardView(vm.Selected, page.Query)
		page.Selected = &selected
	}
	return page, nil
}

// Search returns the items matching query in catalog order
func (s *CatalogService[T]) Search(ctx context.Context, query string) (any, error) {
	return s.SearchItems(ctx, query)
}

// SearchItems lets the source narrow by query, then applies the filter predicate to its answer
func (s *CatalogService[T]) SearchItems(ctx context.Context, query string) ([]T, error) {
	store, err := s.load(ctx, boundQuery[T]{fetcher: s.fetcher, query: query})
	if err != nil {
		return nil, err
	}
	view := catalog.NewView(store, catalog.ViewConfig[T]{Fields: s.def.Fields})
	view.Submit(query)
	return view.Results(), nil
}

// Item returns the item with id from the full catalog
func (s *CatalogService[T]) Item(ctx context.Context, id string) (any, error) {
	return s.find(ctx, id)
}

// Card returns the card of the item with id
func (s *CatalogService[T]) Card(ctx context.Context, id string) (models.CatalogCard, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return models.CatalogCard{}, err
	}
	return s.def.Card(item), nil
}

// Cards returns the cards of the items matching query
func (s *CatalogService[T]) Cards(ctx context.Context, query string) ([]models.CatalogCard, error) {
	items, err := s.SearchItems(ctx, query)
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(item T, _ int) models.CatalogCard {
		return s.def.Card(item)
	}), nil
}

func (s *CatalogService[T]) find(ctx context.Context, id string) (T, error) {
	var zero T
	store, err := s.load(ctx, s.fetcher)
	if err != nil {
		return zero, err
	}
	item, ok := lo.Find(store.All(), func(item T) bool {
		return item.CatalogID() == id
	})
	if !ok {
		return zero, &catalog.NotFoundError{ID: id}
	}
	return item, nil
}

func (s *CatalogService[T]) load(ctx context.Context, fetcher catalog.Fetcher[T]) (*catalog.Store[T], error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	store := catalog.NewStore(fetcher)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *CatalogService[T]) cardView(item T, query string) CardView {
	card := s.def.Card(item)
	card.Kind = s.def.Info.Kind
	view := CardView{
		CatalogCard: card,
		SeeMoreURL:  PageURL(s.def.Info.Path, query, catalog.ItemDetail(card.ID)),
	}
	if card.ImageRef != "" {
		view.ThumbURL = ImageURL(card.Kind, card.ID, SizeThumb)
		view.ImageURL = ImageURL(card.Kind, card.ID, SizeMedium)
	}
	return view
}

// boundQuery forwards a fixed query to the source so it can narrow its answer
type boundQuery[T catalog.Item] struct {
	fetcher catalog.Fetcher[T]
	query   string
}

func (b boundQuery[T]) Fetch(ctx context.Context, _ string) ([]T, error) {
	return b.fetcher.Fetch(ctx, b.query)
}

func (b boundQuery[T]) Source() string {
	return catalog.SourceOf(b.fetcher)
}

// PageURL builds the link of a catalog page state
func PageURL(path, query string, overlay catalog.Overlay) string {
	values := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		values.Set("q", q)
	}
	if !overlay.IsNone() {
		values.Set("overlay", overlay.String())
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

// ExportURL builds the PDF export link of a catalog page
func ExportURL(path, query string) string {
	out := path + "/export.pdf"
	if q := strings.TrimSpace(query); q != "" {
		out += "?" + url.Values{"q": {q}}.Encode()
	}
	return out
}

// ImageURL builds the optimized image link of a catalog item
func ImageURL(kind, id, size string) string {
	return fmt.Sprintf("/api/%s/%s/image?size=%s", kind, url.PathEscape(id), size)
}

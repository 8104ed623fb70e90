package service

import (
	"context"
	"errors"
	"testing"

	"ayurconnect/catalog"
	"ayurconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseShowsWholeCatalogForEmptyQuery(t *testing.T) {
	sources, seed := seedSources(t)
	svc := plantService(t, sources.Plants)

	page, err := svc.Browse(context.Background(), "   ", catalog.NoOverlay())
	require.NoError(t, err)
	assert.Len(t, page.Cards, len(seed.Plants))
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, cardIDs(page.Cards))
	assert.False(t, page.Empty)
	assert.Nil(t, page.Selected)
	assert.Equal(t, 6, page.Total)
}

func TestBrowseFiltersOnMedicinalUses(t *testing.T) {
	sources, _ := seedSources(t)
	svc := plantService(t, sources.Plants)

	page, err := svc.Browse(context.Background(), "skin", catalog.NoOverlay())
	require.NoError(t, err)
	require.Len(t, page.Cards, 1)
	assert.Equal(t, "Neem", page.Cards[0].Title)
	assert.Equal(t, "/herbalPlants?overlay=item%3A3&q=skin", page.Cards[0].SeeMoreURL)
	assert.Equal(t, "/api/plants/3/image?size=thumb", page.Cards[0].ThumbURL)
}

func TestBrowseEmptyResultShowsMessage(t *testing.T) {
	sources, _ := seedSources(t)
	svc := plantService(t, sources.Plants)

	page, err := svc.Browse(context.Background(), "xyz-no-match", catalog.NoOverlay())
	require.NoError(t, err)
	assert.Empty(t, page.Cards)
	assert.True(t, page.Empty)
	assert.Equal(t, "No herbal plants match your search.", page.EmptyMessage)
	assert.Empty(t, page.Error)
}

func TestBrowseOpensDetailOverlay(t *testing.T) {
	sources, _ := seedSources(t)
	svc := plantService(t, sources.Plants)

	page, err := svc.Browse(context.Background(), "", catalog.ItemDetail("3"))
	require.NoError(t, err)
	require.NotNil(t, page.Selected)
	assert.Equal(t, "Neem", page.Selected.Title)
	assert.Equal(t, "/herbalPlants", page.CloseURL)
	assert.Equal(t, catalog.ItemDetail("3"), page.Overlay)
	assert.Len(t, page.Cards, 6)

	require.Len(t, page.Selected.Sections, 2)
	assert.Equal(t, "Medicinal Uses", page.Selected.Sections[0].Title)
	assert.True(t, page.Selected.Sections[1].Numbered)
}

func TestBrowseDropsOverlayOutsideResults(t *testing.T) {
	sources, _ := seedSources(t)
	svc := plantService(t, sources.Plants)

	page, err := svc.Browse(context.Background(), "skin", catalog.ItemDetail("1"))
	require.NoError(t, err)
	assert.Nil(t, page.Selected)
	assert.True(t, page.Overlay.IsNone())

	page, err = svc.Browse(context.Background(), "", catalog.ItemDetail("999"))
	require.NoError(t, err)
	assert.Nil(t, page.Selected)
}

func TestBrowseLoadFailureRendersErrorState(t *testing.T) {
	svc := plantService(t, failingPlants())

	page, err := svc.Browse(context.Background(), "neem", catalog.ItemDetail("3"))
	require.Error(t, err)

	var loadErr *catalog.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.ErrorIs(t, err, errBackendDown)
	require.NotNil(t, page)
	assert.Equal(t, "We couldn't load the herbal plants right now.", page.Error)
	assert.Equal(t, "/herbalPlants?overlay=item%3A3&q=neem", page.RetryURL)
	assert.Empty(t, page.Cards)
	assert.False(t, page.Empty)
}

func TestSearchItemsAppliesPredicateToSupersets(t *testing.T) {
	sources, _ := seedSources(t)
	var received string
	fetcher := catalog.FetcherFunc[models.Plant](func(ctx context.Context, query string) ([]models.Plant, error) {
		received = query
		return sources.Plants.Fetch(ctx, query)
	})
	svc := plantService(t, fetcher)

	items, err := svc.SearchItems(context.Background(), "KOHOMBA")
	require.NoError(t, err)
	assert.Equal(t, "KOHOMBA", received)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].ID)
}

func TestSearchRejectsDuplicateIDs(t *testing.T) {
	fetcher := catalog.FetcherFunc[models.Plant](func(context.Context, string) ([]models.Plant, error) {
		return []models.Plant{{ID: 1, BotanicalName: "A"}, {ID: 1, BotanicalName: "B"}}, nil
	})
	svc := plantService(t, fetcher)

	_, err := svc.Search(context.Background(), "")
	assert.ErrorIs(t, err, catalog.ErrDuplicateID)
}

func TestItemAndCard(t *testing.T) {
	catalogs := newTestCatalogs(t)
	doctors, ok := catalogs.Get("Doctors")
	require.True(t, ok)

	item, err := doctors.Item(context.Background(), "d-3")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Pradeep Warnapura", item.(models.Doctor).Name)

	card, err := doctors.Card(context.Background(), "d-3")
	require.NoError(t, err)
	assert.Equal(t, "4.5", card.Attr("rating"))
	assert.Equal(t, "Galle", card.Attr("location"))
	assert.Equal(t, "Sinhala", card.Attr("languages"))

	_, err = doctors.Item(context.Background(), "d-404")
	var notFound *catalog.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "d-404", notFound.ID)
}

func TestCatalogDefinitionsSearchFields(t *testing.T) {
	catalogs := newTestCatalogs(t)
	ctx := context.Background()

	tests := []struct {
		kind  string
		query string
		want  []string
	}{
		{kind: KindRemedies, query: "eczema", want: []string{"3"}},
		{kind: KindRemedies, query: "ginger", want: []string{"1"}},
		{kind: KindRemedies, query: "tonic", want: []string{"2"}},
		{kind: KindArticles, query: "health category", want: []string{"2"}},
		{kind: KindArticles, query: "specialist", want: []string{"1"}},
		{kind: KindDoctors, query: "colombo", want: []string{"d-1", "d-5"}},
		{kind: KindDoctors, query: "dermatology", want: []string{"d-6"}},
		{kind: KindPlants, query: "gotukola", want: []string{"4"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.query, func(t *testing.T) {
			browser, ok := catalogs.Get(tt.kind)
			require.True(t, ok)
			cards, err := browser.Cards(ctx, tt.query)
			require.NoError(t, err)
			got := make([]string, 0, len(cards))
			for _, c := range cards {
				got = append(got, c.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArticleCardRendersMarkdown(t *testing.T) {
	catalogs := newTestCatalogs(t)
	articles, _ := catalogs.Get(KindArticles)

	card, err := articles.Card(context.Background(), "1")
	require.NoError(t, err)
	assert.Contains(t, string(card.Body), "<strong>What is Chaas?</strong>")
	assert.Contains(t, string(card.Body), "<li>")
	assert.Equal(t, "Dr. Ayurveda Specialist", card.Attr("author"))
	assert.Equal(t, "Aug 07, 2025", card.Attr("date"))
}

func TestRemedyCardOmitsEmptyCautions(t *testing.T) {
	catalogs := newTestCatalogs(t)
	remedies, _ := catalogs.Get(KindRemedies)

	card, err := remedies.Card(context.Background(), "3")
	require.NoError(t, err)
	titles := make([]string, 0, len(card.Sections))
	for _, s := range card.Sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"Uses", "Ingredients", "Preparation"}, titles)

	card, err = remedies.Card(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, card.Sections, 4)
}

func TestCatalogsRegistry(t *testing.T) {
	catalogs := newTestCatalogs(t)
	assert.Equal(t, []string{KindPlants, KindRemedies, KindArticles, KindDoctors}, catalogs.Kinds())

	_, ok := catalogs.Get("unknown")
	assert.False(t, ok)
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "/remedies", PageURL("/remedies", "  ", catalog.NoOverlay()))
	assert.Equal(t, "/remedies?q=neem", PageURL("/remedies", " neem ", catalog.NoOverlay()))
	assert.Equal(t, "/profile?overlay=password", PageURL("/profile", "", catalog.PasswordChange()))
	assert.Equal(t, "/remedies/export.pdf?q=skin+care", ExportURL("/remedies", "skin care"))
	assert.Equal(t, "/remedies/export.pdf", ExportURL("/remedies", ""))
}

package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayurconnect/catalog"
	"ayurconnect/models"
)

func TestStaticCatalogFetchReturnsCopy(t *testing.T) {
	t.Parallel()

	items := []models.Plant{{ID: 1, BotanicalName: "Neem"}}
	c := NewStaticCatalog("plants", items)

	got, err := c.Fetch(context.Background(), "ignored")
	require.NoError(t, err)
	got[0].BotanicalName = "changed"
	assert.Equal(t, "Neem", items[0].BotanicalName)
	assert.Equal(t, "static:plants", c.Source())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Fetch(ctx, "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestRemoteCatalogFetch(t *testing.T) {
	t.Parallel()

	var gotSearch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/plants", r.URL.Path)
		gotSearch = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Plant{{ID: 3, BotanicalName: "Neem", LocalName: "Kohomba"}})
	}))
	defer srv.Close()

	c := NewRemoteCatalog[models.Plant](srv.URL+"/", "plants", srv.Client())
	items, err := c.Fetch(context.Background(), "  skin ")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Kohomba", items[0].LocalName)
	assert.Equal(t, "skin", gotSearch)
}

func TestRemoteCatalogFetchErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"plant_id":`))
		},
	}
	for name, handler := range tests {
		handler := handler
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(handler)
			defer srv.Close()

			_, err := NewRemoteCatalog[models.Plant](srv.URL, "plants", nil).Fetch(context.Background(), "")
			require.Error(t, err)
		})
	}
}

func TestBuildCatalogQuery(t *testing.T) {
	t.Parallel()

	stmt, args := buildCatalogQuery("plants", "")
	assert.NotContains(t, stmt, "ILIKE")
	assert.Equal(t, []interface{}{"plants"}, args)

	stmt, args = buildCatalogQuery("plants", " 50%_off ")
	assert.Contains(t, stmt, "payload::text ILIKE $2")
	assert.Equal(t, []interface{}{"plants", `%50\%\_off%`}, args)

	for _, q := range []string{`say "hi"`, `a\b`, "treats\tskin", "line\nbreak", "Kohomba ශාකය", "ÉCORCE"} {
		stmt, args = buildCatalogQuery("plants", q)
		assert.NotContains(t, stmt, "ILIKE", q)
		assert.Equal(t, []interface{}{"plants"}, args, q)
	}
}

func TestStaticPlantsWithoutIDFailToLoad(t *testing.T) {
	t.Parallel()

	var plants []models.Plant
	require.NoError(t, json.Unmarshal([]byte(`[{"botanical_name":"Neem"},{"plant_id":2,"botanical_name":"Kaha"}]`), &plants))

	store := catalog.NewStore[models.Plant](NewStaticCatalog("plants", plants))
	err := store.Load(context.Background())

	var loadErr *catalog.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, catalog.ErrEmptyID)
	assert.False(t, store.Loaded())
}

func TestSeedWithoutRemedyIDFailsToLoad(t *testing.T) {
	t.Parallel()

	seed, err := ParseSeed([]byte("remedies:\n  - name: Paspanguwa\n"))
	require.NoError(t, err)

	store := catalog.NewStore[models.Remedy](NewStaticCatalog("remedies", seed.Remedies))
	assert.ErrorIs(t, store.Load(context.Background()), catalog.ErrEmptyID)
}

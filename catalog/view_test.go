package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayurconnect/catalog"
	"ayurconnect/models"
)

func newPlantView(t *testing.T) *catalog.View[models.Plant] {
	t.Helper()
	store := catalog.NewStore(staticFetcher(samplePlants()))
	require.NoError(t, store.Load(context.Background()))
	return catalog.NewView(store, catalog.ViewConfig[models.Plant]{
		Fields:       plantFields,
		EmptyMessage: "No plants match your search.",
	})
}

func TestViewStartsWithFullCatalog(t *testing.T) {
	t.Parallel()

	vm := newPlantView(t).Render()
	assert.Len(t, vm.Items, 6)
	assert.False(t, vm.Empty)
	assert.False(t, vm.HasSelection)
	assert.Equal(t, 6, vm.Total)
}

func TestViewSubmitRecomputesFromFullStore(t *testing.T) {
	t.Parallel()

	v := newPlantView(t)
	v.Submit("skin")
	assert.Equal(t, []string{"3"}, ids(v.Results()))

	v.Submit("digestion")
	assert.Equal(t, []string{"2"}, ids(v.Results()))

	v.Submit("")
	assert.Len(t, v.Results(), 6)
}

func TestViewEmptyState(t *testing.T) {
	t.Parallel()

	v := newPlantView(t)
	v.Submit("xyz-no-match")
	vm := v.Render()
	assert.True(t, vm.Empty)
	assert.Empty(t, vm.Items)
	assert.Equal(t, "No plants match your search.", vm.EmptyMessage)
	assert.Equal(t, "xyz-no-match", vm.Query)
}

func TestViewSelectReplacesPreviousSelection(t *testing.T) {
	t.Parallel()

	v := newPlantView(t)
	require.NoError(t, v.Select("3"))
	require.NoError(t, v.Select("1"))

	current, ok := v.Current()
	require.True(t, ok)
	assert.Equal(t, "1", current.CatalogID())
	assert.Equal(t, catalog.ItemDetail("1"), v.Overlay())

	v.Submit("kidney")
	assert.Equal(t, []string{"1"}, ids(v.Results()))
	current, ok = v.Current()
	require.True(t, ok)
	assert.Equal(t, "1", current.CatalogID())
}

func TestViewSelectUnknownClearsSelection(t *testing.T) {
	t.Parallel()

	v := newPlantView(t)
	require.NoError(t, v.Select("2"))

	v.Submit("skin")
	_, ok := v.Current()
	assert.False(t, ok, "selection outside the results must be dropped")

	require.NoError(t, v.Select("3"))
	err := v.Select("5")
	var notFound *catalog.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "5", notFound.ID)
	_, ok = v.Current()
	assert.False(t, ok)
	assert.True(t, v.Overlay().IsNone())
}

func TestViewClear(t *testing.T) {
	t.Parallel()

	v := newPlantView(t)
	v.Clear()
	require.NoError(t, v.Select("4"))
	v.Clear()
	vm := v.Render()
	assert.False(t, vm.HasSelection)
	assert.Zero(t, vm.Selected)
}

func TestViewDefaultEmptyMessage(t *testing.T) {
	t.Parallel()

	store := catalog.NewStore(staticFetcher(nil))
	require.NoError(t, store.Load(context.Background()))
	vm := catalog.NewView(store, catalog.ViewConfig[models.Plant]{Fields: plantFields}).Render()
	assert.True(t, vm.Empty)
	assert.Equal(t, catalog.DefaultEmptyMessage, vm.EmptyMessage)
}

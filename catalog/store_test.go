package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayurconnect/catalog"
	"ayurconnect/models"
)

func TestStoreLoadKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	store := catalog.NewStore(staticFetcher(samplePlants()))
	require.False(t, store.Loaded())

	require.NoError(t, store.Load(context.Background()))
	require.True(t, store.Loaded())
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(store.All()))
	assert.Equal(t, 6, store.Len())
}

func TestStoreAllReturnsCopy(t *testing.T) {
	t.Parallel()

	store := catalog.NewStore(staticFetcher(samplePlants()))
	require.NoError(t, store.Load(context.Background()))

	items := store.All()
	items[0].BotanicalName = "changed"
	assert.Equal(t, "Aerva Lanata", store.All()[0].BotanicalName)
}

func TestStoreLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fetcher catalog.Fetcher[models.Plant]
		want    error
	}{
		{
			name:    "unreachable source",
			fetcher: failingFetcher(errUnreachable),
			want:    errUnreachable,
		},
		{
			name: "duplicate ids",
			fetcher: staticFetcher([]models.Plant{
				{ID: 1, BotanicalName: "Aerva Lanata"},
				{ID: 1, BotanicalName: "Aerva Lanata"},
			}),
			want: catalog.ErrDuplicateID,
		},
		{
			name: "missing numeric id",
			fetcher: staticFetcher([]models.Plant{
				{BotanicalName: "Neem"},
				{ID: 2, BotanicalName: "Curry Leaves"},
			}),
			want: catalog.ErrEmptyID,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := catalog.NewStore(tc.fetcher)
			err := store.Load(context.Background())
			require.Error(t, err)

			var loadErr *catalog.LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.True(t, errors.Is(err, tc.want))
			assert.False(t, store.Loaded())
			assert.Empty(t, store.All())
		})
	}
}

func TestStoreLoadRejectsEmptyID(t *testing.T) {
	t.Parallel()

	fetcher := catalog.FetcherFunc[models.Doctor](func(context.Context, string) ([]models.Doctor, error) {
		return []models.Doctor{{ID: "d-1", Name: "Dr. Sarath Ananda"}, {Name: "Dr. Nobody"}}, nil
	})
	store := catalog.NewStore[models.Doctor](fetcher)

	err := store.Load(context.Background())
	require.ErrorIs(t, err, catalog.ErrEmptyID)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ayurconnect/catalog"
	"ayurconnect/models"
	"ayurconnect/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedSources(t *testing.T) (CatalogSources, *repository.Seed) {
	t.Helper()
	seed, err := repository.LoadSeed("")
	require.NoError(t, err)
	return CatalogSources{
		Plants:   repository.NewStaticCatalog(KindPlants, seed.Plants),
		Remedies: repository.NewStaticCatalog(KindRemedies, seed.Remedies),
		Articles: repository.NewStaticCatalog(KindArticles, seed.Articles),
		Doctors:  repository.NewStaticCatalog(KindDoctors, seed.Doctors),
	}, seed
}

func newTestCatalogs(t *testing.T) *Catalogs {
	t.Helper()
	sources, _ := seedSources(t)
	return NewCatalogs(sources, NewContentRenderer(), time.Second, zap.NewNop())
}

func plantService(t *testing.T, fetcher catalog.Fetcher[models.Plant]) *CatalogService[models.Plant] {
	t.Helper()
	return NewCatalogService(PlantDefinition(), fetcher, time.Second, zap.NewNop())
}

var errBackendDown = errors.New("connection refused")

func failingPlants() catalog.Fetcher[models.Plant] {
	return catalog.FetcherFunc[models.Plant](func(context.Context, string) ([]models.Plant, error) {
		return nil, errBackendDown
	})
}

func cardIDs(cards []CardView) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

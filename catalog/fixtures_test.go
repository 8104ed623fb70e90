package catalog_test

import (
	"context"
	"errors"

	"ayurconnect/catalog"
	"ayurconnect/models"
)

var plantFields = catalog.Fields(
	catalog.Text(func(p models.Plant) string { return p.BotanicalName }),
	catalog.Text(func(p models.Plant) string { return p.LocalName }),
	catalog.List(func(p models.Plant) []string { return p.MedicinalUses }),
)

func samplePlants() []models.Plant {
	return []models.Plant{
		{ID: 1, BotanicalName: "Aerva Lanata", LocalName: "Polpala", MedicinalUses: []string{"Urinary tract health", "Kidney stone prevention", "Diuretic"}},
		{ID: 2, BotanicalName: "Curry Leaves", LocalName: "Karapincha", MedicinalUses: []string{"Improves digestion", "Controls blood sugar", "Promotes hair growth"}},
		{ID: 3, BotanicalName: "Neem", LocalName: "Kohomba", MedicinalUses: []string{"Purifies blood, treats skin conditions", "Boosts immunity"}},
		{ID: 4, BotanicalName: "Centella Asiatica", LocalName: "Gotukola", MedicinalUses: []string{"Improves memory", "Heals wounds"}},
		{ID: 5, BotanicalName: "Holy Basil", LocalName: "Maduruthala", MedicinalUses: []string{"Relieves cough", "Natural expectorant"}},
		{ID: 6, BotanicalName: "Turmeric", LocalName: "Kaha", MedicinalUses: []string{"Anti-inflammatory", "Supports liver function"}},
	}
}

func staticFetcher(items []models.Plant) catalog.Fetcher[models.Plant] {
	return catalog.FetcherFunc[models.Plant](func(context.Context, string) ([]models.Plant, error) {
		return items, nil
	})
}

func failingFetcher(err error) catalog.Fetcher[models.Plant] {
	return catalog.FetcherFunc[models.Plant](func(context.Context, string) ([]models.Plant, error) {
		return nil, err
	})
}

var errUnreachable = errors.New("connection refused")

func ids(items []models.Plant) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.CatalogID())
	}
	return out
}

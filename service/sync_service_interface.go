package service

import (
	"context"

	"ayurconnect/models"
)

// SyncStats counts what a synchronization run did.
// Stored = originals written, Skipped = already cached or unknown items, Total = images seen in Drive.
type SyncStats struct {
	Stored  int `json:"stored"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
	Total   int `json:"total"`
}

// SyncServiceInterface defines the contract for synchronization operations
type SyncServiceInterface interface {
	// SyncCatalogImages downloads the catalog images of a Drive folder into the image cache.
	// force re-downloads originals that are already cached.
	SyncCatalogImages(ctx context.Context, folderID string, force bool) ([]models.CatalogImage, SyncStats, error)
}

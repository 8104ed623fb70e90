package service

import (
	"context"

	"ayurconnect/models"
)

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListCatalogImages(ctx context.Context, folderID string) ([]models.CatalogImage, error)
	DownloadImage(ctx context.Context, fileID string) ([]byte, error)
}

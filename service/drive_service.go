package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"ayurconnect/models"
	"ayurconnect/utils"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
	logger *zap.Logger
}

var _ DriveServiceInterface = (*DriveService)(nil)

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string, logger *zap.Logger) (*DriveService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	driveService, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
		logger: logger,
	}, nil
}

var imageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// ListCatalogImages lists the image files of a Drive folder named after catalog items.
// Files whose name does not follow <kind>-<id>.<ext> are skipped.
func (ds *DriveService) ListCatalogImages(ctx context.Context, folderID string) ([]models.CatalogImage, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", strings.ReplaceAll(folderID, "'", `\'`))

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Context(ctx).
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}

	var images []models.CatalogImage
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		kind, itemID, err := utils.ParseImageName(file.Name)
		if err != nil {
			ds.logger.Warn("skipping drive file", zap.String("name", file.Name), zap.Error(err))
			continue
		}

		images = append(images, models.CatalogImage{
			Kind:        kind,
			ItemID:      itemID,
			DriveFileID: file.Id,
			FileName:    file.Name,
			ImageURL:    fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id),
		})
	}

	return images, nil
}

// DownloadImage downloads the content of a Drive file
func (ds *DriveService) DownloadImage(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}
	return data, nil
}

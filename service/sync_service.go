package service

import (
	"context"
	"fmt"

	"ayurconnect/models"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// SyncService handles synchronization between Google Drive and the image cache
// Implements SyncServiceInterface
type SyncService struct {
	driveService DriveServiceInterface
	images       *ImageService
	catalogs     *Catalogs
	logger       *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(driveService DriveServiceInterface, images *ImageService, catalogs *Catalogs, logger *zap.Logger) *SyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncService{
		driveService: driveService,
		images:       images,
		catalogs:     catalogs,
		logger:       logger,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncCatalogImages stores the Drive originals of known catalog items.
// Images of items missing from their catalog are skipped; a failing download does not stop the run.
func (s *SyncService) SyncCatalogImages(ctx context.Context, folderID string, force bool) ([]models.CatalogImage, SyncStats, error) {
	var stats SyncStats
	log := s.logger.With(zap.String("folder_id", folderID))
	log.Info("starting image synchronization", zap.Bool("force", force))

	images, err := s.driveService.ListCatalogImages(ctx, folderID)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to list catalog images from Drive: %w", err)
	}
	stats.Total = len(images)

	known := make(map[string]map[string]bool)
	for _, img := range images {
		if err := ctx.Err(); err != nil {
			return images, stats, err
		}

		fileLog := log.With(zap.String("kind", img.Kind), zap.String("id", img.ItemID), zap.String("drive_file_id", img.DriveFileID))

		ids, ok := known[img.Kind]
		if !ok {
			ids, err = s.itemIDs(ctx, img.Kind)
			if err != nil {
				return images, stats, err
			}
			known[img.Kind] = ids
		}
		if !ids[img.ItemID] {
			fileLog.Warn("skipping image of unknown catalog item")
			stats.Skipped++
			continue
		}

		if !force && s.images.HasOriginal(img.Kind, img.ItemID) {
			fileLog.Debug("skipping image already cached")
			stats.Skipped++
			continue
		}

		data, err := s.driveService.DownloadImage(ctx, img.DriveFileID)
		if err != nil {
			fileLog.Error("failed to download image", zap.Error(err))
			stats.Failed++
			continue
		}

		if err := s.images.StoreOriginal(img.Kind, img.ItemID, data); err != nil {
			fileLog.Error("failed to store image", zap.Error(err))
			stats.Failed++
			continue
		}
		stats.Stored++
	}

	log.Info("image synchronization completed",
		zap.Int("stored", stats.Stored),
		zap.Int("skipped", stats.Skipped),
		zap.Int("failed", stats.Failed),
		zap.Int("total", stats.Total),
	)
	return images, stats, nil
}

func (s *SyncService) itemIDs(ctx context.Context, kind string) (map[string]bool, error) {
	browser, ok := s.catalogs.Get(kind)
	if !ok {
		return map[string]bool{}, nil
	}
	cards, err := browser.Cards(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s catalog: %w", kind, err)
	}
	return lo.SliceToMap(cards, func(c models.CatalogCard) (string, bool) {
		return c.ID, true
	}), nil
}

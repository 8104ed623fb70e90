package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"ayurconnect/models"

	"go.uber.org/zap"
)

// ErrImageUnavailable is returned when an item has no resolvable image
var ErrImageUnavailable = errors.New("image unavailable")

const driveRefPrefix = "drive:"

// ImageService serves optimized catalog images. Originals come from the sync
// cache first, then from the item's image reference.
type ImageService struct {
	cache     *ImageCache
	drive     DriveServiceInterface
	client    *http.Client
	staticDir string
	logger    *zap.Logger
}

// NewImageService creates a new ImageService. drive may be nil when Drive is not configured.
func NewImageService(cache *ImageCache, drive DriveServiceInterface, staticDir string, logger *zap.Logger) *ImageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageService{
		cache:     cache,
		drive:     drive,
		client:    &http.Client{Timeout: 15 * time.Second},
		staticDir: staticDir,
		logger:    logger,
	}
}

// Optimized returns the JPEG of an item image at size, optimizing and caching it on first use
func (s *ImageService) Optimized(ctx context.Context, kind, itemID, ref, size string) ([]byte, error) {
	if !ValidImageSize(size) {
		return nil, models.NewValidationError("size", "size must be thumb or medium")
	}

	cachePath := s.cache.Path(kind, itemID, size)
	if s.cache.Exists(cachePath) {
		return s.cache.Read(cachePath)
	}

	original, err := s.original(ctx, kind, itemID, ref)
	if err != nil {
		return nil, err
	}

	optimized, err := OptimizeImage(original, size)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Save(cachePath, optimized); err != nil {
		s.logger.Warn("failed to cache optimized image", zap.String("path", cachePath), zap.Error(err))
	}
	return optimized, nil
}

// StoreOriginal replaces the original image of an item and drops its stale optimized variants
func (s *ImageService) StoreOriginal(kind, itemID string, data []byte) error {
	if err := s.cache.Save(s.cache.OriginalPath(kind, itemID), data); err != nil {
		return err
	}
	s.cache.Invalidate(kind, itemID)
	return nil
}

// HasOriginal reports whether a synced original exists for the item
func (s *ImageService) HasOriginal(kind, itemID string) bool {
	return s.cache.Exists(s.cache.OriginalPath(kind, itemID))
}

func (s *ImageService) original(ctx context.Context, kind, itemID, ref string) ([]byte, error) {
	if p := s.cache.OriginalPath(kind, itemID); s.cache.Exists(p) {
		return s.cache.Read(p)
	}

	switch {
	case ref == "":
		return nil, fmt.Errorf("%w: %s %s has no image", ErrImageUnavailable, kind, itemID)
	case strings.HasPrefix(ref, driveRefPrefix):
		if s.drive == nil {
			return nil, fmt.Errorf("%w: drive is not configured", ErrImageUnavailable)
		}
		return s.drive.DownloadImage(ctx, strings.TrimPrefix(ref, driveRefPrefix))
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return s.fetch(ctx, ref)
	default:
		return s.readStatic(ref)
	}
}

func (s *ImageService) fetch(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrImageUnavailable, imageURL)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return data, nil
}

// readStatic reads a bundled asset. The reference is cleaned so it cannot leave staticDir.
func (s *ImageService) readStatic(ref string) ([]byte, error) {
	rel := strings.TrimPrefix(path.Clean("/"+ref), "/")
	data, err := os.ReadFile(filepath.Join(s.staticDir, filepath.FromSlash(rel)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrImageUnavailable, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read bundled image: %w", err)
	}
	return data, nil
}

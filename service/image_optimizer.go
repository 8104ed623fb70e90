package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// Image sizes served by the image endpoint
const (
	SizeThumb  = "thumb"
	SizeMedium = "medium"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// ValidImageSize reports whether size is served by the image endpoint
func ValidImageSize(size string) bool {
	return size == SizeThumb || size == SizeMedium
}

// ImageCache stores optimized images and synced originals on disk
type ImageCache struct {
	dir    string
	logger *zap.Logger
}

// NewImageCache creates a cache rooted at dir
func NewImageCache(dir string, logger *zap.Logger) *ImageCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageCache{dir: dir, logger: logger}
}

// EnsureDir ensures the cache directory exists, creates it if it doesn't
func (c *ImageCache) EnsureDir() error {
	if err := os.MkdirAll(c.originalsDir(), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// Path returns the cache file path for an optimized item image
func (c *ImageCache) Path(kind, itemID, size string) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s_%s_%s.jpg", kind, itemID, size))
}

// OriginalPath returns where the synced original of an item image is kept
func (c *ImageCache) OriginalPath(kind, itemID string) string {
	return filepath.Join(c.originalsDir(), fmt.Sprintf("%s-%s", kind, itemID))
}

func (c *ImageCache) originalsDir() string {
	return filepath.Join(c.dir, "originals")
}

// Exists checks if a cached file exists
func (c *ImageCache) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read reads a file from the cache
func (c *ImageCache) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read from cache: %w", err)
	}
	return data, nil
}

// Save writes a file to the cache
func (c *ImageCache) Save(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	c.logger.Debug("image cached", zap.String("path", path))
	return nil
}

// Invalidate removes the optimized variants of an item image
func (c *ImageCache) Invalidate(kind, itemID string) {
	for _, size := range []string{SizeThumb, SizeMedium} {
		if err := os.Remove(c.Path(kind, itemID, size)); err != nil && !os.IsNotExist(err) {
			c.logger.Warn("failed to invalidate cached image", zap.String("kind", kind), zap.String("id", itemID), zap.Error(err))
		}
	}
}

// OptimizeImage converts an image to JPEG and fits it inside the box of size.
// Unknown sizes are treated as medium.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim, quality := maxSizeMedium, qualityMedium
	if size == SizeThumb {
		maxDim, quality = maxSizeThumb, qualityThumb
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

package imaging

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// SupportedExtensions lists the file extensions accepted as plate images.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png"}

// IsSupported reports whether path has a supported image extension.
// The comparison ignores case.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load decodes the image at path, applying any EXIF orientation so that
// detection geometry matches what a viewer shows.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable JPEG or PNG image
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// DefaultCacheSize is the number of decoded photos an ImageCache keeps
// when no limit is given.
const DefaultCacheSize = 16

// ImageCache keeps recently decoded photos keyed by path, so a plate_read
// followed by plate_annotate on the same file decodes it once. Once limit
// photos are held, loading another drops the one cached longest ago.
//
// Paths are used as given: a relative and an absolute path to one file are
// two entries.
type ImageCache struct {
	mu     sync.Mutex
	limit  int
	photos map[string]image.Image
	order  []string
}

// NewImageCache returns an empty cache holding at most limit photos. A
// limit below 1 selects DefaultCacheSize.
func NewImageCache(limit int) *ImageCache {
	if limit < 1 {
		limit = DefaultCacheSize
	}
	return &ImageCache{
		limit:  limit,
		photos: make(map[string]image.Image, limit),
	}
}

// Load returns the cached photo for path, decoding it with Load on a miss.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.Lock()
	img, ok := c.photos[path]
	c.mu.Unlock()
	if ok {
		return img, nil
	}

	// Decode outside the lock; concurrent misses on one path may both decode.
	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.photos[path]; ok {
		return cached, nil
	}
	for len(c.order) >= c.limit {
		delete(c.photos, c.order[0])
		c.order = c.order[1:]
	}
	c.photos[path] = img
	c.order = append(c.order, path)
	return img, nil
}

// Evict drops path from the cache and reports whether it was cached.
func (c *ImageCache) Evict(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.photos[path]; !ok {
		return false
	}
	delete(c.photos, path)
	for i, p := range c.order {
		if p == path {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear drops every cached photo and returns how many there were.
func (c *ImageCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.photos)
	c.photos = make(map[string]image.Image, c.limit)
	c.order = nil
	return n
}

// Len returns the number of cached photos.
func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.photos)
}

// Package storage validates banner images and stores them in object storage
package storage

import (
	"bannerdesk/internal/banner"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrTooLarge is returned when the file exceeds the upload limit
	ErrTooLarge = errors.New("image exceeds upload size limit")
	// ErrUnsupportedImage is returned for files that are not PNG, JPEG or GIF
	ErrUnsupportedImage = errors.New("unsupported image type")
	// ErrDimensionMismatch is returned when the pixel size differs from the format
	ErrDimensionMismatch = errors.New("image dimensions do not match banner format")
	// ErrUploadFailed wraps object storage failures
	ErrUploadFailed = errors.New("upload failed")
)

// ObjectStore writes an object and returns its public URL
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// UploadResult contains the stored image location
type UploadResult struct {
	Key    string
	URL    string
	Width  int
	Height int
	Size   int64
}

// Uploader checks banner images against their format and stores them
type Uploader struct {
	store    ObjectStore
	maxBytes int64
	now      func() time.Time
}

// NewUploader creates an uploader. maxBytes <= 0 disables the size check.
func NewUploader(store ObjectStore, maxBytes int64) *Uploader {
	return &Uploader{store: store, maxBytes: maxBytes, now: time.Now}
}

// MaxBytes returns the largest accepted image, 0 when unlimited
func (u *Uploader) MaxBytes() int64 {
	return u.maxBytes
}

// Validate decodes the image header and checks it matches format
func Validate(data []byte, format banner.Format) (image.Config, string, error) {
	spec, ok := banner.LookupFormat(format)
	if !ok {
		return image.Config{}, "", banner.ErrInvalidFormat
	}

	cfg, kind, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if cfg.Width != spec.Width || cfg.Height != spec.Height {
		return cfg, kind, fmt.Errorf("%w: got %dx%d, want %s", ErrDimensionMismatch, cfg.Width, cfg.Height, spec.Format)
	}
	return cfg, kind, nil
}

// Upload validates and stores a banner image for userID
func (u *Uploader) Upload(ctx context.Context, userID uuid.UUID, format banner.Format, data []byte) (*UploadResult, error) {
	if u.maxBytes > 0 && int64(len(data)) > u.maxBytes {
		return nil, ErrTooLarge
	}

	cfg, kind, err := Validate(data, format)
	if err != nil {
		return nil, err
	}

	// banners/{year}/{month}/{userID}/{fileID}.{ext}
	now := u.now()
	key := fmt.Sprintf("banners/%d/%02d/%s/%s.%s", now.Year(), now.Month(), userID, uuid.New(), extension(kind))

	url, err := u.store.PutObject(ctx, key, "image/"+kind, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return &UploadResult{
		Key:    key,
		URL:    url,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   int64(len(data)),
	}, nil
}

func extension(kind string) string {
	if kind == "jpeg" {
		return "jpg"
	}
	return kind
}

// MemoryStore keeps objects in memory
type MemoryStore struct {
	BaseURL string

	mu      sync.Mutex
	objects map[string][]byte
}

func (m *MemoryStore) PutObject(_ context.Context, key, _ string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	m.objects[key] = append([]byte(nil), data...)
	return strings.TrimSuffix(m.BaseURL, "/") + "/" + key, nil
}

// Object returns a stored object
func (m *MemoryStore) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	return data, ok
}

// Len returns the number of stored objects
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// Package storage keeps uploaded images on local disk.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

var (
	ErrNotImage = errors.New("upload is not a supported image")
	ErrTooLarge = errors.New("upload exceeds the size limit")
)

var extensions = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

// StoredImage describes a saved upload.
type StoredImage struct {
	Name   string `json:"-"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ImageStore writes images under dir and serves them from urlPath.
type ImageStore struct {
	dir      string
	urlPath  string
	maxBytes int64
	now      func() time.Time
}

// NewImageStore returns an ImageStore. A non-positive maxBytes disables the size check.
func NewImageStore(dir, urlPath string, maxBytes int64) *ImageStore {
	urlPath = "/" + strings.Trim(strings.TrimSpace(urlPath), "/")
	return &ImageStore{dir: dir, urlPath: urlPath, maxBytes: maxBytes, now: time.Now}
}

// Dir returns the directory files are written to.
func (s *ImageStore) Dir() string {
	return s.dir
}

// URLPath returns the URL prefix files are served from.
func (s *ImageStore) URLPath() string {
	return s.urlPath
}

// SaveUpload stores a multipart file.
func (s *ImageStore) SaveUpload(file *multipart.FileHeader) (*StoredImage, error) {
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, ErrTooLarge
	}
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return s.Save(src, file.Header.Get("Content-Type"))
}

// Save validates that r holds a JPEG, PNG, GIF or WebP image and writes it
// under a date-prefixed random name.
func (s *ImageStore) Save(r io.Reader, contentType string) (*StoredImage, error) {
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	limit := s.maxBytes
	if limit <= 0 {
		limit = 1 << 62
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotImage
	}
	ext, ok := extensions[format]
	if !ok {
		return nil, ErrNotImage
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", s.now().Format("20060102"), uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	return &StoredImage{
		Name:   name,
		URL:    path.Join(s.urlPath, name),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

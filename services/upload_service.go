package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"iptv-backend/utils"
)

const (
	smallUploadLimit = 5 << 20  // logo, favicon
	largeUploadLimit = 10 << 20 // blog images, slider images
)

// UploadCategory describes where files of one kind live and what is
// accepted for them.
type UploadCategory struct {
	Dir        string
	MaxSize    int64
	Extensions map[string]bool
	MimeTypes  map[string]bool
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".svg": true,
}

var imageMimeTypes = map[string]bool{
	"image/jpeg": true, "image/png": true, "image/gif": true,
	"image/webp": true, "image/svg+xml": true,
}

var uploadCategories = map[string]UploadCategory{
	"logo": {
		Dir: "logo", MaxSize: smallUploadLimit,
		Extensions: imageExtensions, MimeTypes: imageMimeTypes,
	},
	"favicon": {
		Dir: "favicon", MaxSize: smallUploadLimit,
		Extensions: withIcon(imageExtensions), MimeTypes: withIconMime(imageMimeTypes),
	},
	"blog-image": {
		Dir: "blog", MaxSize: largeUploadLimit,
		Extensions: imageExtensions, MimeTypes: imageMimeTypes,
	},
	"slider": {
		Dir: "slider", MaxSize: largeUploadLimit,
		Extensions: imageExtensions, MimeTypes: imageMimeTypes,
	},
}

func withIcon(base map[string]bool) map[string]bool {
	m := map[string]bool{".ico": true}
	for k := range base {
		m[k] = true
	}
	return m
}

func withIconMime(base map[string]bool) map[string]bool {
	m := map[string]bool{"image/x-icon": true, "image/vnd.microsoft.icon": true}
	for k := range base {
		m[k] = true
	}
	return m
}

// UploadResult is the JSON payload returned to the admin UI.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

type UploadService struct {
	baseDir string
}

func NewUploadService(baseDir string) *UploadService {
	return &UploadService{baseDir: baseDir}
}

func IsUploadCategory(category string) bool {
	_, ok := uploadCategories[category]
	return ok
}

// Save validates the file against the category's allow-list and size
// ceiling, then writes it under a randomized name. Nothing touches disk
// until validation passes.
func (s *UploadService) Save(category string, file *multipart.FileHeader) (*UploadResult, error) {
	cat, ok := uploadCategories[category]
	if !ok {
		return nil, utils.NewValidationError("category")
	}
	if file == nil {
		return nil, utils.NewValidationError("file")
	}

	if file.Size > cat.MaxSize {
		return nil, utils.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !cat.Extensions[ext] {
		return nil, utils.ErrUnsupportedMedia
	}
	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !cat.MimeTypes[contentType] {
		return nil, utils.ErrUnsupportedMedia
	}

	dir := filepath.Join(s.baseDir, cat.Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.NewString() + ext
	fullpath := filepath.Join(dir, filename)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullpath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(src, cat.MaxSize+1))
	if err != nil {
		os.Remove(fullpath)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if written > cat.MaxSize {
		os.Remove(fullpath)
		return nil, utils.ErrFileTooLarge
	}

	url := "/uploads/" + filepath.ToSlash(filepath.Join(cat.Dir, filename))
	return &UploadResult{URL: url, Filename: filename, Size: written}, nil
}

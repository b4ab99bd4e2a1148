package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"travel-agency-server/config"
)

// SavedFile describes a stored upload
type SavedFile struct {
	FileName string
	Path     string
	URL      string
	Size     int64
	MimeType string
}

// Store persists multipart uploads and removes them again. Media lives on
// local disk by default; a Cloudinary-backed store is used when configured.
type Store interface {
	Save(header *multipart.FileHeader, subdir string) (*SavedFile, error)
	Remove(file *SavedFile) error
}

// NewFromEnv returns the Cloudinary store when CLOUDINARY_* variables are
// set, otherwise a local disk store rooted at the configured upload dir.
func NewFromEnv() Store {
	if os.Getenv("CLOUDINARY_CLOUD_NAME") != "" &&
		os.Getenv("CLOUDINARY_API_KEY") != "" &&
		os.Getenv("CLOUDINARY_API_SECRET") != "" {
		if store, err := NewCloudinaryStore(); err == nil {
			return store
		}
	}
	return NewLocalStore(config.AppConfig.Upload.Dir)
}

// LocalStore writes uploads to disk with generated filenames
type LocalStore struct {
	BaseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{BaseDir: baseDir}
}

func (s *LocalStore) Save(header *multipart.FileHeader, subdir string) (*SavedFile, error) {
	dir := filepath.Join(s.BaseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	dst := filepath.Join(dir, name)

	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	written, err := io.Copy(out, src)
	if err != nil {
		os.Remove(dst)
		return nil, err
	}

	return &SavedFile{
		FileName: name,
		Path:     dst,
		URL:      "/uploads/" + subdir + "/" + name,
		Size:     written,
		MimeType: MimeType(header),
	}, nil
}

func (s *LocalStore) Remove(file *SavedFile) error {
	if file == nil || file.Path == "" {
		return nil
	}
	if _, err := os.Stat(file.Path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(file.Path)
}

// MimeType returns the declared content type, falling back to the extension
func MimeType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	default:
		return "application/octet-stream"
	}
}

// IsImage reports whether the upload looks like an image
func IsImage(header *multipart.FileHeader) bool {
	return strings.HasPrefix(MimeType(header), "image/")
}

// IsVideo reports whether the upload looks like a video
func IsVideo(header *multipart.FileHeader) bool {
	return strings.HasPrefix(MimeType(header), "video/")
}

// ValidImageFile validates mimetype and size against the configured limit
func ValidImageFile(header *multipart.FileHeader) bool {
	if header == nil || header.Size <= 0 {
		return false
	}
	if header.Size > config.AppConfig.Upload.MaxImageSizeMB*1024*1024 {
		return false
	}
	return IsImage(header)
}

// ValidMediaFile accepts images and videos within the media size limit
func ValidMediaFile(header *multipart.FileHeader) bool {
	if header == nil || header.Size <= 0 {
		return false
	}
	if header.Size > config.AppConfig.Upload.MaxMediaSizeMB*1024*1024 {
		return false
	}
	return IsImage(header) || IsVideo(header)
}

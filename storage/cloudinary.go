package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStore uploads media to Cloudinary instead of local disk
type CloudinaryStore struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore() (*CloudinaryStore, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary not configured")
	}

	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryStore{
		client: client,
		folder: os.Getenv("CLOUDINARY_FOLDER"),
	}, nil
}

func (s *CloudinaryStore) Save(header *multipart.FileHeader, subdir string) (*SavedFile, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	publicID := uuid.NewString()
	folder := subdir
	if s.folder != "" {
		folder = s.folder + "/" + subdir
	}

	resp, err := s.client.Upload.Upload(context.Background(), file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   folder,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload failed: %w", err)
	}

	return &SavedFile{
		FileName: resp.PublicID,
		Path:     resp.SecureURL,
		URL:      resp.SecureURL,
		Size:     header.Size,
		MimeType: MimeType(header),
	}, nil
}

// Remove destroys the remote asset; the stored FileName is its public id
func (s *CloudinaryStore) Remove(file *SavedFile) error {
	if file == nil || file.FileName == "" {
		return nil
	}
	publicID := strings.TrimSuffix(file.FileName, filepath.Ext(file.FileName))
	_, err := s.client.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

package models

import (
	"time"
)

type GalleryFileType string

const (
	GalleryFileImage GalleryFileType = "image"
	GalleryFileVideo GalleryFileType = "video"
)

type GalleryItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Title     string          `json:"title" gorm:"size:255;not null"`
	FileName  string          `json:"file_name" gorm:"size:255;not null"`
	FilePath  string          `json:"file_path" gorm:"size:500;not null"`
	FileType  GalleryFileType `json:"file_type" gorm:"type:varchar(10);not null;index;check:file_type IN ('image','video')"`
	MimeType  string          `json:"mime_type" gorm:"size:100;not null"`
	FileSize  int64           `json:"file_size" gorm:"not null"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime;index:,sort:desc"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the GalleryItem model
func (GalleryItem) TableName() string {
	return "gallery_items"
}

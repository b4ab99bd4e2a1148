package models

import (
	"time"
)

type Vlog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	VideoURL    string    `json:"video_url" gorm:"size:500;not null"`
	Thumbnail   string    `json:"thumbnail" gorm:"size:500"`
	IsFeatured  bool      `json:"is_featured" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Vlog model
func (Vlog) TableName() string {
	return "vlogs"
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

type DestinationCategory string

const (
	CategorySouthAndaman  DestinationCategory = "south-andaman"
	CategoryNorthAndaman  DestinationCategory = "north-andaman"
	CategoryMiddleAndaman DestinationCategory = "middle-andaman"
)

// IsValid reports whether the category is one of the enumerated values
func (c DestinationCategory) IsValid() bool {
	switch c {
	case CategorySouthAndaman, CategoryNorthAndaman, CategoryMiddleAndaman:
		return true
	default:
		return false
	}
}

// Coordinates is an optional geographic position for a destination
type Coordinates struct {
	Latitude  *float64 `json:"latitude" gorm:"check:coord_latitude >= -90 AND coord_latitude <= 90"`
	Longitude *float64 `json:"longitude" gorm:"check:coord_longitude >= -180 AND coord_longitude <= 180"`
}

type Destination struct {
	ID                uint                        `json:"id" gorm:"primaryKey"`
	DestinationName   string                      `json:"destination_name" gorm:"size:100;not null"`
	Description       string                      `json:"description" gorm:"size:1000;not null"`
	Category          DestinationCategory         `json:"category" gorm:"type:varchar(20);not null;index;check:category IN ('south-andaman','north-andaman','middle-andaman')"`
	ThumbnailURL      string                      `json:"thumbnail_url" gorm:"size:500;not null"`
	ThumbnailFileName string                      `json:"thumbnail_file_name" gorm:"size:255;not null"`
	IsActive          bool                        `json:"is_active" gorm:"default:true;index"`
	Views             int64                       `json:"views" gorm:"default:0"`
	Rating            float64                     `json:"rating" gorm:"default:0;check:rating >= 0 AND rating <= 5"`
	Featured          bool                        `json:"featured" gorm:"default:false"`
	Tags              datatypes.JSONSlice[string] `json:"tags"`
	Coordinates       Coordinates                 `json:"coordinates" gorm:"embedded;embeddedPrefix:coord_"`
	CreatedAt         time.Time                   `json:"created_at" gorm:"autoCreateTime;index:,sort:desc"`
	UpdatedAt         time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Destination model
func (Destination) TableName() string {
	return "destinations"
}

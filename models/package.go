package models

import (
	"time"
)

type Package struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	PackageName         string    `json:"package_name" gorm:"size:255;not null"`
	Thumbnail           string    `json:"thumbnail" gorm:"size:500;not null"`
	ShortDescription    string    `json:"short_description" gorm:"size:200;not null"`
	NumberOfDays        int       `json:"number_of_days" gorm:"not null;check:number_of_days >= 1"`
	NumberOfNights      int       `json:"number_of_nights" gorm:"not null;check:number_of_nights >= 0"`
	Price               float64   `json:"price" gorm:"type:decimal(10,2);not null;check:price >= 0"`
	DetailedDescription string    `json:"detailed_description" gorm:"type:text;not null"`
	IsActive            bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt           time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Package model
func (Package) TableName() string {
	return "packages"
}

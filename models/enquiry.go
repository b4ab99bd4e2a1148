package models

import (
	"time"

	"gorm.io/datatypes"
)

type EnquiryStatus string

const (
	EnquiryStatusPending   EnquiryStatus = "pending"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusQuoted    EnquiryStatus = "quoted"
	EnquiryStatusBooked    EnquiryStatus = "booked"
	EnquiryStatusCancelled EnquiryStatus = "cancelled"
)

// IsValid reports whether the enquiry status is one of the enumerated values
func (s EnquiryStatus) IsValid() bool {
	switch s {
	case EnquiryStatusPending, EnquiryStatusContacted, EnquiryStatusQuoted,
		EnquiryStatusBooked, EnquiryStatusCancelled:
		return true
	default:
		return false
	}
}

type Enquiry struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	Name         string                      `json:"name" gorm:"size:255;not null"`
	Email        string                      `json:"email" gorm:"size:255;not null"`
	Phone        string                      `json:"phone" gorm:"size:50;not null"`
	Destinations datatypes.JSONSlice[string] `json:"destinations"`
	TravelDate   time.Time                   `json:"travel_date" gorm:"not null"`
	Travelers    int                         `json:"travelers" gorm:"not null;check:travelers >= 1"`
	Budget       string                      `json:"budget" gorm:"size:100;not null"`
	Message      string                      `json:"message" gorm:"size:2000"`
	Status       EnquiryStatus               `json:"status" gorm:"type:varchar(20);default:'pending';index;check:status IN ('pending','contacted','quoted','booked','cancelled')"`
	CreatedAt    time.Time                   `json:"created_at" gorm:"autoCreateTime;index:,sort:desc"`
	UpdatedAt    time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Enquiry model
func (Enquiry) TableName() string {
	return "enquiries"
}

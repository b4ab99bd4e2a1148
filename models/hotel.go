package models

import (
	"time"

	"gorm.io/datatypes"
)

type RoomType string

const (
	RoomTypeDeluxe RoomType = "deluxe"
	RoomTypeNormal RoomType = "normal"
)

type BedType string

const (
	BedTypeSingle BedType = "single"
	BedTypeDouble BedType = "double"
)

type ACType string

const (
	ACTypeAC    ACType = "AC"
	ACTypeNonAC ACType = "Non-AC"
)

type Room struct {
	ID           uint                          `json:"id" gorm:"primaryKey"`
	HotelID      uint                          `json:"hotel_id" gorm:"not null;index"`
	RoomType     RoomType                      `json:"room_type" gorm:"type:varchar(20);not null;check:room_type IN ('deluxe','normal')"`
	BedType      BedType                       `json:"bed_type" gorm:"type:varchar(20);not null;check:bed_type IN ('single','double')"`
	ACType       ACType                        `json:"ac_type" gorm:"type:varchar(20);not null;check:ac_type IN ('AC','Non-AC')"`
	Price        float64                       `json:"price" gorm:"type:decimal(10,2);not null"`
	Images       datatypes.JSONSlice[string]   `json:"images"`
	Availability bool                          `json:"availability" gorm:"default:true"`
	CreatedAt    time.Time                     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time                     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Room model
func (Room) TableName() string {
	return "rooms"
}

type Hotel struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	HotelName     string    `json:"hotel_name" gorm:"size:255;not null"`
	HotelLocation string    `json:"hotel_location" gorm:"size:255;not null"`
	LocationLink  string    `json:"location_link" gorm:"size:500;not null"`
	HotelAddress  string    `json:"hotel_address" gorm:"size:500;not null"`
	Description   string    `json:"description" gorm:"type:text;not null"`
	HotelImage    string    `json:"hotel_image" gorm:"size:500;not null"`
	IsActive      bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Rooms []Room `json:"rooms" gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Hotel model
func (Hotel) TableName() string {
	return "hotels"
}

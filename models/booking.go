package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid reports whether the payment status is one of the enumerated values
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// IsValid reports whether the booking status is one of the enumerated values
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// Actor identifies who is requesting a booking-status change
type Actor string

const (
	ActorOwner Actor = "owner"
	ActorAdmin Actor = "admin"
)

// ContactDetails is a snapshot of the customer's contact information taken at
// booking time. It is write-once: later edits to the user record must not
// retroactively alter what was booked.
type ContactDetails struct {
	Name    string `json:"username" gorm:"size:255;not null"`
	Email   string `json:"email" gorm:"size:255;not null"`
	Phone   string `json:"phone" gorm:"size:50;not null"`
	Address string `json:"address" gorm:"size:500;not null"`
}

type Booking struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	UserID          uint           `json:"user_id" gorm:"not null;index:idx_bookings_user_date,priority:1"`
	PackageID       uint           `json:"package_id" gorm:"not null;index"`
	PackageName     string         `json:"package_name" gorm:"size:255;not null"`
	Price           float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	NumberOfDays    int            `json:"number_of_days" gorm:"not null"`
	NumberOfNights  int            `json:"number_of_nights" gorm:"not null"`
	TravelDate      time.Time      `json:"travel_date" gorm:"not null"`
	BookingDate     time.Time      `json:"booking_date" gorm:"not null;index:idx_bookings_user_date,priority:2,sort:desc"`
	PaymentStatus   PaymentStatus  `json:"payment_status" gorm:"type:varchar(20);default:'pending';index;check:payment_status IN ('pending','paid','failed','refunded')"`
	BookingStatus   BookingStatus  `json:"booking_status" gorm:"type:varchar(20);default:'confirmed';check:booking_status IN ('confirmed','cancelled','completed')"`
	Contact         ContactDetails `json:"user_details" gorm:"embedded;embeddedPrefix:contact_"`
	SpecialRequests string         `json:"special_requests" gorm:"size:1000;default:''"`
	NumberOfPeople  int            `json:"number_of_people" gorm:"default:1"`
	TotalAmount     float64        `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Package Package `json:"package,omitempty" gorm:"foreignKey:PackageID"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// BeforeCreate is a GORM hook that fills schema defaults: party size of one
// and a total derived from the unit price when none was supplied.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.NumberOfPeople <= 0 {
		b.NumberOfPeople = 1
	}
	if b.TotalAmount == 0 {
		b.TotalAmount = b.CalculatedTotal()
	}
	return nil
}

var (
	// ErrCancellationWindow is returned when a cancellation is requested with
	// less than 24 hours left before the travel date.
	ErrCancellationWindow = errors.New("cannot cancel booking less than 24 hours before travel date")
	// ErrInvalidStatus is returned for a status outside the enumeration.
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrTransitionDenied is returned when the transition table forbids a change.
	ErrTransitionDenied = errors.New("booking status transition not allowed")
)

// bookingTransitions is the explicit state-transition table:
// current status -> actor -> set of statuses that actor may request.
// Owners and admins may move bookings between all three states; the
// 24-hour cancellation cutoff is a temporal guard applied on top of
// the table, not a row in it.
var bookingTransitions = map[BookingStatus]map[Actor]map[BookingStatus]bool{
	BookingStatusConfirmed: {
		ActorOwner: {BookingStatusConfirmed: true, BookingStatusCancelled: true, BookingStatusCompleted: true},
		ActorAdmin: {BookingStatusConfirmed: true, BookingStatusCancelled: true, BookingStatusCompleted: true},
	},
	BookingStatusCancelled: {
		ActorOwner: {BookingStatusConfirmed: true, BookingStatusCancelled: true, BookingStatusCompleted: true},
		ActorAdmin: {BookingStatusConfirmed: true, BookingStatusCancelled: true, BookingStatusCompleted: true},
	},
	BookingStatusCompleted: {
		ActorOwner: {BookingStatusConfirmed: true, BookingStatusCancelled: true, BookingStatusCompleted: true},
		ActorAdmin: {BookingStatusConfirmed: true, BookingStatusCancelled: true, BookingStatusCompleted: true},
	},
}

// CanTransition checks whether the given actor may move the booking to the
// requested status at the given time.
func (b *Booking) CanTransition(actor Actor, to BookingStatus, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	allowed, ok := bookingTransitions[b.BookingStatus]
	if !ok || !allowed[actor][to] {
		return ErrTransitionDenied
	}
	if actor == ActorOwner && to == BookingStatusCancelled && b.DaysUntilTravel(now) < 1 {
		return ErrCancellationWindow
	}
	return nil
}

// DaysUntilTravel returns the number of whole days until the travel date.
// Zero means the trip starts within 24 hours (or has started).
func (b *Booking) DaysUntilTravel(now time.Time) int {
	return int(b.TravelDate.Sub(now).Hours() / 24)
}

// MinTravelDate returns the earliest bookable travel date: the next calendar
// day at midnight. Same-day and past bookings are rejected.
func MinTravelDate(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// ValidTravelDate reports whether the requested travel date is at least one
// calendar day out from now.
func ValidTravelDate(travelDate, now time.Time) bool {
	return !travelDate.Before(MinTravelDate(now))
}

// CalculatedTotal is the amount due for the booking
func (b *Booking) CalculatedTotal() float64 {
	return b.Price * float64(b.NumberOfPeople)
}

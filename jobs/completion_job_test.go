package jobs

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"travel-agency-server/database"
	"travel-agency-server/models"
)

var testDBCounter int64

func setupDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:jobsdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
}

func seedBooking(t *testing.T, status models.BookingStatus, travelDate time.Time) models.Booking {
	t.Helper()

	user := models.User{
		Name: "Asha Verma", Email: fmt.Sprintf("u%d@example.com", time.Now().UnixNano()),
		Age: 30, Gender: models.GenderFemale, Phone: "9876543210",
		Address: "12 Marine Drive", PasswordHash: "x", Role: models.RoleUser, IsActive: true,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	pkg := models.Package{
		PackageName: "Island Explorer", Thumbnail: "/uploads/packages/t.jpg",
		ShortDescription: "Short", NumberOfDays: 5, NumberOfNights: 4,
		Price: 4500, DetailedDescription: "Long description here.", IsActive: true,
	}
	require.NoError(t, database.DB.Create(&pkg).Error)

	booking := models.Booking{
		UserID: user.ID, PackageID: pkg.ID, PackageName: pkg.PackageName,
		Price: pkg.Price, NumberOfDays: 5, NumberOfNights: 4,
		TravelDate: travelDate, BookingDate: time.Now(),
		PaymentStatus: models.PaymentStatusPaid, BookingStatus: status,
		Contact: models.ContactDetails{
			Name: user.Name, Email: user.Email, Phone: user.Phone, Address: user.Address,
		},
		NumberOfPeople: 1,
	}
	require.NoError(t, database.DB.Create(&booking).Error)
	return booking
}

func TestCompletePastBookings(t *testing.T) {
	setupDB(t)
	now := time.Now()

	past := seedBooking(t, models.BookingStatusConfirmed, now.AddDate(0, 0, -3))
	future := seedBooking(t, models.BookingStatusConfirmed, now.AddDate(0, 0, 3))
	cancelled := seedBooking(t, models.BookingStatusCancelled, now.AddDate(0, 0, -3))

	job := NewCompletionJob()
	assert.Equal(t, int64(1), job.CompletePastBookings(now))

	var storedPast models.Booking
	require.NoError(t, database.DB.First(&storedPast, past.ID).Error)
	assert.Equal(t, models.BookingStatusCompleted, storedPast.BookingStatus)

	var storedFuture models.Booking
	require.NoError(t, database.DB.First(&storedFuture, future.ID).Error)
	assert.Equal(t, models.BookingStatusConfirmed, storedFuture.BookingStatus)

	var storedCancelled models.Booking
	require.NoError(t, database.DB.First(&storedCancelled, cancelled.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, storedCancelled.BookingStatus,
		"cancelled trips are never flipped to completed")
}

func TestCompletePastBookingsIdempotent(t *testing.T) {
	setupDB(t)
	now := time.Now()

	seedBooking(t, models.BookingStatusConfirmed, now.AddDate(0, 0, -1))

	job := NewCompletionJob()
	assert.Equal(t, int64(1), job.CompletePastBookings(now))
	assert.Equal(t, int64(0), job.CompletePastBookings(now))
}

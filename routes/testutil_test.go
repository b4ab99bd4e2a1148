package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"travel-agency-server/config"
	"travel-agency-server/database"
	"travel-agency-server/models"
	"travel-agency-server/storage"
	"travel-agency-server/utils"
	"travel-agency-server/ws"
)

var testDBCounter int64

// setupTest wires an isolated in-memory database and a router carrying the
// full API surface, mirroring the production route layout.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	config.Load()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	hub := ws.NewHub()
	go hub.Run()

	store := storage.NewLocalStore(t.TempDir())

	router := gin.New()
	api := router.Group("/api")
	RegisterAuthRoutes(api.Group("/auth"))
	RegisterAdminRoutes(api.Group("/admin"))
	RegisterPackageRoutes(api.Group("/packages"), store)
	RegisterDestinationRoutes(api.Group("/destinations"), store)
	RegisterHotelRoutes(api.Group("/hotels"), store)
	RegisterVlogRoutes(api.Group("/vlogs"), store)
	RegisterGalleryRoutes(api.Group("/gallery"), store)
	RegisterEnquiryRoutes(api.Group("/enquiries"), hub)
	RegisterBookingRoutes(api.Group("/bookings"), hub)

	return router
}

func createUser(t *testing.T, email string, role models.UserRole) models.User {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		Name:         "Asha Verma",
		Email:        email,
		Age:          30,
		Gender:       models.GenderFemale,
		Phone:        "9876543210",
		Address:      "12 Marine Drive",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func newTestPackage(t *testing.T, price float64) models.Package {
	t.Helper()

	pkg := models.Package{
		PackageName:         "Island Explorer",
		Thumbnail:           "/uploads/packages/thumb.jpg",
		ShortDescription:    "Five days across the islands",
		NumberOfDays:        5,
		NumberOfNights:      4,
		Price:               price,
		DetailedDescription: "A guided tour covering beaches, reefs and forest trails.",
		IsActive:            true,
	}
	require.NoError(t, database.DB.Create(&pkg).Error)
	return pkg
}

func newTestBooking(t *testing.T, user models.User, pkg models.Package, travelDate time.Time) models.Booking {
	t.Helper()

	booking := models.Booking{
		UserID:         user.ID,
		PackageID:      pkg.ID,
		PackageName:    pkg.PackageName,
		Price:          pkg.Price,
		NumberOfDays:   pkg.NumberOfDays,
		NumberOfNights: pkg.NumberOfNights,
		TravelDate:     travelDate,
		BookingDate:    time.Now(),
		PaymentStatus:  models.PaymentStatusPending,
		BookingStatus:  models.BookingStatusConfirmed,
		Contact: models.ContactDetails{
			Name:    user.Name,
			Email:   user.Email,
			Phone:   user.Phone,
			Address: user.Address,
		},
		NumberOfPeople: 2,
	}
	require.NoError(t, database.DB.Create(&booking).Error)
	return booking
}

func bearerToken(t *testing.T, user models.User) string {
	t.Helper()

	token, err := utils.GenerateToken(user.ID)
	require.NoError(t, err)
	return "Bearer " + token
}

func performJSON(router http.Handler, method, path string, body interface{}, auth string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

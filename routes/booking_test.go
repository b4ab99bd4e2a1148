package routes

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-agency-server/database"
	"travel-agency-server/models"
)

func bookingPayload(pkg models.Package, travelDate string) map[string]interface{} {
	return map[string]interface{}{
		"packageId":      pkg.ID,
		"packageName":    pkg.PackageName,
		"price":          pkg.Price,
		"numberOfDays":   pkg.NumberOfDays,
		"numberOfNights": pkg.NumberOfNights,
		"travelDate":     travelDate,
	}
}

func TestCreateBookingForTomorrow(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	payload := bookingPayload(pkg, tomorrow)
	payload["numberOfPeople"] = 3

	w := performJSON(router, http.MethodPost, "/api/bookings", payload, bearerToken(t, user))
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "confirmed", data["booking_status"])
	assert.Equal(t, "pending", data["payment_status"])
	assert.Equal(t, 4500*3.0, data["total_amount"])
}

func TestCreateBookingForTodayRejected(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)

	today := time.Now().Format("2006-01-02")
	w := performJSON(router, http.MethodPost, "/api/bookings", bookingPayload(pkg, today), bearerToken(t, user))

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Travel date must be at least 1 day from today", body["message"])
}

func TestCreateBookingMissingFields(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)

	payload := bookingPayload(pkg, time.Now().AddDate(0, 0, 1).Format("2006-01-02"))
	delete(payload, "packageName")

	w := performJSON(router, http.MethodPost, "/api/bookings", payload, bearerToken(t, user))
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Missing required booking information", body["message"])
}

func TestCreateBookingUnknownPackage(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)

	payload := bookingPayload(pkg, time.Now().AddDate(0, 0, 2).Format("2006-01-02"))
	payload["packageId"] = pkg.ID + 100

	w := performJSON(router, http.MethodPost, "/api/bookings", payload, bearerToken(t, user))
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Package not found", body["message"])
}

func TestCreateBookingContactFallback(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)

	// "undefined" in the override falls through to the profile; an absent
	// profile value falls through to the placeholder.
	require.NoError(t, database.DB.Model(&user).Update("phone", "").Error)

	payload := bookingPayload(pkg, time.Now().AddDate(0, 0, 3).Format("2006-01-02"))
	payload["userDetails"] = map[string]string{
		"username": "undefined",
		"email":    "direct@example.com",
		"phone":    "undefined",
	}

	w := performJSON(router, http.MethodPost, "/api/bookings", payload, bearerToken(t, user))
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	contact := body["data"].(map[string]interface{})["user_details"].(map[string]interface{})
	assert.Equal(t, "Asha Verma", contact["username"])
	assert.Equal(t, "direct@example.com", contact["email"])
	assert.Equal(t, "No phone provided", contact["phone"])
	assert.Equal(t, "12 Marine Drive", contact["address"])
}

func TestCreateBookingDefaultsPartySize(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 1200)

	w := performJSON(router, http.MethodPost, "/api/bookings",
		bookingPayload(pkg, time.Now().AddDate(0, 0, 5).Format("2006-01-02")), bearerToken(t, user))
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 1.0, data["number_of_people"])
	assert.Equal(t, 1200.0, data["total_amount"])
}

func TestMyBookingsPagination(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)

	for i := 0; i < 15; i++ {
		newTestBooking(t, user, pkg, time.Now().AddDate(0, 0, 10+i))
	}

	w := performJSON(router, http.MethodGet, "/api/bookings/my-bookings", nil, bearerToken(t, user))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Len(t, body["data"].([]interface{}), 10)

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, 1.0, pagination["currentPage"])
	assert.Equal(t, 2.0, pagination["totalPages"])
	assert.Equal(t, 15.0, pagination["totalBookings"])
	assert.Equal(t, true, pagination["hasNext"])
	assert.Equal(t, false, pagination["hasPrev"])

	w = performJSON(router, http.MethodGet, "/api/bookings/my-bookings?page=2", nil, bearerToken(t, user))
	require.Equal(t, http.StatusOK, w.Code)

	body = decodeBody(t, w)
	assert.Len(t, body["data"].([]interface{}), 5)

	pagination = body["pagination"].(map[string]interface{})
	assert.Equal(t, false, pagination["hasNext"])
	assert.Equal(t, true, pagination["hasPrev"])
}

func TestGetBookingOwnershipHidden(t *testing.T) {
	router := setupTest(t)
	owner := createUser(t, "owner@example.com", models.RoleUser)
	other := createUser(t, "other@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)
	booking := newTestBooking(t, owner, pkg, time.Now().AddDate(0, 0, 10))

	path := fmt.Sprintf("/api/bookings/%d", booking.ID)

	w := performJSON(router, http.MethodGet, path, nil, bearerToken(t, owner))
	require.Equal(t, http.StatusOK, w.Code)

	// Someone else's booking looks exactly like a missing one
	w = performJSON(router, http.MethodGet, path, nil, bearerToken(t, other))
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decodeBody(t, w)["message"])
}

func TestGetBookingInvalidID(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)

	w := performJSON(router, http.MethodGet, "/api/bookings/not-a-number", nil, bearerToken(t, user))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid ID format", decodeBody(t, w)["message"])
}

func TestOwnerCancelBooking(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)
	booking := newTestBooking(t, user, pkg, time.Now().AddDate(0, 0, 10))

	w := performJSON(router, http.MethodPut, fmt.Sprintf("/api/bookings/%d", booking.ID),
		map[string]string{"bookingStatus": "cancelled"}, bearerToken(t, user))
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Booking
	require.NoError(t, database.DB.First(&stored, booking.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, stored.BookingStatus)
}

func TestOwnerCancelInsideCutoff(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)
	booking := newTestBooking(t, user, pkg, time.Now().Add(6*time.Hour))

	w := performJSON(router, http.MethodPut, fmt.Sprintf("/api/bookings/%d", booking.ID),
		map[string]string{"bookingStatus": "cancelled"}, bearerToken(t, user))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cannot cancel booking less than 24 hours before travel date",
		decodeBody(t, w)["message"])

	var stored models.Booking
	require.NoError(t, database.DB.First(&stored, booking.ID).Error)
	assert.Equal(t, models.BookingStatusConfirmed, stored.BookingStatus)
}

func TestOwnerNonCancelChangeInsideCutoff(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)
	booking := newTestBooking(t, user, pkg, time.Now().Add(6*time.Hour))

	// Only cancellation is guarded by the cutoff
	w := performJSON(router, http.MethodPut, fmt.Sprintf("/api/bookings/%d", booking.ID),
		map[string]string{"bookingStatus": "completed"}, bearerToken(t, user))
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Booking
	require.NoError(t, database.DB.First(&stored, booking.ID).Error)
	assert.Equal(t, models.BookingStatusCompleted, stored.BookingStatus)
}

func TestOwnerUpdateSpecialRequests(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)
	booking := newTestBooking(t, user, pkg, time.Now().AddDate(0, 0, 10))

	w := performJSON(router, http.MethodPut, fmt.Sprintf("/api/bookings/%d", booking.ID),
		map[string]string{"specialRequests": "Vegetarian meals"}, bearerToken(t, user))
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Booking
	require.NoError(t, database.DB.First(&stored, booking.ID).Error)
	assert.Equal(t, "Vegetarian meals", stored.SpecialRequests)
	assert.Equal(t, models.BookingStatusConfirmed, stored.BookingStatus)
}

func TestAdminListRequiresAdminRole(t *testing.T) {
	router := setupTest(t)
	user := createUser(t, "asha@example.com", models.RoleUser)

	w := performJSON(router, http.MethodGet, "/api/bookings/admin/all", nil, bearerToken(t, user))
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Unauthorized access", decodeBody(t, w)["message"])
}

func TestAdminListBookings(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)

	newTestBooking(t, user, pkg, time.Now().AddDate(0, 0, 5))
	cancelled := newTestBooking(t, user, pkg, time.Now().AddDate(0, 0, 6))
	require.NoError(t, database.DB.Model(&cancelled).
		Update("booking_status", models.BookingStatusCancelled).Error)

	w := performJSON(router, http.MethodGet, "/api/bookings/admin/all", nil, bearerToken(t, admin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"].([]interface{}), 2)

	w = performJSON(router, http.MethodGet, "/api/bookings/admin/all?status=cancelled", nil, bearerToken(t, admin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"].([]interface{}), 1)
}

func TestAdminUpdatePaymentStatus(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)
	booking := newTestBooking(t, user, pkg, time.Now().AddDate(0, 0, 5))

	path := fmt.Sprintf("/api/bookings/admin/%d/payment", booking.ID)

	w := performJSON(router, http.MethodPut, path,
		map[string]string{"paymentStatus": "paid"}, bearerToken(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Booking
	require.NoError(t, database.DB.First(&stored, booking.ID).Error)
	assert.Equal(t, models.PaymentStatusPaid, stored.PaymentStatus)

	w = performJSON(router, http.MethodPut, path,
		map[string]string{"paymentStatus": "settled"}, bearerToken(t, admin))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid payment status", decodeBody(t, w)["message"])
}

func TestAdminUpdateBookingStatus(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)
	booking := newTestBooking(t, user, pkg, time.Now().AddDate(0, 0, 5))

	path := fmt.Sprintf("/api/bookings/admin/%d/status", booking.ID)

	w := performJSON(router, http.MethodPut, path,
		map[string]string{"status": "completed"}, bearerToken(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Booking
	require.NoError(t, database.DB.First(&stored, booking.ID).Error)
	assert.Equal(t, models.BookingStatusCompleted, stored.BookingStatus)
}

func TestAdminUpdateBookingStatusRejectsPending(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)
	user := createUser(t, "asha@example.com", models.RoleUser)
	pkg := newTestPackage(t, 4500)
	booking := newTestBooking(t, user, pkg, time.Now().AddDate(0, 0, 5))

	// "pending" belongs to the payment enumeration, not booking status
	w := performJSON(router, http.MethodPut,
		fmt.Sprintf("/api/bookings/admin/%d/status", booking.ID),
		map[string]string{"status": "pending"}, bearerToken(t, admin))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid booking status", decodeBody(t, w)["message"])
}

func TestBookingRequiresAuth(t *testing.T) {
	router := setupTest(t)

	w := performJSON(router, http.MethodGet, "/api/bookings/my-bookings", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel-agency-server/database"
	"travel-agency-server/logger"
	"travel-agency-server/middleware"
	"travel-agency-server/models"
	"travel-agency-server/ws"
)

// RegisterBookingRoutes registers the booking surface. Every route requires
// authentication; the admin subtree additionally requires the admin role.
func RegisterBookingRoutes(rg *gin.RouterGroup, hub *ws.Hub) {
	rg.Use(middleware.AuthMiddleware())

	rg.POST("", func(c *gin.Context) { createBooking(c, hub) })
	rg.GET("/my-bookings", getMyBookings)
	rg.GET("/:id", getBooking)
	rg.PUT("/:id", updateBooking)

	admin := rg.Group("/admin")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/all", adminListBookings)
		admin.PUT("/:id/payment", adminUpdatePaymentStatus)
		admin.PUT("/:id/status", adminUpdateBookingStatus)
	}
}

type contactOverride struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type createBookingRequest struct {
	PackageID       uint             `json:"packageId"`
	PackageName     string           `json:"packageName"`
	Price           float64          `json:"price"`
	NumberOfDays    int              `json:"numberOfDays"`
	NumberOfNights  int              `json:"numberOfNights"`
	TravelDate      string           `json:"travelDate"`
	UserDetails     *contactOverride `json:"userDetails"`
	NumberOfPeople  int              `json:"numberOfPeople"`
	SpecialRequests string           `json:"specialRequests"`
}

type updateBookingRequest struct {
	BookingStatus   models.BookingStatus `json:"bookingStatus"`
	SpecialRequests *string              `json:"specialRequests"`
}

// resolveContactField applies the three-tier fallback for a single contact
// field: caller override, then the stored profile value, then a placeholder.
// The literal string "undefined" counts as absent at both tiers.
func resolveContactField(override, profile, placeholder string) string {
	if override != "" && override != "undefined" {
		return override
	}
	if profile != "" && profile != "undefined" {
		return profile
	}
	return placeholder
}

func parseTravelDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

func createBooking(c *gin.Context, hub *ws.Hub) {
	user, _ := middleware.CurrentUser(c)

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	if req.PackageID == 0 || req.PackageName == "" || req.Price <= 0 ||
		req.NumberOfDays <= 0 || req.NumberOfNights <= 0 || req.TravelDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required booking information",
		})
		return
	}

	travelDate, err := parseTravelDate(req.TravelDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid travel date format",
		})
		return
	}

	if !models.ValidTravelDate(travelDate, time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Travel date must be at least 1 day from today",
		})
		return
	}

	var pkg models.Package
	if err := database.DB.First(&pkg, req.PackageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Package not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to load package %d: %v", req.PackageID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating booking",
		})
		return
	}

	// Re-fetch the profile so the contact snapshot reflects current storage,
	// not a stale token-derived copy.
	var owner models.User
	if err := database.DB.First(&owner, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "User not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to load user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating booking",
		})
		return
	}

	override := contactOverride{}
	if req.UserDetails != nil {
		override = *req.UserDetails
	}

	contact := models.ContactDetails{
		Name:    resolveContactField(override.Username, owner.Name, "Guest User"),
		Email:   resolveContactField(override.Email, owner.Email, "no-email@example.com"),
		Phone:   resolveContactField(override.Phone, owner.Phone, "No phone provided"),
		Address: resolveContactField(override.Address, owner.Address, "No address provided"),
	}

	numberOfPeople := req.NumberOfPeople
	if numberOfPeople <= 0 {
		numberOfPeople = 1
	}

	booking := models.Booking{
		UserID:          owner.ID,
		PackageID:       pkg.ID,
		PackageName:     req.PackageName,
		Price:           req.Price,
		NumberOfDays:    req.NumberOfDays,
		NumberOfNights:  req.NumberOfNights,
		TravelDate:      travelDate,
		BookingDate:     time.Now(),
		PaymentStatus:   models.PaymentStatusPending,
		BookingStatus:   models.BookingStatusConfirmed,
		Contact:         contact,
		SpecialRequests: req.SpecialRequests,
		NumberOfPeople:  numberOfPeople,
		TotalAmount:     req.Price * float64(numberOfPeople),
	}

	if err := database.DB.Create(&booking).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to create booking for user %d: %v", owner.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating booking",
		})
		return
	}

	logger.InfoLogger.Infof("Booking %d created by user %d for package %d", booking.ID, owner.ID, pkg.ID)

	if hub != nil {
		hub.Publish(ws.EventBookingCreated, gin.H{
			"booking_id":   booking.ID,
			"package_name": booking.PackageName,
			"travel_date":  booking.TravelDate,
			"total_amount": booking.TotalAmount,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"data":    booking,
	})
}

func getMyBookings(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	page, limit, offset := pageParams(c, 10)

	var bookings []models.Booking
	if err := database.DB.
		Where("user_id = ?", user.ID).
		Preload("Package").
		Order("booking_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to list bookings for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching bookings",
		})
		return
	}

	var total int64
	if err := database.DB.Model(&models.Booking{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to count bookings for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching bookings",
		})
		return
	}

	pages := totalPages(total, limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
		"pagination": gin.H{
			"currentPage":   page,
			"totalPages":    pages,
			"totalBookings": total,
			"hasNext":       page < pages,
			"hasPrev":       page > 1,
		},
	})
}

// getBooking returns a booking only when it belongs to the caller. Ownership
// is part of the query filter, so someone else's booking is indistinguishable
// from a nonexistent one.
func getBooking(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var booking models.Booking
	err := database.DB.
		Where("id = ? AND user_id = ?", id, user.ID).
		Preload("Package").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching booking details",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    booking,
	})
}

func updateBooking(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	var booking models.Booking
	err := database.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating booking",
		})
		return
	}

	if req.BookingStatus != "" {
		if err := booking.CanTransition(models.ActorOwner, req.BookingStatus, time.Now()); err != nil {
			switch {
			case errors.Is(err, models.ErrCancellationWindow):
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": "Cannot cancel booking less than 24 hours before travel date",
				})
			default:
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"message": "Invalid booking status",
				})
			}
			return
		}
		booking.BookingStatus = req.BookingStatus
	}
	if req.SpecialRequests != nil {
		booking.SpecialRequests = *req.SpecialRequests
	}

	if err := database.DB.Save(&booking).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to update booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating booking",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking updated successfully",
		"data":    booking,
	})
}

func adminListBookings(c *gin.Context) {
	page, limit, offset := pageParams(c, 20)

	query := database.DB.Model(&models.Booking{})
	if status := c.Query("status"); status != "" {
		query = query.Where("booking_status = ?", status)
	}
	if paymentStatus := c.Query("paymentStatus"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to count bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching bookings",
		})
		return
	}

	var bookings []models.Booking
	if err := query.
		Preload("User").
		Preload("Package").
		Order("booking_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to list bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching bookings",
		})
		return
	}

	pages := totalPages(total, limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bookings,
		"pagination": gin.H{
			"currentPage":   page,
			"totalPages":    pages,
			"totalBookings": total,
			"hasNext":       page < pages,
			"hasPrev":       page > 1,
		},
	})
}

func adminUpdatePaymentStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		PaymentStatus models.PaymentStatus `json:"paymentStatus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.PaymentStatus.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid payment status",
		})
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating payment status",
		})
		return
	}

	if err := database.DB.Model(&booking).Update("payment_status", req.PaymentStatus).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to update payment status for booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating payment status",
		})
		return
	}

	logger.InfoLogger.Infof("Payment status for booking %d set to %s", id, req.PaymentStatus)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment status updated successfully",
		"data":    booking,
	})
}

// adminUpdateBookingStatus sets the fulfillment state. The authoritative
// enumeration is confirmed|cancelled|completed; "pending" is not a booking
// status and is rejected here.
func adminUpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking status",
		})
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Booking not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating booking status",
		})
		return
	}

	if err := booking.CanTransition(models.ActorAdmin, req.Status, time.Now()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid booking status",
		})
		return
	}

	if err := database.DB.Model(&booking).Update("booking_status", req.Status).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to update status for booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating booking status",
		})
		return
	}

	if err := database.DB.Preload("User").Preload("Package").First(&booking, id).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to reload booking %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating booking status",
		})
		return
	}

	logger.InfoLogger.Infof("Booking %d status set to %s", id, req.Status)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking status updated successfully",
		"data":    booking,
	})
}

package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"travel-agency-server/database"
	"travel-agency-server/logger"
	"travel-agency-server/mailer"
	"travel-agency-server/middleware"
	"travel-agency-server/models"
	"travel-agency-server/ws"
)

// RegisterEnquiryRoutes registers enquiry routes. Submission is public,
// management requires the admin role.
func RegisterEnquiryRoutes(rg *gin.RouterGroup, hub *ws.Hub) {
	rg.POST("", func(c *gin.Context) { createEnquiry(c, hub) })

	admin := rg.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("", listEnquiries)
		admin.GET("/:id", getEnquiry)
		admin.PATCH("/:id/status", updateEnquiryStatus)
	}
}

type enquiryRequest struct {
	Name         string   `json:"name" binding:"required,min=2,max=100"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone" binding:"required,min=7,max=20"`
	Destinations []string `json:"destinations" binding:"required,min=1"`
	TravelDate   string   `json:"travelDate" binding:"required"`
	Travelers    int      `json:"travelers" binding:"required,min=1"`
	Budget       string   `json:"budget" binding:"required"`
	Message      string   `json:"message" binding:"max=2000"`
}

func createEnquiry(c *gin.Context, hub *ws.Hub) {
	var req enquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all required enquiry details",
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

	enquiry := models.Enquiry{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Destinations: datatypes.NewJSONSlice(req.Destinations),
		TravelDate:   travelDate,
		Travelers:    req.Travelers,
		Budget:       req.Budget,
		Message:      req.Message,
		Status:       models.EnquiryStatusPending,
	}

	if err := database.DB.Create(&enquiry).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to create enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error submitting enquiry",
		})
		return
	}

	logger.InfoLogger.Infof("Enquiry %d received from %s", enquiry.ID, enquiry.Email)

	go mailer.NotifyEnquiry(&enquiry)
	hub.Publish(ws.EventEnquiryCreated, enquiry)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Enquiry submitted successfully. We will contact you soon!",
		"data":    enquiry,
	})
}

func listEnquiries(c *gin.Context) {
	page, limit, offset := pageParams(c, 20)

	query := database.DB.Model(&models.Enquiry{})
	if status := models.EnquiryStatus(c.Query("status")); status != "" && status.IsValid() {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to count enquiries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching enquiries",
		})
		return
	}

	var enquiries []models.Enquiry
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&enquiries).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to list enquiries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching enquiries",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    enquiries,
		"pagination": gin.H{
			"currentPage": page,
			"totalPages":  totalPages(total, limit),
			"total":       total,
		},
	})
}

func getEnquiry(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var enquiry models.Enquiry
	if err := database.DB.First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Enquiry not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch enquiry %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching enquiry",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    enquiry,
	})
}

func updateEnquiryStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status models.EnquiryStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid enquiry status",
		})
		return
	}

	var enquiry models.Enquiry
	if err := database.DB.First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Enquiry not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch enquiry %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating enquiry",
		})
		return
	}

	enquiry.Status = req.Status
	enquiry.UpdatedAt = time.Now()
	if err := database.DB.Save(&enquiry).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to update enquiry %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating enquiry",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Enquiry status updated successfully",
		"data":    enquiry,
	})
}

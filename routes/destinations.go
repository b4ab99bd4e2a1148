package routes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"travel-agency-server/database"
	"travel-agency-server/logger"
	"travel-agency-server/middleware"
	"travel-agency-server/models"
	"travel-agency-server/storage"
)

// RegisterDestinationRoutes registers destination catalog routes
func RegisterDestinationRoutes(rg *gin.RouterGroup, store storage.Store) {
	rg.GET("", listDestinations)
	rg.GET("/:id", getDestination)

	admin := rg.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", func(c *gin.Context) { createDestination(c, store) })
		admin.PUT("/:id", func(c *gin.Context) { updateDestination(c, store) })
		admin.DELETE("/:id", deleteDestination)
	}
}

type destinationForm struct {
	DestinationName string
	Description     string
	Category        models.DestinationCategory
	Tags            []string
	Featured        *bool
	Coordinates     models.Coordinates
}

func bindDestinationForm(c *gin.Context) (*destinationForm, string) {
	form := &destinationForm{
		DestinationName: strings.TrimSpace(c.PostForm("destinationName")),
		Description:     strings.TrimSpace(c.PostForm("description")),
		Category:        models.DestinationCategory(c.PostForm("category")),
	}
	if tags := c.PostForm("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				form.Tags = append(form.Tags, trimmed)
			}
		}
	}
	if featured, ok := c.GetPostForm("featured"); ok {
		value := featured == "true"
		form.Featured = &value
	}

	if len(form.DestinationName) < 2 || len(form.DestinationName) > 100 {
		return nil, "Destination name is required and must be at least 2 characters"
	}
	if len(form.Description) < 10 || len(form.Description) > 1000 {
		return nil, "Description is required and must be at least 10 characters"
	}
	if !form.Category.IsValid() {
		return nil, "Valid category is required (south-andaman, north-andaman, or middle-andaman)"
	}

	if raw := c.PostForm("latitude"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, "Latitude must be between -90 and 90"
		}
		form.Coordinates.Latitude = &lat
	}
	if raw := c.PostForm("longitude"); raw != "" {
		lng, err := strconv.ParseFloat(raw, 64)
		if err != nil || lng < -180 || lng > 180 {
			return nil, "Longitude must be between -180 and 180"
		}
		form.Coordinates.Longitude = &lng
	}
	return form, ""
}

func listDestinations(c *gin.Context) {
	query := database.DB.Model(&models.Destination{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var destinations []models.Destination
	if err := query.Order("created_at DESC").Find(&destinations).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to list destinations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch locations",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    destinations,
	})
}

func getDestination(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var destination models.Destination
	if err := database.DB.First(&destination, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Location not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch destination %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch location",
		})
		return
	}

	// View counter is advisory, a lost increment is fine
	database.DB.Model(&destination).Update("views", gorm.Expr("views + 1"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    destination,
	})
}

func createDestination(c *gin.Context, store storage.Store) {
	form, msg := bindDestinationForm(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": msg,
		})
		return
	}

	header, err := c.FormFile("thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Thumbnail image is required",
		})
		return
	}
	if !storage.ValidImageFile(header) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid file type. Only images are allowed.",
		})
		return
	}

	saved, err := store.Save(header, "locations")
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to store destination thumbnail: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create location",
		})
		return
	}

	destination := models.Destination{
		DestinationName:   form.DestinationName,
		Description:       form.Description,
		Category:          form.Category,
		ThumbnailURL:      saved.URL,
		ThumbnailFileName: saved.FileName,
		Tags:              datatypes.NewJSONSlice(form.Tags),
		Coordinates:       form.Coordinates,
		IsActive:          true,
	}
	if form.Featured != nil {
		destination.Featured = *form.Featured
	}

	if err := database.DB.Create(&destination).Error; err != nil {
		store.Remove(saved)
		logger.ErrorLogger.Errorf("Failed to create destination: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create location",
		})
		return
	}

	logger.InfoLogger.Infof("Destination %d created", destination.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Location created successfully",
		"data":    destination,
	})
}

func updateDestination(c *gin.Context, store storage.Store) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	form, msg := bindDestinationForm(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": msg,
		})
		return
	}

	var destination models.Destination
	if err := database.DB.First(&destination, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Location not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch destination %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update location",
		})
		return
	}

	destination.DestinationName = form.DestinationName
	destination.Description = form.Description
	destination.Category = form.Category
	if len(form.Tags) > 0 {
		destination.Tags = datatypes.NewJSONSlice(form.Tags)
	}
	if form.Featured != nil {
		destination.Featured = *form.Featured
	}
	if form.Coordinates.Latitude != nil {
		destination.Coordinates.Latitude = form.Coordinates.Latitude
	}
	if form.Coordinates.Longitude != nil {
		destination.Coordinates.Longitude = form.Coordinates.Longitude
	}

	if header, err := c.FormFile("thumbnail"); err == nil {
		if !storage.ValidImageFile(header) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid file type. Only images are allowed.",
			})
			return
		}
		saved, err := store.Save(header, "locations")
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to store destination thumbnail: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to update location",
			})
			return
		}
		store.Remove(&storage.SavedFile{Path: localPathFromURL(destination.ThumbnailURL)})
		destination.ThumbnailURL = saved.URL
		destination.ThumbnailFileName = saved.FileName
	}

	if err := database.DB.Save(&destination).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to update destination %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update location",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Location updated successfully",
		"data":    destination,
	})
}

func deleteDestination(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result := database.DB.Model(&models.Destination{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		logger.ErrorLogger.Errorf("Failed to delete destination %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete location",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Location not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Location deleted successfully",
	})
}

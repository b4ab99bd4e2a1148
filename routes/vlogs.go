package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel-agency-server/database"
	"travel-agency-server/logger"
	"travel-agency-server/middleware"
	"travel-agency-server/models"
	"travel-agency-server/storage"
)

// RegisterVlogRoutes registers vlog routes
func RegisterVlogRoutes(rg *gin.RouterGroup, store storage.Store) {
	rg.GET("", listVlogs)
	rg.GET("/:id", getVlog)

	admin := rg.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", func(c *gin.Context) { createVlog(c, store) })
		admin.PUT("/:id", func(c *gin.Context) { updateVlog(c, store) })
		admin.DELETE("/:id", deleteVlog)
	}
}

func listVlogs(c *gin.Context) {
	var vlogs []models.Vlog
	if err := database.DB.Order("created_at DESC").Find(&vlogs).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to list vlogs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching vlogs",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    vlogs,
	})
}

func getVlog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var vlog models.Vlog
	if err := database.DB.First(&vlog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Vlog not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch vlog %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching vlog",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    vlog,
	})
}

func createVlog(c *gin.Context, store storage.Store) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	videoURL := c.PostForm("videoUrl")
	isFeatured := c.PostForm("isFeatured") == "true"

	if title == "" || description == "" || videoURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Title, description and video URL are required",
		})
		return
	}

	vlog := models.Vlog{
		Title:       title,
		Description: description,
		VideoURL:    videoURL,
		IsFeatured:  isFeatured,
	}

	if header, err := c.FormFile("thumbnail"); err == nil {
		if !storage.ValidImageFile(header) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Only image files are allowed",
			})
			return
		}
		saved, err := store.Save(header, "vlogs")
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to store vlog thumbnail: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error creating vlog",
			})
			return
		}
		vlog.Thumbnail = saved.URL
	}

	if err := database.DB.Create(&vlog).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to create vlog: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating vlog",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Vlog created successfully",
		"data":    vlog,
	})
}

func updateVlog(c *gin.Context, store storage.Store) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var vlog models.Vlog
	if err := database.DB.First(&vlog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Vlog not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch vlog %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating vlog",
		})
		return
	}

	if title := c.PostForm("title"); title != "" {
		vlog.Title = title
	}
	if description := c.PostForm("description"); description != "" {
		vlog.Description = description
	}
	if videoURL := c.PostForm("videoUrl"); videoURL != "" {
		vlog.VideoURL = videoURL
	}
	if featured, ok := c.GetPostForm("isFeatured"); ok {
		vlog.IsFeatured = featured == "true"
	}

	if header, err := c.FormFile("thumbnail"); err == nil {
		if !storage.ValidImageFile(header) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Only image files are allowed",
			})
			return
		}
		saved, err := store.Save(header, "vlogs")
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to store vlog thumbnail: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error updating vlog",
			})
			return
		}
		store.Remove(&storage.SavedFile{Path: localPathFromURL(vlog.Thumbnail)})
		vlog.Thumbnail = saved.URL
	}

	if err := database.DB.Save(&vlog).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to update vlog %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating vlog",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vlog updated successfully",
		"data":    vlog,
	})
}

func deleteVlog(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result := database.DB.Delete(&models.Vlog{}, id)
	if result.Error != nil {
		logger.ErrorLogger.Errorf("Failed to delete vlog %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting vlog",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Vlog not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vlog deleted successfully",
	})
}

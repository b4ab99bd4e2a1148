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

const maxGalleryFilesPerUpload = 10

// RegisterGalleryRoutes registers gallery media routes
func RegisterGalleryRoutes(rg *gin.RouterGroup, store storage.Store) {
	rg.GET("", listGalleryItems)
	rg.GET("/:id", getGalleryItem)

	admin := rg.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/upload", func(c *gin.Context) { uploadGalleryItems(c, store) })
		admin.PUT("/:id", updateGalleryItem)
		admin.DELETE("/:id", func(c *gin.Context) { deleteGalleryItem(c, store) })
	}
}

func uploadGalleryItems(c *gin.Context, store storage.Store) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid form data",
		})
		return
	}

	files := form.File["files"]
	titles := form.Value["titles"]

	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "No files uploaded",
		})
		return
	}
	if len(files) > maxGalleryFilesPerUpload {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Too many files in a single upload",
		})
		return
	}
	if len(titles) != len(files) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Number of titles must match number of files",
		})
		return
	}

	for _, header := range files {
		if !storage.ValidMediaFile(header) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Only image and video files are allowed",
			})
			return
		}
	}

	var saved []models.GalleryItem
	for i, header := range files {
		stored, err := store.Save(header, "gallery")
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to store gallery file %s: %v", header.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error uploading files",
			})
			return
		}

		fileType := models.GalleryFileImage
		if storage.IsVideo(header) {
			fileType = models.GalleryFileVideo
		}

		item := models.GalleryItem{
			Title:    titles[i],
			FileName: stored.FileName,
			FilePath: stored.URL,
			FileType: fileType,
			MimeType: stored.MimeType,
			FileSize: stored.Size,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			store.Remove(stored)
			logger.ErrorLogger.Errorf("Failed to create gallery item: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error uploading files",
			})
			return
		}
		saved = append(saved, item)
	}

	logger.InfoLogger.Infof("Uploaded %d gallery items", len(saved))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Files uploaded successfully",
		"data":    saved,
	})
}

func listGalleryItems(c *gin.Context) {
	page, limit, offset := pageParams(c, 10)

	query := database.DB.Model(&models.GalleryItem{})
	if fileType := c.Query("type"); fileType == "image" || fileType == "video" {
		query = query.Where("file_type = ?", fileType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to count gallery items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching gallery items",
		})
		return
	}

	var items []models.GalleryItem
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to list gallery items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching gallery items",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        items,
		"total":       total,
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
	})
}

func getGalleryItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var item models.GalleryItem
	if err := database.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Gallery item not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch gallery item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching gallery item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

func updateGalleryItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Title is required",
		})
		return
	}

	var item models.GalleryItem
	if err := database.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Gallery item not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch gallery item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating gallery item",
		})
		return
	}

	if err := database.DB.Model(&item).Update("title", req.Title).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to update gallery item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating gallery item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gallery item updated successfully",
		"data":    item,
	})
}

func deleteGalleryItem(c *gin.Context, store storage.Store) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var item models.GalleryItem
	if err := database.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Gallery item not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch gallery item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting gallery item",
		})
		return
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to delete gallery item %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting gallery item",
		})
		return
	}

	store.Remove(&storage.SavedFile{FileName: item.FileName, Path: localPathFromURL(item.FilePath)})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Gallery item deleted successfully",
	})
}

package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel-agency-server/database"
	"travel-agency-server/logger"
	"travel-agency-server/middleware"
	"travel-agency-server/models"
	"travel-agency-server/storage"
)

// RegisterPackageRoutes registers catalog routes. Reads are public, writes
// require the admin role.
func RegisterPackageRoutes(rg *gin.RouterGroup, store storage.Store) {
	rg.GET("", listPackages)
	rg.GET("/:id", getPackage)

	admin := rg.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", func(c *gin.Context) { createPackage(c, store) })
		admin.PUT("/:id", func(c *gin.Context) { updatePackage(c, store) })
		admin.DELETE("/:id", deletePackage)
		admin.DELETE("/:id/permanent", func(c *gin.Context) { permanentDeletePackage(c, store) })
	}
}

func listPackages(c *gin.Context) {
	var packages []models.Package
	if err := database.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&packages).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to list packages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching packages",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    packages,
	})
}

func getPackage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var pkg models.Package
	if err := database.DB.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Package not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch package %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching package",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    pkg,
	})
}

type packageForm struct {
	PackageName         string
	ShortDescription    string
	NumberOfDays        int
	NumberOfNights      int
	Price               float64
	DetailedDescription string
}

func bindPackageForm(c *gin.Context) (*packageForm, string) {
	form := &packageForm{
		PackageName:         c.PostForm("packageName"),
		ShortDescription:    c.PostForm("shortDescription"),
		DetailedDescription: c.PostForm("detailedDescription"),
	}
	form.NumberOfDays, _ = strconv.Atoi(c.PostForm("numberOfDays"))
	form.NumberOfNights, _ = strconv.Atoi(c.PostForm("numberOfNights"))
	form.Price, _ = strconv.ParseFloat(c.PostForm("price"), 64)

	if form.PackageName == "" || form.ShortDescription == "" || form.DetailedDescription == "" {
		return nil, "Package name and descriptions are required"
	}
	if len(form.ShortDescription) > 200 {
		return nil, "Short description cannot exceed 200 characters"
	}
	if form.NumberOfDays < 1 {
		return nil, "Number of days must be at least 1"
	}
	if form.NumberOfNights < 0 {
		return nil, "Number of nights cannot be negative"
	}
	if form.Price < 0 {
		return nil, "Price cannot be negative"
	}
	return form, ""
}

func createPackage(c *gin.Context, store storage.Store) {
	form, msg := bindPackageForm(c)
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
			"message": "Only image files are allowed",
		})
		return
	}

	saved, err := store.Save(header, "packages")
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to store package thumbnail: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating package",
		})
		return
	}

	pkg := models.Package{
		PackageName:         form.PackageName,
		Thumbnail:           saved.URL,
		ShortDescription:    form.ShortDescription,
		NumberOfDays:        form.NumberOfDays,
		NumberOfNights:      form.NumberOfNights,
		Price:               form.Price,
		DetailedDescription: form.DetailedDescription,
		IsActive:            true,
	}

	if err := database.DB.Create(&pkg).Error; err != nil {
		store.Remove(saved)
		logger.ErrorLogger.Errorf("Failed to create package: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating package",
		})
		return
	}

	logger.InfoLogger.Infof("Package %d created", pkg.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Package created successfully",
		"data":    pkg,
	})
}

func updatePackage(c *gin.Context, store storage.Store) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	form, msg := bindPackageForm(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": msg,
		})
		return
	}

	var pkg models.Package
	if err := database.DB.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Package not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch package %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating package",
		})
		return
	}

	pkg.PackageName = form.PackageName
	pkg.ShortDescription = form.ShortDescription
	pkg.NumberOfDays = form.NumberOfDays
	pkg.NumberOfNights = form.NumberOfNights
	pkg.Price = form.Price
	pkg.DetailedDescription = form.DetailedDescription

	if header, err := c.FormFile("thumbnail"); err == nil {
		if !storage.ValidImageFile(header) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Only image files are allowed",
			})
			return
		}
		saved, err := store.Save(header, "packages")
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to store package thumbnail: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error updating package",
			})
			return
		}
		store.Remove(&storage.SavedFile{Path: localPathFromURL(pkg.Thumbnail)})
		pkg.Thumbnail = saved.URL
	}

	if err := database.DB.Save(&pkg).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to update package %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating package",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Package updated successfully",
		"data":    pkg,
	})
}

func deletePackage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result := database.DB.Model(&models.Package{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		logger.ErrorLogger.Errorf("Failed to delete package %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting package",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Package not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Package deleted successfully",
	})
}

func permanentDeletePackage(c *gin.Context, store storage.Store) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var pkg models.Package
	if err := database.DB.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Package not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch package %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting package",
		})
		return
	}

	if err := database.DB.Delete(&pkg).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to delete package %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting package",
		})
		return
	}

	store.Remove(&storage.SavedFile{Path: localPathFromURL(pkg.Thumbnail)})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Package permanently deleted",
	})
}

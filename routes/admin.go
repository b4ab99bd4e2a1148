package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-agency-server/database"
	"travel-agency-server/logger"
	"travel-agency-server/middleware"
	"travel-agency-server/models"
)

// RegisterAdminRoutes registers administrative user-management routes
func RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	rg.GET("/users", listUsers)
}

func listUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Where("role <> ?", models.RoleAdmin).Order("created_at DESC").Find(&users).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching users",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
	})
}

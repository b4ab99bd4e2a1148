package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travel-agency-server/database"
	"travel-agency-server/logger"
	"travel-agency-server/middleware"
	"travel-agency-server/models"
	"travel-agency-server/utils"
)

// RegisterAuthRoutes registers registration/login/profile routes
func RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", register)
	rg.POST("/login", login)
	rg.GET("/me", middleware.AuthMiddleware(), me)
}

type registerRequest struct {
	Name     string        `json:"name" binding:"required"`
	Email    string        `json:"email" binding:"required,email"`
	Age      int           `json:"age" binding:"required,min=1,max=150"`
	Gender   models.Gender `json:"gender" binding:"required,oneof=male female other"`
	Phone    string        `json:"phone" binding:"required"`
	Address  string        `json:"address" binding:"required"`
	Password string        `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userView(user *models.User) gin.H {
	return gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"isAdmin": user.IsAdmin(),
	}
}

func register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation error",
			"errors":  []string{err.Error()},
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "User already exists with this email",
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Age:          req.Age,
		Gender:       req.Gender,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to generate token for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to generate token",
		})
		return
	}

	logger.InfoLogger.Infof("User %d registered", user.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user":    userView(&user),
	})
}

func login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email and password are required",
		})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Account is deactivated",
		})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to generate token for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to generate token",
		})
		return
	}

	logger.InfoLogger.Infof("User %d logged in", user.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    userView(&user),
	})
}

func me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    userView(&user),
	})
}

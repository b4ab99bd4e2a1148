package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"travel-agency-server/config"
	"travel-agency-server/database"
	"travel-agency-server/jobs"
	"travel-agency-server/logger"
	"travel-agency-server/middleware"
	"travel-agency-server/models"
	"travel-agency-server/routes"
	"travel-agency-server/storage"
	"travel-agency-server/utils"
	"travel-agency-server/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.InfoLogger.Info("No .env file found, using environment variables")
	}

	config.Load()
	logger.InitLoggers()

	gin.SetMode(config.AppConfig.Server.GinMode)

	if err := database.Initialize(); err != nil {
		logger.ErrorLogger.Fatalf("Failed to initialize database: %v", err)
	}

	store := storage.NewFromEnv()

	hub := ws.NewHub()
	go hub.Run()

	completionJob := jobs.NewCompletionJob()
	completionJob.Start()
	defer completionJob.Stop()

	router := setupRouter(store, hub)

	port := config.AppConfig.Server.Port
	logger.InfoLogger.Infof("🚀 Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logger.ErrorLogger.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(store storage.Store, hub *ws.Hub) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Server is running",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	router.Static("/uploads", config.AppConfig.Upload.Dir)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(auth)

		routes.RegisterAdminRoutes(api.Group("/admin"))
		routes.RegisterPackageRoutes(api.Group("/packages"), store)
		routes.RegisterDestinationRoutes(api.Group("/destinations"), store)
		routes.RegisterHotelRoutes(api.Group("/hotels"), store)
		routes.RegisterVlogRoutes(api.Group("/vlogs"), store)
		routes.RegisterGalleryRoutes(api.Group("/gallery"), store)
		routes.RegisterEnquiryRoutes(api.Group("/enquiries"), hub)
		routes.RegisterBookingRoutes(api.Group("/bookings"), hub)

		api.GET("/ws/admin", func(c *gin.Context) { serveAdminSocket(c, hub) })
	}

	return router
}

// serveAdminSocket authenticates the dashboard WebSocket via a token query
// parameter, since browsers cannot set headers on WebSocket upgrades.
func serveAdminSocket(c *gin.Context, hub *ws.Hub) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication required",
		})
		return
	}

	claims, err := utils.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid or expired token",
		})
		return
	}

	var user models.User
	if err := database.DB.First(&user, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	if !user.IsAdmin() || !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Unauthorized access",
		})
		return
	}

	ws.ServeWebSocket(hub, c.Writer, c.Request, user.ID)
}

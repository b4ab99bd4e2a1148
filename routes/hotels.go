package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"travel-agency-server/database"
	"travel-agency-server/logger"
	"travel-agency-server/middleware"
	"travel-agency-server/models"
	"travel-agency-server/storage"
)

const minRoomImages = 3

// RegisterHotelRoutes registers hotel and room routes
func RegisterHotelRoutes(rg *gin.RouterGroup, store storage.Store) {
	rg.GET("", listHotels)
	rg.GET("/:id", getHotel)

	admin := rg.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", func(c *gin.Context) { createHotel(c, store) })
		admin.PUT("/:id", func(c *gin.Context) { updateHotel(c, store) })
		admin.DELETE("/:id", deleteHotel)
		admin.POST("/:id/rooms", func(c *gin.Context) { addRoom(c, store) })
		admin.DELETE("/:id/rooms/:roomId", deleteRoom)
	}
}

type roomInput struct {
	RoomType     models.RoomType `json:"roomType"`
	BedType      models.BedType  `json:"bedType"`
	ACType       models.ACType   `json:"acType"`
	Price        float64         `json:"price"`
	Availability *bool           `json:"availability"`
}

func (r *roomInput) validate() string {
	if r.RoomType != models.RoomTypeDeluxe && r.RoomType != models.RoomTypeNormal {
		return "Room type must be deluxe or normal"
	}
	if r.BedType != models.BedTypeSingle && r.BedType != models.BedTypeDouble {
		return "Bed type must be single or double"
	}
	if r.ACType != models.ACTypeAC && r.ACType != models.ACTypeNonAC {
		return "AC type must be AC or Non-AC"
	}
	if r.Price <= 0 {
		return "Room price must be greater than zero"
	}
	return ""
}

func listHotels(c *gin.Context) {
	var hotels []models.Hotel
	if err := database.DB.Where("is_active = ?", true).Preload("Rooms").Order("created_at DESC").Find(&hotels).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to list hotels: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching hotels",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    hotels,
	})
}

func getHotel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var hotel models.Hotel
	if err := database.DB.Preload("Rooms").First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Hotel not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch hotel %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching hotel",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    hotel,
	})
}

func createHotel(c *gin.Context, store storage.Store) {
	hotelName := c.PostForm("hotelName")
	hotelLocation := c.PostForm("hotelLocation")
	locationLink := c.PostForm("locationLink")
	hotelAddress := c.PostForm("hotelAddress")
	description := c.PostForm("description")

	if hotelName == "" || hotelLocation == "" || locationLink == "" || hotelAddress == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "All hotel fields are required",
		})
		return
	}

	header, err := c.FormFile("hotelImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Hotel image is required",
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

	saved, err := store.Save(header, "hotels")
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to store hotel image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating hotel",
		})
		return
	}

	hotel := models.Hotel{
		HotelName:     hotelName,
		HotelLocation: hotelLocation,
		LocationLink:  locationLink,
		HotelAddress:  hotelAddress,
		Description:   description,
		HotelImage:    saved.URL,
		IsActive:      true,
	}

	if err := database.DB.Create(&hotel).Error; err != nil {
		store.Remove(saved)
		logger.ErrorLogger.Errorf("Failed to create hotel: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating hotel",
		})
		return
	}

	logger.InfoLogger.Infof("Hotel %d created", hotel.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Hotel created successfully",
		"data":    hotel,
	})
}

func updateHotel(c *gin.Context, store storage.Store) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var hotel models.Hotel
	if err := database.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Hotel not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch hotel %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating hotel",
		})
		return
	}

	if hotelName := c.PostForm("hotelName"); hotelName != "" {
		hotel.HotelName = hotelName
	}
	if hotelLocation := c.PostForm("hotelLocation"); hotelLocation != "" {
		hotel.HotelLocation = hotelLocation
	}
	if locationLink := c.PostForm("locationLink"); locationLink != "" {
		hotel.LocationLink = locationLink
	}
	if hotelAddress := c.PostForm("hotelAddress"); hotelAddress != "" {
		hotel.HotelAddress = hotelAddress
	}
	if description := c.PostForm("description"); description != "" {
		hotel.Description = description
	}

	if header, err := c.FormFile("hotelImage"); err == nil {
		if !storage.ValidImageFile(header) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Only image files are allowed",
			})
			return
		}
		saved, err := store.Save(header, "hotels")
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to store hotel image: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error updating hotel",
			})
			return
		}
		store.Remove(&storage.SavedFile{Path: localPathFromURL(hotel.HotelImage)})
		hotel.HotelImage = saved.URL
	}

	if err := database.DB.Save(&hotel).Error; err != nil {
		logger.ErrorLogger.Errorf("Failed to update hotel %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error updating hotel",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Hotel updated successfully",
		"data":    hotel,
	})
}

func deleteHotel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result := database.DB.Model(&models.Hotel{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		logger.ErrorLogger.Errorf("Failed to delete hotel %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting hotel",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Hotel not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Hotel deleted successfully",
	})
}

func addRoom(c *gin.Context, store storage.Store) {
	hotelID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var hotel models.Hotel
	if err := database.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Hotel not found",
			})
			return
		}
		logger.ErrorLogger.Errorf("Failed to fetch hotel %d: %v", hotelID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error adding room",
		})
		return
	}

	var input roomInput
	if raw := c.PostForm("room"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid room data",
			})
			return
		}
	} else {
		input.RoomType = models.RoomType(c.PostForm("roomType"))
		input.BedType = models.BedType(c.PostForm("bedType"))
		input.ACType = models.ACType(c.PostForm("acType"))
		input.Price, _ = strconv.ParseFloat(c.PostForm("price"), 64)
	}

	if msg := input.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": msg,
		})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid form data",
		})
		return
	}
	headers := form.File["roomImages"]
	if len(headers) < minRoomImages {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "At least 3 room images are required",
		})
		return
	}
	for _, h := range headers {
		if !storage.ValidImageFile(h) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Only image files are allowed",
			})
			return
		}
	}

	var images []string
	var savedFiles []*storage.SavedFile
	for _, h := range headers {
		saved, err := store.Save(h, "rooms")
		if err != nil {
			for _, f := range savedFiles {
				store.Remove(f)
			}
			logger.ErrorLogger.Errorf("Failed to store room image: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Error adding room",
			})
			return
		}
		savedFiles = append(savedFiles, saved)
		images = append(images, saved.URL)
	}

	room := models.Room{
		HotelID:      hotel.ID,
		RoomType:     input.RoomType,
		BedType:      input.BedType,
		ACType:       input.ACType,
		Price:        input.Price,
		Images:       datatypes.NewJSONSlice(images),
		Availability: true,
	}
	if input.Availability != nil {
		room.Availability = *input.Availability
	}

	if err := database.DB.Create(&room).Error; err != nil {
		for _, f := range savedFiles {
			store.Remove(f)
		}
		logger.ErrorLogger.Errorf("Failed to create room for hotel %d: %v", hotelID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error adding room",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Room added successfully",
		"data":    room,
	})
}

func deleteRoom(c *gin.Context) {
	hotelID, ok := parseID(c, "id")
	if !ok {
		return
	}
	roomID, ok := parseID(c, "roomId")
	if !ok {
		return
	}

	result := database.DB.Where("hotel_id = ?", hotelID).Delete(&models.Room{}, roomID)
	if result.Error != nil {
		logger.ErrorLogger.Errorf("Failed to delete room %d: %v", roomID, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error deleting room",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Room not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Room deleted successfully",
	})
}

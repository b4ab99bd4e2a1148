package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"travel-agency-server/database"
	"travel-agency-server/models"
)

func seedDestination(t *testing.T, name string, category models.DestinationCategory) models.Destination {
	t.Helper()

	destination := models.Destination{
		DestinationName:   name,
		Description:       "White sand beaches and clear water all year round.",
		Category:          category,
		ThumbnailURL:      "/uploads/locations/thumb.jpg",
		ThumbnailFileName: "thumb.jpg",
		Tags:              datatypes.NewJSONSlice([]string{"beach", "snorkeling"}),
		IsActive:          true,
	}
	require.NoError(t, database.DB.Create(&destination).Error)
	return destination
}

func destinationFields() map[string]string {
	return map[string]string{
		"destinationName": "Radhanagar Beach",
		"description":     "Ranked among the best beaches in Asia.",
		"category":        "south-andaman",
		"tags":            "beach, sunset ,swimming",
	}
}

func TestListDestinationsByCategory(t *testing.T) {
	router := setupTest(t)
	seedDestination(t, "Radhanagar Beach", models.CategorySouthAndaman)
	seedDestination(t, "Ross Smith Island", models.CategoryNorthAndaman)

	w := performJSON(router, http.MethodGet, "/api/destinations", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"].([]interface{}), 2)

	w = performJSON(router, http.MethodGet, "/api/destinations?category=north-andaman", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Ross Smith Island", data[0].(map[string]interface{})["destination_name"])
}

func TestGetDestinationCountsViews(t *testing.T) {
	router := setupTest(t)
	destination := seedDestination(t, "Radhanagar Beach", models.CategorySouthAndaman)

	path := fmt.Sprintf("/api/destinations/%d", destination.ID)
	for i := 0; i < 3; i++ {
		w := performJSON(router, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
	}

	var stored models.Destination
	require.NoError(t, database.DB.First(&stored, destination.ID).Error)
	assert.Equal(t, int64(3), stored.Views)
}

func TestCreateDestination(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)

	w := performMultipart(t, router, http.MethodPost, "/api/destinations",
		destinationFields(), map[string][]byte{"thumbnail": []byte("jpegdata")}, bearerToken(t, admin))
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Radhanagar Beach", data["destination_name"])

	tags := data["tags"].([]interface{})
	assert.Equal(t, []interface{}{"beach", "sunset", "swimming"}, tags)
}

func TestCreateDestinationValidation(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)

	fields := destinationFields()
	fields["category"] = "west-andaman"

	w := performMultipart(t, router, http.MethodPost, "/api/destinations",
		fields, map[string][]byte{"thumbnail": []byte("jpegdata")}, bearerToken(t, admin))
	require.Equal(t, http.StatusBadRequest, w.Code)

	fields = destinationFields()
	fields["description"] = "too short"

	w = performMultipart(t, router, http.MethodPost, "/api/destinations",
		fields, map[string][]byte{"thumbnail": []byte("jpegdata")}, bearerToken(t, admin))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteDestinationSoftDeletes(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)
	destination := seedDestination(t, "Radhanagar Beach", models.CategorySouthAndaman)

	w := performJSON(router, http.MethodDelete, fmt.Sprintf("/api/destinations/%d", destination.ID), nil, bearerToken(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Destination
	require.NoError(t, database.DB.First(&stored, destination.ID).Error)
	assert.False(t, stored.IsActive)
}

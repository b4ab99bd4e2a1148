package routes

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-agency-server/database"
	"travel-agency-server/models"
)

func uploadGallery(t *testing.T, router http.Handler, titles []string, filenames []string, auth string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, title := range titles {
		require.NoError(t, writer.WriteField("titles", title))
	}
	for _, name := range filenames {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, name))
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("mediadata"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/gallery/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", auth)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedGalleryItem(t *testing.T, title string, fileType models.GalleryFileType) models.GalleryItem {
	t.Helper()

	item := models.GalleryItem{
		Title:    title,
		FileName: "abc.jpg",
		FilePath: "/uploads/gallery/abc.jpg",
		FileType: fileType,
		MimeType: "image/jpeg",
		FileSize: 128,
	}
	require.NoError(t, database.DB.Create(&item).Error)
	return item
}

func TestGalleryUpload(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)

	w := uploadGallery(t, router,
		[]string{"Beach at dawn", "Ferry ride"},
		[]string{"dawn.jpg", "ferry.mp4"},
		bearerToken(t, admin))
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, "image", data[0].(map[string]interface{})["file_type"])
	assert.Equal(t, "video", data[1].(map[string]interface{})["file_type"])
}

func TestGalleryUploadTitleMismatch(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)

	w := uploadGallery(t, router, []string{"Only one title"}, []string{"a.jpg", "b.jpg"}, bearerToken(t, admin))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Number of titles must match number of files", decodeBody(t, w)["message"])
}

func TestGalleryUploadRejectsOtherTypes(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)

	w := uploadGallery(t, router, []string{"Brochure"}, []string{"brochure.pdf"}, bearerToken(t, admin))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGalleryListFiltersByType(t *testing.T) {
	router := setupTest(t)
	seedGalleryItem(t, "Beach at dawn", models.GalleryFileImage)
	seedGalleryItem(t, "Ferry ride", models.GalleryFileVideo)

	w := performJSON(router, http.MethodGet, "/api/gallery", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"].([]interface{}), 2)

	w = performJSON(router, http.MethodGet, "/api/gallery?type=video", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Ferry ride", data[0].(map[string]interface{})["title"])
}

func TestGalleryUpdateTitle(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)
	item := seedGalleryItem(t, "Beach at dawn", models.GalleryFileImage)

	w := performJSON(router, http.MethodPut, fmt.Sprintf("/api/gallery/%d", item.ID),
		map[string]string{"title": "Beach at dusk"}, bearerToken(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.GalleryItem
	require.NoError(t, database.DB.First(&stored, item.ID).Error)
	assert.Equal(t, "Beach at dusk", stored.Title)
}

func TestGalleryDelete(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "admin@example.com", models.RoleAdmin)
	item := seedGalleryItem(t, "Beach at dawn", models.GalleryFileImage)

	w := performJSON(router, http.MethodDelete, fmt.Sprintf("/api/gallery/%d", item.ID), nil, bearerToken(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, database.DB.Model(&models.GalleryItem{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

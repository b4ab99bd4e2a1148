package routes

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"travel-agency-server/config"
)

// parseID reads a numeric path parameter, answering 400 on malformed input
func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid ID format",
		})
		return 0, false
	}
	return uint(id), true
}

// pageParams reads page/limit query parameters with defaults
func pageParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit, (page - 1) * limit
}

// totalPages computes the page count for a collection size
func totalPages(total int64, limit int) int {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}

// localPathFromURL maps a stored /uploads URL back to its on-disk path.
// Remote (Cloudinary) URLs have no local file and map to "".
func localPathFromURL(url string) string {
	if !strings.HasPrefix(url, "/uploads/") {
		return ""
	}
	rel := strings.TrimPrefix(url, "/uploads/")
	return filepath.Join(config.AppConfig.Upload.Dir, filepath.FromSlash(rel))
}

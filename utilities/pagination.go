package utilities

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParsePagination reads page/limit query parameters with sane bounds
func ParsePagination(c *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	return page, limit, (page - 1) * limit
}

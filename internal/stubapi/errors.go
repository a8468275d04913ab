package stubapi

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// attachError attaches err to the gin context so the observability
// middleware can include the reason in the request log. c.Error() returns
// *gin.Error (not the error interface), so we suppress errcheck here
// intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the
// gin context for the request log
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// pageParams reads limit/offset from the query string with the list
// defaults applied
func pageParams(c *gin.Context) (limit, offset int) {
	limit = 10
	offset = 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}

package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the healthcheck endpoint
type HealthHandler struct{}

// NewHealthHandler creates a health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Healthcheck handles GET /api/healthcheck. The stub holds everything in
// memory, so being able to answer is the whole health story.
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

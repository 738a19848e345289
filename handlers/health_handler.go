package handlers

import (
	"net/http"
	"time"

	"github.com/fossclubsrm/forms-backend/types"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health handles the liveness payload used by uptime checks.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    "OK",
		Message:   "Server is running.",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// LivenessCheck handles kubernetes liveness probe
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

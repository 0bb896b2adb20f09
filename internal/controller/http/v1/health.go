package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/STEVENBOBER/LegacyBridge/internal/entity/dto/v1"
	"github.com/STEVENBOBER/LegacyBridge/pkg/logger"
)

// HealthHandler reports process liveness and uptime.
type HealthHandler struct {
	service string
	started time.Time
	l       logger.Interface
}

// NewHealthHandler -.
func NewHealthHandler(service string, l logger.Interface) *HealthHandler {
	return &HealthHandler{
		service: service,
		started: time.Now(),
		l:       l,
	}
}

// GetHealth handles GET /health.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	h.l.Debug("http - v1 - health check")

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Service:   h.service,
		Uptime:    time.Since(h.started).Seconds(),
		TimeStamp: time.Now().UTC().Format(time.RFC3339),
	})
}

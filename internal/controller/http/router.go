// Package http implements routing paths. Each service in own file.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/STEVENBOBER/LegacyBridge/config"
	v1 "github.com/STEVENBOBER/LegacyBridge/internal/controller/http/v1"
	"github.com/STEVENBOBER/LegacyBridge/internal/usecase/peoplesoft"
	"github.com/STEVENBOBER/LegacyBridge/pkg/logger"
)

// NewRouter sets up the HTTP surface of the bridge.
func NewRouter(handler *gin.Engine, l logger.Interface, t peoplesoft.Feature, cfg *config.Config) {
	// Options
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())
	handler.Use(securityHeaders())

	// Sanity check
	handler.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Legacy bridge API is running")
	})

	hh := v1.NewHealthHandler(cfg.Name, l)
	handler.GET("/health", hh.GetHealth)

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1.NewPeopleSoftRoutes(&handler.RouterGroup, t, l)
}

// securityHeaders sets the baseline response headers on every route.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")

		c.Next()
	}
}

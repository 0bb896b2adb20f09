// Package app configures and runs application.
package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/STEVENBOBER/LegacyBridge/config"
	bridgehttp "github.com/STEVENBOBER/LegacyBridge/internal/controller/http"
	"github.com/STEVENBOBER/LegacyBridge/internal/usecase/peoplesoft"
	"github.com/STEVENBOBER/LegacyBridge/pkg/httpserver"
	"github.com/STEVENBOBER/LegacyBridge/pkg/logger"
)

var Version = "DEVELOPMENT"

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Level)
	cfg.Version = Version
	log.Info("app - Run - version: %s", cfg.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	adapter := newAdapter(cfg, log)

	handler := setupHTTPHandler(cfg, log, adapter)

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.Host, cfg.Port),
	)

	log.Info("app - Run - listening on %s:%s", cfg.Host, cfg.Port)

	waitForShutdown(log, httpServer)

	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}

// newAdapter selects the adapter variant at startup. Both variants satisfy
// the same contract, so nothing above this call knows which one is running.
func newAdapter(cfg *config.Config, log logger.Interface) peoplesoft.Feature {
	if cfg.Mode == config.ModeLive {
		return peoplesoft.NewClient(cfg.PeopleSoft, log)
	}

	return peoplesoft.NewSimulated(cfg.PeopleSoft, log)
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, adapter peoplesoft.Feature) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowHeaders = cfg.AllowedHeaders

	handler.Use(cors.New(corsConfig))
	bridgehttp.NewRouter(handler, log, adapter, cfg)

	// Optionally enable pprof endpoints (e.g., for staging) via env ENABLE_PPROF=true
	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("pprof enabled at /debug/pprof/")
	}

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}
}

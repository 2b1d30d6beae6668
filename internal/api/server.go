// Package api provides the read-only topology inspection server. It
// uses the Echo framework to serve the compiled zone tree, per-zone
// hosts, the platform summary and the structural fingerprint.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"evalgo.org/simfabric/internal/config"
	"evalgo.org/simfabric/internal/engine"
)

// Server serves a compiled topology over HTTP. The topology is never
// mutated through this surface.
type Server struct {
	echo   *echo.Echo
	engine *engine.Engine
	config *config.Config
}

// New creates a new inspection server instance.
func New(cfg *config.Config, e *engine.Engine) *Server {
	ec := echo.New()
	ec.HideBanner = true
	ec.HidePort = true
	ec.Debug = cfg.Server.Debug
	ec.HTTPErrorHandler = HTTPErrorHandler

	server := &Server{
		echo:   ec,
		engine: e,
		config: cfg,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${time_rfc3339}] ${status} ${method} ${uri} (${latency_human})\n",
	}))
	s.echo.Use(middleware.Recover())
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.health)

	v1 := s.echo.Group("/api/v1")
	v1.GET("/zones", s.listZones)
	v1.GET("/zones/:name", s.getZone)
	v1.GET("/hosts", s.listHosts)
	v1.GET("/filesystems", s.listFilesystems)
	v1.GET("/summary", s.getSummary)
	v1.GET("/fingerprint", s.getFingerprint)
}

// Start begins serving and blocks until the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout

	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("inspection server: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

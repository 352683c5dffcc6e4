package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/adapter/handler/http"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/config"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/infrastructure/metrics"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
	pkglogger "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/pkg/logger"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	services *usecase.Services
	metrics  *metrics.Metrics
}

// NewServer builds the echo instance with middleware and routes; m may be nil to run without /metrics.
func NewServer(cfg *config.Config, logger *zap.Logger, services *usecase.Services, m *metrics.Metrics) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	pkglogger.WithEchoLogger(e, logger)
	e.Validator = handlers.NewRequestValidator()

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(pkglogger.NewEchoRequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.HTTP.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: !allowsAnyOrigin(cfg.Server.HTTP.AllowedOrigins),
	}))
	if m != nil {
		e.Use(m.EchoMiddleware())
	}

	s := &Server{
		config:   cfg,
		logger:   logger,
		echo:     e,
		services: services,
		metrics:  m,
	}
	s.setupRoutes()
	return s
}

// allowsAnyOrigin reports whether origins contains "*"; credentials cannot be combined with it.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return len(origins) == 0
}

func (s *Server) setupRoutes() {
	if s.metrics != nil {
		s.echo.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}

	h := handlers.NewHandlers(
		s.services,
		s.config.Service.Name,
		s.config.Service.Version,
		s.config.MCP.Enabled,
		s.logger,
	)
	handlers.RegisterRoutes(s.echo, h)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

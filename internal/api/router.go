package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/freightline/tms-backend/internal/api/handler"
	"github.com/freightline/tms-backend/internal/api/middleware"
	"github.com/freightline/tms-backend/internal/core/ports"
)

// RouterConfig carries the transport-level knobs the router needs.
type RouterConfig struct {
	// FrontendDir, when non-empty, is served as static assets from the root.
	FrontendDir string
	// Metrics overrides the Prometheus registry for HTTP metrics; nil uses
	// the process default. Tests pass a fresh registry per router.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg RouterConfig,
	authService ports.AuthService,
	shipmentService ports.ShipmentService,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	registerer := prometheus.Registerer(prometheus.DefaultRegisterer)
	gatherer := prometheus.Gatherer(prometheus.DefaultGatherer)
	if cfg.Metrics != nil {
		registerer = cfg.Metrics
		gatherer = cfg.Metrics
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "tms",
		Registerer: registerer,
	}))
	// Resolve the credential once per request; anonymous requests pass
	// through and fail (or not) at the service-layer guard.
	e.Use(middleware.Identity(authService))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	healthHandler := handler.NewHealthHandler()

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/me", authHandler.Me)

	// --- Shipments ---
	v1 := e.Group("/v1")
	v1.GET("/shipments", shipmentHandler.List)
	v1.GET("/shipments/:id", shipmentHandler.Get)
	v1.POST("/shipments", shipmentHandler.Create)
	v1.PATCH("/shipments/:id", shipmentHandler.Update)
	v1.DELETE("/shipments/:id", shipmentHandler.Delete)
	v1.POST("/shipments/:id/flag", shipmentHandler.ToggleFlag)
	v1.GET("/permissions/:role", authHandler.Permissions)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))

	// --- Static frontend (optional) ---
	if cfg.FrontendDir != "" {
		e.Static("/", cfg.FrontendDir)
	}

	return e
}

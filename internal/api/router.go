package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Shubham-3256/millets-cafe/internal/api/handler"
	"github.com/Shubham-3256/millets-cafe/internal/api/middleware"
	"github.com/Shubham-3256/millets-cafe/internal/core/domain"
	"github.com/Shubham-3256/millets-cafe/internal/core/ports"
)

// Services are the application services the router exposes over HTTP.
type Services struct {
	Auth     ports.AuthService
	Tokens   ports.TokenVerifier
	Orders   ports.OrderService
	Bookings ports.BookingService
	Messages ports.MessageService
	Workflow ports.WorkflowService
	Menu     ports.MenuService
	Stats    ports.StatsService
}

// Options tunes the HTTP surface.
type Options struct {
	// CORSOrigins lists allowed origins; empty means "*".
	CORSOrigins []string
	// Readiness checks run by GET /health/ready, keyed by dependency name.
	Readiness map[string]handler.Check
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, log zerolog.Logger, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(opts.CORSOrigins),
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			handler.HeaderIdempotencyKey,
		},
	}))
	e.Use(middleware.Metrics())

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if len(opts.Readiness) > 0 {
		e.GET("/health/ready", handler.NewReadinessHandler(opts.Readiness).Readiness)
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	anyone := middleware.Gate(svc.Tokens, domain.RoleUser, domain.RoleAdmin)
	admin := middleware.Gate(svc.Tokens, domain.RoleAdmin)

	authHandler := handler.NewAuthHandler(svc.Auth)
	menuHandler := handler.NewMenuHandler(svc.Menu)
	orderHandler := handler.NewOrderHandler(svc.Orders)
	bookingHandler := handler.NewBookingHandler(svc.Bookings)
	messageHandler := handler.NewMessageHandler(svc.Messages)
	statusHandler := handler.NewStatusHandler(svc.Workflow)
	statsHandler := handler.NewStatsHandler(svc.Stats)

	g := e.Group("/api")

	// --- Auth ---
	g.POST("/auth/register", authHandler.Register)
	g.POST("/auth/login", authHandler.Login)

	// --- Menu ---
	g.GET("/menu", menuHandler.List)
	g.POST("/menu", menuHandler.Create, admin)
	g.PUT("/menu/:id", menuHandler.Update, admin)
	g.DELETE("/menu/:id", menuHandler.Delete, admin)

	// --- Orders ---
	g.POST("/orders", orderHandler.Place, anyone)
	g.GET("/my-orders", orderHandler.Mine, anyone)
	g.GET("/orders", orderHandler.List, admin)
	g.PUT("/orders/:id/status", statusHandler.SetStatus(domain.KindOrder), admin)
	g.DELETE("/orders/:id", orderHandler.Delete, admin)

	// --- Bookings ---
	g.POST("/bookings", bookingHandler.Book, anyone)
	g.GET("/my-bookings", bookingHandler.Mine, anyone)
	g.GET("/bookings", bookingHandler.List, admin)
	g.PUT("/bookings/:id/status", statusHandler.SetStatus(domain.KindBooking), admin)
	g.DELETE("/bookings/:id", bookingHandler.Delete, admin)

	// --- Messages ---
	g.POST("/messages", messageHandler.Submit)
	g.GET("/messages", messageHandler.List, admin)
	g.PUT("/messages/:id/status", statusHandler.SetStatus(domain.KindMessage), admin)
	g.DELETE("/messages/:id", messageHandler.Delete, admin)

	// --- Admin ---
	g.GET("/admin/stats", statsHandler.Get, admin)

	return e
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

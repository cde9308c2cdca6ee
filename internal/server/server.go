// Package server provides HTTP server setup and configuration.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sebasr/hello-service/internal/config"
	"github.com/sebasr/hello-service/internal/handlers"
	"github.com/sebasr/hello-service/internal/middleware"
)

// HealthPath is the route of the health check endpoint
const HealthPath = "/health"

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Version string
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	// Set Gin to release mode to disable ANSI colors in logs
	gin.SetMode(gin.ReleaseMode)

	// Use gin.New() instead of gin.Default() to have explicit control over middleware
	router := gin.New()

	// Only configured proxies may set the client IP seen by the rate limiter and logs.
	if err := router.SetTrustedProxies(deps.Config.Server.TrustedProxies); err != nil {
		deps.Logger.Warn().Err(err).Msg("ignoring invalid trusted proxies")
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger, HealthPath))
	if deps.Config.RateLimit.Requests > 0 {
		router.Use(middleware.NewRateLimit(deps.Config.RateLimit.Requests, deps.Config.RateLimit.Period))
	}
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", handlers.GreetingHandler)
	router.GET(HealthPath, handlers.NewHealthHandler(deps.Version))

	return router
}

// NewHTTPServer wraps handler in an http.Server bound to the configured address
func NewHTTPServer(cfg *config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests for at most shutdownTimeout. It returns nil after a clean shutdown.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log            *logrus.Logger
	Routes         RouteService
	Database       HealthChecker // nil when the network comes from files
	CORSOrigins    []string
	Version        string
	APIKey         string // empty disables authentication
	RateLimitRPS   int
	RateLimitBurst int
}

// maxBodySize bounds POST /route bodies; constraint lists are small.
const maxBodySize = 1 << 20 // 1 MB

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))

	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			MaxAge:           1 * time.Hour,
			AllowCredentials: false,
		}))
	}

	r.Use(middleware.NewRateLimiter(ctx, deps.RateLimitRPS, deps.RateLimitBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Routes, deps.Database, log, deps.Version)
	routes := NewRouteHandler(deps.Routes, log)
	network := NewNetworkHandler(deps.Routes, log)

	// Health and readiness are unauthenticated.
	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	if deps.APIKey != "" {
		api.Use(middleware.APIKeyAuth(deps.APIKey, log, middleware.NewBruteForceGuard(ctx, log)))
	}

	// Routing.
	api.GET("/route", routes.Get)
	api.POST("/route", routes.Post)

	// Network lookups.
	api.GET("/stops/:id", network.Stop)
	api.GET("/routes", network.Routes)
	api.GET("/stats", network.Stats)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}

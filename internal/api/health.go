package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/db"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	svc       RouteService
	database  HealthChecker
	log       *logrus.Logger
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler. database is nil when the network
// was built from files.
func NewHealthHandler(svc RouteService, database HealthChecker, log *logrus.Logger, version string) *HealthHandler {
	return &HealthHandler{
		svc:       svc,
		database:  database,
		log:       log,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health/liveness endpoint.
type healthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Stops         int     `json:"stops"`
	Edges         int     `json:"edges"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	stats := h.svc.Stats(c.Request.Context())

	c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		Version:       h.version,
		Stops:         stats.Stops,
		Edges:         stats.Edges,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// Readiness handles GET /api/v1/ready. The service is ready once a non-empty
// network is loaded and, for the postgres source, the database answers.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{"network": "ok"}
	status := "ready"
	statusCode := http.StatusOK

	if h.svc.Stats(c.Request.Context()).Stops == 0 {
		checks["network"] = "empty"
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	if h.database != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		checks["database"] = "ok"
		checks["schema_version"] = strconv.Itoa(db.SchemaVersion())

		if err := h.database.HealthCheck(ctx); err != nil {
			h.log.WithError(err).Error("readiness: database health check failed")
			checks["database"] = "error"
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
		}
	}

	c.JSON(statusCode, readinessResponse{Status: status, Checks: checks})
}

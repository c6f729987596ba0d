package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NetworkHandler serves stop, route and statistics lookups.
type NetworkHandler struct {
	svc RouteService
	log *logrus.Logger
}

// NewNetworkHandler creates a NetworkHandler with the given service and logger.
func NewNetworkHandler(svc RouteService, log *logrus.Logger) *NetworkHandler {
	return &NetworkHandler{svc: svc, log: log}
}

// Stop handles GET /api/v1/stops/:id.
func (h *NetworkHandler) Stop(c *gin.Context) {
	id, err := parseStopID("id", c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	detail, err := h.svc.Stop(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, "getting stop", err)

		return
	}

	c.JSON(http.StatusOK, detail)
}

// Routes handles GET /api/v1/routes.
func (h *NetworkHandler) Routes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"routes": h.svc.Routes(c.Request.Context())})
}

// Stats handles GET /api/v1/stats.
func (h *NetworkHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats(c.Request.Context()))
}

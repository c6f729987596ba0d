// Package api provides HTTP handlers for transitroute.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/models"
)

// RouteHandler serves routing queries.
type RouteHandler struct {
	svc RouteService
	log *logrus.Logger
}

// NewRouteHandler creates a RouteHandler with the given service and logger.
func NewRouteHandler(svc RouteService, log *logrus.Logger) *RouteHandler {
	return &RouteHandler{svc: svc, log: log}
}

// routeRequest is the POST body. From and To are pointers so a missing
// field is told apart from stop 0.
type routeRequest struct {
	From *int64 `json:"from"`
	To   *int64 `json:"to"`
	models.Constraints
}

// Get handles GET /api/v1/route?from=&to=&forbidden_routes=&forbidden_stops=&allowed_routes=&allowed_stops=.
func (h *RouteHandler) Get(c *gin.Context) {
	q, err := queryFromParams(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	h.plan(c, q)
}

// Post handles POST /api/v1/route with a JSON body.
func (h *RouteHandler) Post(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if req.From == nil || req.To == nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "from and to are required")

		return
	}

	h.plan(c, models.RouteQuery{From: *req.From, To: *req.To, Constraints: req.Constraints})
}

func (h *RouteHandler) plan(c *gin.Context, q models.RouteQuery) {
	res, err := h.svc.Plan(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, h.log, "planning route", err)

		return
	}

	c.JSON(http.StatusOK, res)
}

func queryFromParams(c *gin.Context) (models.RouteQuery, error) {
	var q models.RouteQuery
	var err error

	if q.From, err = parseStopID("from", c.Query("from")); err != nil {
		return q, err
	}

	if q.To, err = parseStopID("to", c.Query("to")); err != nil {
		return q, err
	}

	if q.ForbiddenRoutes, err = splitList("forbidden_routes", c.Query("forbidden_routes")); err != nil {
		return q, err
	}

	if q.AllowedRoutes, err = splitList("allowed_routes", c.Query("allowed_routes")); err != nil {
		return q, err
	}

	if q.ForbiddenStops, err = parseIDList("forbidden_stops", c.Query("forbidden_stops")); err != nil {
		return q, err
	}

	if q.AllowedStops, err = parseIDList("allowed_stops", c.Query("allowed_stops")); err != nil {
		return q, err
	}

	return q, nil
}

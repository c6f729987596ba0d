package api

import (
	"context"

	"github.com/persistorai/transitroute/internal/domain"
)

// RouteService is the query surface the handlers depend on.
type RouteService = domain.RouteService

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

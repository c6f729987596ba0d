package api_test

import (
	"context"

	"github.com/persistorai/transitroute/internal/models"
)

// mockRouteService implements api.RouteService for testing.
type mockRouteService struct {
	planFn   func(ctx context.Context, q models.RouteQuery) (*models.RouteResult, error)
	stopFn   func(ctx context.Context, id int64) (*models.StopDetail, error)
	routesFn func(ctx context.Context) []models.RouteInfo
	statsFn  func(ctx context.Context) models.NetworkStats
}

func (m *mockRouteService) Plan(ctx context.Context, q models.RouteQuery) (*models.RouteResult, error) {
	return m.planFn(ctx, q)
}

func (m *mockRouteService) Stop(ctx context.Context, id int64) (*models.StopDetail, error) {
	return m.stopFn(ctx, id)
}

func (m *mockRouteService) Routes(ctx context.Context) []models.RouteInfo {
	return m.routesFn(ctx)
}

func (m *mockRouteService) Stats(ctx context.Context) models.NetworkStats {
	return m.statsFn(ctx)
}

// mockHealthChecker implements api.HealthChecker for testing.
type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) HealthCheck(context.Context) error { return m.err }

// Package domain defines the canonical service interfaces shared across the
// HTTP API, the CLI and the client. Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/persistorai/transitroute/internal/models"
)

// RouteService answers routing queries against a built network.
type RouteService interface {
	Plan(ctx context.Context, q models.RouteQuery) (*models.RouteResult, error)
	Stop(ctx context.Context, id int64) (*models.StopDetail, error)
	Routes(ctx context.Context) []models.RouteInfo
	Stats(ctx context.Context) models.NetworkStats
}

// DatasetSource yields the raw records a network is built from.
// A failure means no dataset; partial data is never returned.
type DatasetSource interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

// DatasetSink persists a dataset so a DatasetSource can load it later.
type DatasetSink interface {
	Import(ctx context.Context, ds *models.Dataset) error
}

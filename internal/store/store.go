// Package store persists transit datasets in PostgreSQL.
//
// The server only reads the dataset once, at startup, to build its network.
// Writes come from the import command and replace the whole dataset.
package store

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/dbpool"
	"github.com/persistorai/transitroute/internal/domain"
)

const defaultQueryTimeout = 30 * time.Second

// Compile-time checks: *DatasetStore is both a source and a sink.
var (
	_ domain.DatasetSource = (*DatasetStore)(nil)
	_ domain.DatasetSink   = (*DatasetStore)(nil)
)

// DatasetStore reads and writes the transit_* tables.
type DatasetStore struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

// NewDatasetStore creates a DatasetStore.
func NewDatasetStore(pool *dbpool.Pool, log *logrus.Logger) *DatasetStore {
	return &DatasetStore{pool: pool, log: log}
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

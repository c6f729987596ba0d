package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/api"
	"github.com/persistorai/transitroute/internal/config"
	"github.com/persistorai/transitroute/internal/db"
	"github.com/persistorai/transitroute/internal/dbpool"
	"github.com/persistorai/transitroute/internal/domain"
	"github.com/persistorai/transitroute/internal/loader"
	"github.com/persistorai/transitroute/internal/network"
	"github.com/persistorai/transitroute/internal/store"
)

// dataSource is the configured DatasetSource plus what the server needs to
// check and release it. health is nil for file datasets.
type dataSource struct {
	domain.DatasetSource
	health api.HealthChecker
	close  func()
}

// Close releases the source's resources.
func (s *dataSource) Close() {
	if s.close != nil {
		s.close()
	}
}

func openSource(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*dataSource, error) {
	if cfg.DataSource != config.DataSourcePostgres {
		return &dataSource{
			DatasetSource: loader.FileSource{StopsPath: cfg.StopsFile, RoutesPath: cfg.RoutesFile},
		}, nil
	}

	pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if cfg.RunMigrations {
		applied, err := db.RunMigrations(ctx, pool, log)
		if err != nil {
			pool.Close()

			return nil, err
		}

		log.WithFields(logrus.Fields{
			"applied":        applied,
			"schema_version": db.SchemaVersion(),
		}).Info("migrations checked")
	}

	return &dataSource{
		DatasetSource: store.NewDatasetStore(pool, log),
		health:        pool,
		close:         pool.Close,
	}, nil
}

// loadNetwork loads the dataset and builds the network. Any failure aborts
// startup; no partially built network is returned.
func loadNetwork(ctx context.Context, src domain.DatasetSource, log *logrus.Logger) (*network.Network, error) {
	start := time.Now()

	ds, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	n, err := network.Build(ds, log)
	if err != nil {
		return nil, fmt.Errorf("building network: %w", err)
	}

	log.WithFields(logrus.Fields{
		"stops":    n.StopCount(),
		"edges":    n.EdgeCount(),
		"segments": n.SegmentCount(),
		"took":     time.Since(start).String(),
	}).Info("network loaded")

	return n, nil
}

// Package db applies the transit dataset schema using goose
// (github.com/pressly/goose/v3).
//
// Migration files live in internal/db/migrations/ and are embedded via //go:embed.
// The server applies them on startup when RUN_MIGRATIONS is set; the CLI
// applies them before an import.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/db/migrations"
	"github.com/persistorai/transitroute/internal/dbpool"
)

// RunMigrations applies every pending embedded migration and returns how many ran.
func RunMigrations(ctx context.Context, pool *dbpool.Pool, log *logrus.Logger) (int, error) {
	// goose needs a *sql.DB; open one on the pool's DSN through the pgx stdlib driver.
	sqlDB, err := sql.Open("pgx", pool.ConnString())
	if err != nil {
		return 0, fmt.Errorf("opening sql.DB for migrations: %w", err)
	}
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.FS)
	if err != nil {
		return 0, fmt.Errorf("creating goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("applying migrations: %w", err)
	}

	for _, r := range results {
		if r.Error != nil {
			return 0, fmt.Errorf("migration %d (%s) failed: %w", r.Source.Version, r.Source.Path, r.Error)
		}

		log.WithFields(logrus.Fields{
			"version":  r.Source.Version,
			"file":     r.Source.Path,
			"duration": r.Duration,
		}).Info("migration applied")
	}

	if len(results) == 0 {
		log.WithField("schema_version", SchemaVersion()).Debug("transit schema up to date")
	}

	return len(results), nil
}

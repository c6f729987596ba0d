// Package dbpool holds the PostgreSQL pool behind the dataset store.
package dbpool

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the connection pool used to load and import transit datasets.
// A server reads the dataset once at startup and imports write it in a
// single transaction, so a handful of connections is enough.
type Pool struct {
	pool *pgxpool.Pool
}

const (
	maxConns       = 4
	statementLimit = "30000" // ms; a full import runs inside one statement batch.
)

// NewPool connects to databaseURL and pings it before returning.
func NewPool(ctx context.Context, databaseURL string) (*Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	cfg.ConnConfig.RuntimeParams["statement_timeout"] = statementLimit
	cfg.ConnConfig.RuntimeParams["application_name"] = "transitroute"
	cfg.MaxConns = maxConns
	cfg.MinConns = 0
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &Pool{pool: pool}, nil
}

// Begin starts the read-write transaction an import runs in.
func (p *Pool) Begin(ctx context.Context) (pgx.Tx, error) {
	return p.pool.Begin(ctx)
}

// BeginTx starts a transaction with opts; loads use a read-only one.
func (p *Pool) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) { //nolint:gocritic // matching pgxpool.Pool signature.
	return p.pool.BeginTx(ctx, opts)
}

// HealthCheck reports whether the dataset tables are reachable. It backs the
// readiness probe of a server loading from Postgres.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var stops int64

	if err := p.pool.QueryRow(ctx, "SELECT count(*) FROM transit_stops").Scan(&stops); err != nil {
		return fmt.Errorf("dataset health check: %w", err)
	}

	return nil
}

// ConnString returns the DSN the pool was created from; goose opens its own
// database/sql handle on it.
func (p *Pool) ConnString() string {
	return p.pool.Config().ConnString()
}

// Close closes the connection pool.
func (p *Pool) Close() {
	p.pool.Close()
}

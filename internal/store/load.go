package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/models"
)

// Load reads the whole dataset in one read-only transaction. Segment members
// come back in their stored position order. An empty stop table is a load
// failure: there is nothing to route over.
func (s *DatasetStore) Load(ctx context.Context) (*models.Dataset, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("beginning read transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	ds := models.NewDataset()

	if ds.Stops, err = loadStops(ctx, tx); err != nil {
		return nil, err
	}

	if len(ds.Stops) == 0 {
		return nil, fmt.Errorf("%w: transit_stops is empty", models.ErrInvalidDataset)
	}

	if err := loadSegments(ctx, tx, ds.Segments); err != nil {
		return nil, err
	}

	if err := loadRoutes(ctx, tx, ds.RouteNames); err != nil {
		return nil, err
	}

	importID, err := latestImport(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing dataset load: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"import_id": importID,
		"stops":     len(ds.Stops),
		"segments":  len(ds.Segments),
		"routes":    len(ds.RouteNames),
	}).Info("dataset loaded from postgres")

	return ds, nil
}

func loadStops(ctx context.Context, tx pgx.Tx) ([]models.StopRecord, error) {
	rows, err := tx.Query(ctx, `SELECT id, name, lat, lon FROM transit_stops ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying stops: %w", err)
	}
	defer rows.Close()

	var stops []models.StopRecord

	for rows.Next() {
		var rec models.StopRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Lat, &rec.Lon); err != nil {
			return nil, fmt.Errorf("scanning stop: %w", err)
		}

		stops = append(stops, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stops: %w", err)
	}

	return stops, nil
}

func loadSegments(ctx context.Context, tx pgx.Tx, into map[string][]int64) error {
	rows, err := tx.Query(ctx, `
		SELECT segment_id, stop_id
		FROM transit_segment_stops
		ORDER BY segment_id, position`)
	if err != nil {
		return fmt.Errorf("querying segment stops: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var segID string
		var stopID int64
		if err := rows.Scan(&segID, &stopID); err != nil {
			return fmt.Errorf("scanning segment stop: %w", err)
		}

		into[segID] = append(into[segID], stopID)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating segment stops: %w", err)
	}

	return nil
}

func loadRoutes(ctx context.Context, tx pgx.Tx, into map[string]string) error {
	rows, err := tx.Query(ctx, `SELECT id, name FROM transit_routes`)
	if err != nil {
		return fmt.Errorf("querying routes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("scanning route: %w", err)
		}

		into[id] = name
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating routes: %w", err)
	}

	return nil
}

// latestImport returns the id of the most recent import, or "" when the
// tables were filled by other means.
func latestImport(ctx context.Context, tx pgx.Tx) (string, error) {
	var id string

	err := tx.QueryRow(ctx, `SELECT id::text FROM transit_imports ORDER BY imported_at DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("querying latest import: %w", err)
	}

	return id, nil
}

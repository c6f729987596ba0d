package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/transitroute/internal/models"
)

// Import replaces the stored dataset with ds in a single transaction, so a
// failed import leaves the previous dataset in place.
func (s *DatasetStore) Import(ctx context.Context, ds *models.Dataset) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning import transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	if _, err := tx.Exec(ctx, `TRUNCATE transit_segment_stops, transit_routes, transit_stops`); err != nil {
		return fmt.Errorf("clearing dataset: %w", err)
	}

	stops := ds.Stops
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"transit_stops"}, []string{"id", "name", "lat", "lon"},
		pgx.CopyFromSlice(len(stops), func(i int) ([]any, error) {
			return []any{stops[i].ID, stops[i].Name, stops[i].Lat, stops[i].Lon}, nil
		}),
	); err != nil {
		return fmt.Errorf("copying stops: %w", err)
	}

	routeRows := make([][]any, 0, len(ds.RouteNames))
	for id, name := range ds.RouteNames {
		routeRows = append(routeRows, []any{id, name})
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"transit_routes"}, []string{"id", "name"},
		pgx.CopyFromRows(routeRows),
	); err != nil {
		return fmt.Errorf("copying routes: %w", err)
	}

	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"transit_segment_stops"}, []string{"segment_id", "position", "stop_id"},
		pgx.CopyFromRows(segmentRows(ds)),
	); err != nil {
		return fmt.Errorf("copying segment stops: %w", err)
	}

	importID := uuid.New()

	if _, err := tx.Exec(ctx, `
		INSERT INTO transit_imports (id, stops, segments, routes)
		VALUES ($1, $2, $3, $4)`,
		importID.String(), len(ds.Stops), len(ds.Segments), len(ds.RouteNames),
	); err != nil {
		return fmt.Errorf("recording import: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"import_id": importID,
		"stops":     len(ds.Stops),
		"segments":  len(ds.Segments),
		"routes":    len(ds.RouteNames),
	}).Info("dataset imported")

	return nil
}

// segmentRows flattens segment membership into (segment_id, position, stop_id)
// rows, keeping each segment's member order in position.
func segmentRows(ds *models.Dataset) [][]any {
	var rows [][]any

	for _, segID := range ds.SegmentIDs() {
		for pos, stopID := range ds.Segments[segID] {
			rows = append(rows, []any{segID, int32(pos), stopID}) //nolint:gosec // segment sizes are far below MaxInt32.
		}
	}

	return rows
}
